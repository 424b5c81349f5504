// Package logger wraps zap with level configuration for the service.
package logger

import (
	"go.uber.org/zap"
)

type LoggerI interface {
	Info(msg string, keysAndValues ...interface{})
	Init(lvl string) error
}

type Logger struct {
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger; call Init to make it real.
func New() *Logger {
	return &Logger{
		Log: zap.NewNop(),
	}
}

func (l *Logger) Init(level string) error {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = zl
	return nil
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	sugar := l.Log.Sugar()

	sugar.Infow(msg, keysAndValues...)
}
