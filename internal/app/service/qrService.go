// Package service contains the QR generation service: it asks the encoder
// for a module matrix and renders it into an SVG document.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/atinyakov/go-qr-generator/internal/models"
	"github.com/atinyakov/go-qr-generator/internal/qr"
)

// QRService turns validated request parameters into a rendered SVG.
type QRService struct {
	encoder qr.Encoder
	logger  *zap.Logger
}

// NewQR creates a QRService on top of the given encoder.
func NewQR(encoder qr.Encoder, logger *zap.Logger) *QRService {
	return &QRService{
		encoder: encoder,
		logger:  logger,
	}
}

// Generate encodes params.Text at the requested error correction level and
// renders the resulting matrix. Encoder failures (for example a payload too
// long for the chosen level) are returned as-is for the transport layer to
// report.
func (s *QRService) Generate(ctx context.Context, params models.ImageParams) (string, error) {
	matrix, err := s.encoder.Encode(params.Text, qr.Level(params.ECLevel))
	if err != nil {
		s.logger.Info("QR encoding failed", zap.String("ecLevel", params.ECLevel), zap.Error(err))
		return "", err
	}

	return RenderSVG(matrix, params), nil
}
