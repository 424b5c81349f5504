// Package config provides functionality for managing configuration options
// for the application using command-line flags, an optional JSON config file
// and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// LogLevel is the minimum zap logging level.
	LogLevel string

	// Config is the path to an optional JSON configuration file.
	Config string

	// EnablePprof indicates whether to enable pprof for performance profiling.
	EnablePprof bool

	// EnableHTTPS indicates whether to enable https.
	EnableHTTPS bool
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.LogLevel, "l", "Info", "minimum logging level")
	flag.StringVar(&options.Config, "c", "config.json", "path to json config file")
	flag.BoolVar(&options.EnablePprof, "p", false, "enable pprof")
	flag.BoolVar(&options.EnableHTTPS, "s", false, "enable https")
}

// Parse parses the command-line flags, the config file and environment
// variables to set configuration values. Precedence, lowest to highest:
// flag defaults, config file, environment, explicit flags.
func Parse() *Options {
	flag.Parse()

	applyConfigFile()

	// Override with environment variables if set
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		options.LogLevel = logLevel
	}

	if enableHTTPS := os.Getenv("ENABLE_HTTPS"); enableHTTPS != "" {
		httpsMode, err := strconv.ParseBool(enableHTTPS)
		if err != nil {
			httpsMode = false
		}

		options.EnableHTTPS = httpsMode
	}

	return options
}

// applyConfigFile merges values from the JSON config file into options for
// fields not set explicitly on the command line. A missing or unreadable
// file is not an error.
func applyConfigFile() {
	path := options.Config
	if envPath := os.Getenv("CONFIG"); envPath != "" {
		path = envPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fileOptions Options
	if err := json.Unmarshal(data, &fileOptions); err != nil {
		return
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if !set["a"] && fileOptions.Port != "" {
		options.Port = fileOptions.Port
	}
	if !set["l"] && fileOptions.LogLevel != "" {
		options.LogLevel = fileOptions.LogLevel
	}
	if !set["p"] && fileOptions.EnablePprof {
		options.EnablePprof = true
	}
	if !set["s"] && fileOptions.EnableHTTPS {
		options.EnableHTTPS = true
	}
}
