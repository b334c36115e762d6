package config

import (
	"os"
	"strconv"

	"cwc-viewer/internal/logger"
)

const (
	DefaultWindowWidth  = 1200
	DefaultWindowHeight = 650
	DefaultImageDir     = "."
)

// Config holds settings read from the environment at startup.
type Config struct {
	LogLevel   logger.LogLevel
	JSONLogs   bool
	LogFile    string
	LogMaxSize int
	LogMaxAge  int

	// ImageDir is the directory stadium image references are resolved against.
	ImageDir string

	WindowWidth  float32
	WindowHeight float32
}

// Default returns the configuration used when no environment overrides are set.
func Default() Config {
	return Config{
		LogLevel:     logger.InfoLevel,
		LogMaxSize:   10,
		LogMaxAge:    7,
		ImageDir:     DefaultImageDir,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// FromEnv reads the configuration from the process environment.
func FromEnv() Config {
	return Load(os.Getenv)
}

// Load builds a configuration from getenv. Malformed values fall back to
// the defaults.
func Load(getenv func(string) string) Config {
	cfg := Default()

	if level, ok := logger.ParseLevel(getenv("LOG_LEVEL")); ok {
		cfg.LogLevel = level
	} else if getenv("DEBUG") == "1" {
		cfg.LogLevel = logger.DebugLevel
	}

	if getenv("CWC_JSON_LOGS") == "true" {
		cfg.JSONLogs = true
	}

	cfg.LogFile = getenv("CWC_LOG_FILE")
	cfg.LogMaxSize = positiveInt(getenv("CWC_LOG_MAX_SIZE_MB"), cfg.LogMaxSize)
	cfg.LogMaxAge = positiveInt(getenv("CWC_LOG_MAX_AGE_DAYS"), cfg.LogMaxAge)

	if dir := getenv("CWC_IMAGE_DIR"); dir != "" {
		cfg.ImageDir = dir
	}

	cfg.WindowWidth = float32(positiveInt(getenv("CWC_WINDOW_WIDTH"), DefaultWindowWidth))
	cfg.WindowHeight = float32(positiveInt(getenv("CWC_WINDOW_HEIGHT"), DefaultWindowHeight))

	return cfg
}

// LoggerOptions converts the logging settings for logger.NewFromOptions.
func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:      c.LogLevel,
		JSON:       c.JSONLogs,
		File:       c.LogFile,
		MaxSizeMB:  c.LogMaxSize,
		MaxAgeDays: c.LogMaxAge,
	}
}

func positiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
