package config

import (
	"testing"

	"cwc-viewer/internal/logger"

	"github.com/stretchr/testify/assert"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load(envOf(nil))

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, logger.InfoLevel, cfg.LogLevel)
	assert.Equal(t, ".", cfg.ImageDir)
	assert.Equal(t, float32(1200), cfg.WindowWidth)
	assert.Equal(t, float32(650), cfg.WindowHeight)
}

func TestLoadOverrides(t *testing.T) {
	cfg := Load(envOf(map[string]string{
		"LOG_LEVEL":           "warn",
		"CWC_JSON_LOGS":       "true",
		"CWC_LOG_FILE":        "/tmp/viewer.log",
		"CWC_LOG_MAX_SIZE_MB": "3",
		"CWC_IMAGE_DIR":       "/srv/images",
		"CWC_WINDOW_WIDTH":    "1600",
	}))

	assert.Equal(t, logger.WarnLevel, cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, "/tmp/viewer.log", cfg.LogFile)
	assert.Equal(t, 3, cfg.LogMaxSize)
	assert.Equal(t, "/srv/images", cfg.ImageDir)
	assert.Equal(t, float32(1600), cfg.WindowWidth)
	assert.Equal(t, float32(650), cfg.WindowHeight)

	opts := cfg.LoggerOptions()
	assert.Equal(t, "/tmp/viewer.log", opts.File)
	assert.True(t, opts.JSON)
}

func TestLoadDebugFlag(t *testing.T) {
	cfg := Load(envOf(map[string]string{"DEBUG": "1"}))
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)

	cfg = Load(envOf(map[string]string{"DEBUG": "1", "LOG_LEVEL": "error"}))
	assert.Equal(t, logger.ErrorLevel, cfg.LogLevel)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	cfg := Load(envOf(map[string]string{
		"CWC_WINDOW_WIDTH":     "wide",
		"CWC_WINDOW_HEIGHT":    "-5",
		"CWC_LOG_MAX_AGE_DAYS": "0",
	}))

	assert.Equal(t, float32(DefaultWindowWidth), cfg.WindowWidth)
	assert.Equal(t, float32(DefaultWindowHeight), cfg.WindowHeight)
	assert.Equal(t, 7, cfg.LogMaxAge)
}
