package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures NewFromOptions.
type Options struct {
	Level LogLevel
	// JSON switches console output from the human readable writer to JSON lines.
	JSON bool
	// File, when set, additionally writes JSON lines to a rotating log file.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type ZerologAdapter struct {
	mu     sync.RWMutex
	logger zerolog.Logger
	// fallback receives entries once the log file has been closed.
	fallback zerolog.Logger
	closer   io.Closer
}

func NewZerolog(writer io.Writer, level LogLevel) *ZerologAdapter {
	logger := newZerologLogger(writer, level)
	return &ZerologAdapter{logger: logger, fallback: logger}
}

func NewConsoleLogger(level LogLevel) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}
	return NewZerolog(consoleWriter, level)
}

// NewFromOptions builds the application logger. Shutdown must be called
// to release the log file, if any.
func NewFromOptions(opts Options) *ZerologAdapter {
	var adapter *ZerologAdapter
	var console io.Writer
	if opts.JSON {
		console = os.Stdout
		adapter = NewZerolog(console, opts.Level)
	} else {
		console = zerolog.ConsoleWriter{Out: os.Stdout}
		adapter = NewConsoleLogger(opts.Level)
	}

	if opts.File == "" {
		return adapter
	}

	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
	}

	adapter.logger = newZerologLogger(zerolog.MultiLevelWriter(console, file), opts.Level)
	adapter.closer = file
	return adapter
}

func newZerologLogger(writer io.Writer, level LogLevel) zerolog.Logger {
	return zerolog.New(writer).
		Level(toZerologLevel(level)).
		With().
		Timestamp().
		Logger()
}

func (z *ZerologAdapter) current() *zerolog.Logger {
	z.mu.RLock()
	defer z.mu.RUnlock()
	l := z.logger
	return &l
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	event := z.current().Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	event := z.current().Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg("operation failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	event := z.current().Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	event := z.current().Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// Shutdown closes the rotating log file when one is configured. Later
// entries go to the console only, so the file is not reopened.
func (z *ZerologAdapter) Shutdown() {
	z.mu.Lock()
	defer z.mu.Unlock()

	if z.closer != nil {
		_ = z.closer.Close()
		z.closer = nil
	}
	z.logger = z.fallback
}

func toZerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
