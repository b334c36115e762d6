package logger

// LogLevel selects the minimum severity that gets written.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name to a LogLevel. Unknown names yield InfoLevel
// and false.
func ParseLevel(name string) (LogLevel, bool) {
	switch name {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	default:
		return InfoLevel, false
	}
}

// Logger provides structured logging tagged with the emitting component.
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

type nopLogger struct{}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Info(string, string, map[string]interface{})    {}
func (nopLogger) Error(string, error, map[string]interface{})    {}
func (nopLogger) Warning(string, string, map[string]interface{}) {}
func (nopLogger) Debug(string, string, map[string]interface{})   {}
