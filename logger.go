package assetmin

// A Logger is used for all assetmin logging
type Logger interface {
	Log(msg string)
	Error(err error, msg string)
}

// LogFunc is the function called for everything
type LogFunc func(format string, a ...interface{})

type logger struct {
	prefix string
	logf   LogFunc
}

// NewLogger creates a new Logger that pushes everything to the given LogFunc
// with the given prefix.
func NewLogger(prefix string, logf LogFunc) Logger {
	return &logger{
		prefix: prefix,
		logf:   logf,
	}
}

func (l *logger) Log(msg string) {
	l.logf("I: %s: %s", l.prefix, msg)
}

func (l *logger) Error(err error, msg string) {
	l.logf("E: %s: %s: %v", l.prefix, msg, err)
}
