//go:build !debug

package log

func Debug(_ string, _ ...any) {}

func SetHandler(h Handler) {
	defaultLogger.Logger = newLogger(h)
}

func DebugLogger() Logger {
	return debugLogger{}
}

type debugLogger struct{}

func (debugLogger) Println(v ...any)               {}
func (debugLogger) Printf(format string, v ...any) {}
