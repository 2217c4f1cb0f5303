package devcon

import (
	"io"
	"log"
)

// newDiscardLogger is the default sink a Screen logs to until WithLogger
// supplies a real one.
func newDiscardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// logDebugf and logWarnf match the [LEVEL]-prefixed idiom the rest of this
// module's host applications use, so a Screen's diagnostics interleave
// cleanly with the caller's own log output.
func logDebugf(l *log.Logger, format string, args ...any) {
	l.Printf("[DEBUG] "+format, args...)
}

func logWarnf(l *log.Logger, format string, args ...any) {
	l.Printf("[WARN] "+format, args...)
}
