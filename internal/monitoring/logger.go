// Package monitoring holds the pipeline's diagnostic logging hook.
package monitoring

import "log"

// Logf is the diagnostic logger used by the acoplanarity tools. It
// defaults to log.Printf; callers (tests in particular) can redirect or
// mute it through SetLogger.
var Logf func(format string, v ...any) = log.Printf

// SetLogger replaces the package logger. A nil argument installs a
// no-op logger.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}

// Stagef logs a formatted message prefixed with the pipeline stage
// name, keeping multi-stage runs readable in mixed output.
func Stagef(stage, format string, v ...any) {
	Logf("["+stage+"] "+format, v...)
}
