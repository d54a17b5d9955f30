package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLoggerCapturesOutput(t *testing.T) {
	defer SetLogger(nil)

	var got string
	SetLogger(func(format string, v ...any) {
		got = fmt.Sprintf(format, v...)
	})

	Logf("processed %d events", 7)
	if got != "processed 7 events" {
		t.Errorf("Logf produced %q", got)
	}

	Stagef("angle", "batch %d done", 2)
	if got != "[angle] batch 2 done" {
		t.Errorf("Stagef produced %q", got)
	}
}

func TestSetLoggerNilMutes(t *testing.T) {
	SetLogger(nil)
	defer SetLogger(func(format string, v ...any) {})
	// Must not panic.
	Logf("muted %s", "message")
}
