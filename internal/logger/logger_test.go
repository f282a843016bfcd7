package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

// resetLogger restores the package state touched by a test.
func resetLogger(t *testing.T) {
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
}

func TestSetVerbose_Toggles(t *testing.T) {
	resetLogger(t)

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose off by default")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose on after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose off after SetVerbose(false)")
	}
}

func TestDebug_Verbose(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("saving document %q for owner %s", "Notes", "local")

	got := buf.String()
	want := "[DEBUG] saving document \"Notes\" for owner local\n"
	if got != want {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_Silent(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("upload %s resolved", "tok-1")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Save Pipeline")

	if got := buf.String(); got != "\n=== Save Pipeline ===\n" {
		t.Errorf("unexpected section output: %q", got)
	}
}

func TestInfo(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("history capacity %d", 50)

	if got := buf.String(); got != "[INFO] history capacity 50\n" {
		t.Errorf("unexpected info output: %q", got)
	}
}

func TestWarn(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Warn("title conflict, retrying with suggestion")

	if got := buf.String(); got != "[WARN] title conflict, retrying with suggestion\n" {
		t.Errorf("unexpected warn output: %q", got)
	}
}

func TestConcurrentUse(t *testing.T) {
	resetLogger(t)

	var buf bytes.Buffer
	SetOutput(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			SetVerbose(true)
			Debug("upload %d in flight", n)
			IsVerbose()
			SetVerbose(false)
		}(i)
	}
	wg.Wait()
}
