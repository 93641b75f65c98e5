package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("Output = %q, want stdout", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("Timestamp default should be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json"}, false},
		{"bad level", Config{Level: "verbose", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	got := Fields("outcome", "VOICEMAIL", "words", 42)
	if got["outcome"] != "VOICEMAIL" {
		t.Errorf("outcome = %v, want VOICEMAIL", got["outcome"])
	}
	if got["words"] != 42 {
		t.Errorf("words = %v, want 42", got["words"])
	}
	// An odd trailing key is dropped rather than panicking.
	if got := Fields("dangling"); len(got) != 0 {
		t.Errorf("odd key count should yield empty map, got %v", got)
	}
}

func TestWithComponentDoesNotMutateParent(t *testing.T) {
	parent := NewDefault("callintel")
	child := parent.WithComponent("roles")
	if parent == child {
		t.Fatal("WithComponent must return a new logger")
	}
}

func TestNopLoggerIsSafe(t *testing.T) {
	log := Nop()
	log.Debug("ignored")
	log.Info("ignored", Fields("k", "v"))
	log.Warn("ignored")
	log.Error("ignored")
}

func TestWithErrorAddsErrorField(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{logger: zerolog.New(&buf)}

	l.WithError(errors.New("boom")).Error("failed")

	line := buf.String()
	if !strings.Contains(line, `"`+FieldError+`":"boom"`) {
		t.Errorf("log line missing error field: %s", line)
	}
}
