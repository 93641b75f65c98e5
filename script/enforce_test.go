package script

import (
	"strings"
	"testing"
)

func TestEnforceTruncatesAndTerminates(t *testing.T) {
	in := strings.TrimSpace(strings.Repeat("word ", 120))
	got := Enforce(in, Policy{})
	if got.WordCount != 90 {
		t.Fatalf("WordCount = %d, want 90", got.WordCount)
	}
	if !strings.HasSuffix(got.Text, "?") {
		t.Errorf("truncated text must end in '?', got %q", got.Text[len(got.Text)-10:])
	}
	if !got.Pass {
		t.Error("a 90-word result must pass")
	}
}

func TestEnforceShortScriptUntouched(t *testing.T) {
	in := "Hi, this is Trent from Acme. Do you have twenty seconds?"
	got := Enforce(in, Policy{})
	if got.Text != in {
		t.Errorf("Text = %q, want input unchanged", got.Text)
	}
	if !got.Pass {
		t.Error("short terminated script must pass")
	}
}

func TestEnforceRepairsDanglingPunctuation(t *testing.T) {
	// Truncation at the cap can leave a trailing comma.
	in := strings.TrimSpace(strings.Repeat("word ", 89)) + " trailing, more beyond the cap"
	got := Enforce(in, Policy{})
	if strings.HasSuffix(got.Text, ",?") || strings.HasSuffix(got.Text, ",") {
		t.Errorf("dangling comma not repaired: %q", got.Text[len(got.Text)-12:])
	}
	if !strings.HasSuffix(got.Text, "trailing?") {
		t.Errorf("Text should end with repaired final word, got %q", got.Text[len(got.Text)-12:])
	}
}

func TestEnforceKeepsExistingTerminator(t *testing.T) {
	for _, terminator := range []string{".", "!", "?"} {
		in := "Short script" + terminator
		got := Enforce(in, Policy{})
		if got.Text != in {
			t.Errorf("Enforce(%q).Text = %q, want unchanged", in, got.Text)
		}
	}
}

func TestEnforceEmptyInput(t *testing.T) {
	got := Enforce("   ", Policy{})
	if got.Text != "" || got.WordCount != 0 {
		t.Errorf("blank input should yield empty result, got %+v", got)
	}
	if got.Pass {
		t.Error("empty script must not pass")
	}
}

func TestEnforceCustomCap(t *testing.T) {
	in := "one two three four five six"
	got := Enforce(in, Policy{MaxWords: 4})
	if got.WordCount != 4 {
		t.Fatalf("WordCount = %d, want 4", got.WordCount)
	}
	if got.Text != "one two three four?" {
		t.Errorf("Text = %q, want truncation at the fourth word", got.Text)
	}
}
