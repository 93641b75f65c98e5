package outcome

import (
	"strings"
	"testing"

	"github.com/kbukum/callintel/testutil"
	"github.com/kbukum/callintel/transcript"
)

func TestClassifyVoicemail(t *testing.T) {
	in := testutil.Lines("Speaker A", "You have reached the sales desk. Please leave a message after the tone.")
	got := Classify(in, Policy{})
	if got.Key != KeyVoicemail {
		t.Fatalf("key = %v, want VOICEMAIL", got.Key)
	}
	if got.Evidence == "" {
		t.Error("rule-set outcome must carry evidence")
	}
}

func TestClassifyVoicemailInLongTranscript(t *testing.T) {
	// The voicemail phrase wins regardless of transcript length.
	in := testutil.Lines(
		"Speaker A", strings.Repeat("some ordinary words here ", 20),
		"Speaker B", "the call goes to voicemail, please leave a message after the tone",
	)
	got := Classify(in, Policy{})
	if got.Key != KeyVoicemail {
		t.Fatalf("key = %v, want VOICEMAIL", got.Key)
	}
}

func TestClassifyPrecedenceVoicemailOverHostile(t *testing.T) {
	in := testutil.Lines(
		"Speaker A", "Please leave a message after the tone.",
		"Speaker B", "Stop calling this number!",
	)
	got := Classify(in, Policy{})
	if got.Key != KeyVoicemail {
		t.Fatalf("key = %v, want VOICEMAIL to win over HOSTILE", got.Key)
	}
}

func TestClassifyHostile(t *testing.T) {
	in := testutil.Lines(
		"Speaker A", "Hi, quick intro about our service.",
		"Speaker B", "Do not call here again, take me off your list.",
	)
	got := Classify(in, Policy{})
	if got.Key != KeyHostile {
		t.Fatalf("key = %v, want HOSTILE", got.Key)
	}
}

func TestClassifyEarlyExit(t *testing.T) {
	in := testutil.Lines(
		"Speaker A", "Hi, do you have a moment to talk?",
		"Speaker B", "Not interested, bye.",
	)
	got := Classify(in, Policy{})
	if got.Key != KeyEarlyExit {
		t.Fatalf("key = %v, want EARLY_EXIT", got.Key)
	}
	if got.Evidence != "not interested" {
		t.Errorf("evidence = %q, want the matched phrase", got.Evidence)
	}
}

func TestClassifyRejectionOutsideOpeningWindow(t *testing.T) {
	// The same phrase past the opening window no longer early-exits;
	// the structural rule classifies the call as connected instead.
	filler := strings.Repeat("we talked through the product details together today ", 6)
	in := testutil.Lines(
		"Speaker A", filler,
		"Speaker B", filler,
		"Speaker A", "So what do you think overall?",
		"Speaker B", "Honestly, not interested.",
	)
	got := Classify(in, Policy{})
	if got.Key != KeyConnected {
		t.Fatalf("key = %v, want CONNECTED", got.Key)
	}
}

func TestClassifyConnectedStructural(t *testing.T) {
	tests := []struct {
		name string
		in   []transcript.Line
	}{
		{
			name: "three dialogue lines",
			in: testutil.Lines(
				"Speaker A", "First line of the call.",
				"Speaker B", "Second line in reply.",
				"Speaker A", "Third line to close.",
			),
		},
		{
			name: "two speakers with enough words",
			in: testutil.Lines(
				"Speaker A", "We walked through the rollout plan and the pricing tiers in detail.",
				"Speaker B", "That covers most of what our team wanted to review together this quarter.",
			),
		},
		{
			name: "long text with two questions",
			in: testutil.Lines(
				"Speaker A", strings.Repeat("word ", 61)+"how does onboarding work? and what about support?",
			),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.in, Policy{})
			if got.Key != KeyConnected {
				t.Errorf("key = %v, want CONNECTED (%s)", got.Key, got.Reason)
			}
		})
	}
}

func TestClassifyUnclear(t *testing.T) {
	in := testutil.Lines("Speaker A", "Hi this is Trent, quick question, do you have 20 seconds?")
	got := Classify(in, Policy{})
	if got.Key != KeyUnclear {
		t.Fatalf("key = %v, want UNCLEAR", got.Key)
	}
	if got.Evidence != "" {
		t.Errorf("fallback outcome must carry no evidence, got %q", got.Evidence)
	}
}

func TestClassifyEmptyTranscript(t *testing.T) {
	got := Classify(nil, Policy{})
	if got.Key != KeyUnclear {
		t.Fatalf("key = %v, want UNCLEAR for empty input", got.Key)
	}
}

func TestRulesOrder(t *testing.T) {
	want := []Key{KeyVoicemail, KeyHostile, KeyEarlyExit, KeyConnected}
	rules := Rules(Policy{EarlyExitWindow: 35})
	if len(rules) != len(want) {
		t.Fatalf("len(rules) = %d, want %d", len(rules), len(want))
	}
	for i, rule := range rules {
		if rule.Key != want[i] {
			t.Errorf("rules[%d].Key = %v, want %v", i, rule.Key, want[i])
		}
	}
}
