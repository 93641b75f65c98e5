package outcome

import (
	"strings"

	"github.com/kbukum/callintel/transcript"
)

// view is the precomputed read-only shape the cascade rules match
// against. Building it once keeps every rule cheap and independent.
type view struct {
	lines      []transcript.Line
	text       string // lowercased dialogue text, labels stripped
	words      int
	questions  int
	dialogue   int // lines carrying a speaker label (non-Other)
	roleMarked int // distinct dialogue-role labels (non-Other)
}

func newView(lines []transcript.Line) view {
	text := strings.ToLower(transcript.Text(lines))
	labels := make(map[string]bool)
	dialogue := 0
	for _, line := range lines {
		if line.Speaker != transcript.LabelOther {
			labels[line.Speaker] = true
			dialogue++
		}
	}
	return view{
		lines:      lines,
		text:       text,
		words:      transcript.Words(text),
		questions:  strings.Count(text, "?"),
		dialogue:   dialogue,
		roleMarked: len(labels),
	}
}

// Rule is one entry in the live classification cascade. Match returns
// the supporting evidence and whether the rule fires.
type Rule struct {
	Key    Key
	Reason string
	Match  func(v view) (evidence string, ok bool)
}

// Rules returns the ordered live cascade. Order is precedence: the
// first rule to match wins.
func Rules(p Policy) []Rule {
	return []Rule{
		{
			Key:    KeyVoicemail,
			Reason: "voicemail greeting detected",
			Match: func(v view) (string, bool) {
				ev := findEvidence(voicemailRE, v.text)
				return ev, ev != ""
			},
		},
		{
			Key:    KeyHostile,
			Reason: "profanity or do-not-call demand",
			Match: func(v view) (string, bool) {
				ev := findEvidence(hostileRE, v.text)
				return ev, ev != ""
			},
		},
		{
			Key:    KeyEarlyExit,
			Reason: "rejection within the opening words",
			Match: func(v view) (string, bool) {
				ev := findEvidence(earlyExitRE, firstWords(v.text, p.EarlyExitWindow))
				return ev, ev != ""
			},
		},
		{
			Key:    KeyConnected,
			Reason: "two-way conversation structure",
			Match: func(v view) (string, bool) {
				switch {
				case v.dialogue >= 3:
					return "3+ dialogue lines", true
				case v.roleMarked >= 2 && v.words >= 25:
					return "two speakers with 25+ words", true
				case v.words >= 60 && v.questions >= 2:
					return "60+ words with 2+ questions", true
				case len(v.lines) >= 6 && v.words >= 60:
					return "6+ lines with 60+ words", true
				}
				return "", false
			},
		},
	}
}

// Classify runs the live cascade over a canonical transcript. When no
// rule matches it falls back to UNCLEAR, which signals "not enough
// signal", not an error.
func Classify(lines []transcript.Line, p Policy) Result {
	p.ApplyDefaults()
	v := newView(lines)

	for _, rule := range Rules(p) {
		if evidence, ok := rule.Match(v); ok {
			return Result{Key: rule.Key, Reason: rule.Reason, Evidence: evidence}
		}
	}

	return Result{Key: KeyUnclear, Reason: "not enough signal to classify the call"}
}
