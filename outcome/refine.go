package outcome

import (
	"fmt"
	"strings"

	"github.com/kbukum/callintel/transcript"
)

// synonyms normalizes outcome labels proposed by the upstream report
// generator into the closed key set.
var synonyms = map[string]Key{
	"BOOKED":          KeyBookedMeeting,
	"BOOKED_MEETING":  KeyBookedMeeting,
	"MEETING_BOOKED":  KeyBookedMeeting,
	"MEETING":         KeyBookedMeeting,
	"APPOINTMENT_SET": KeyBookedMeeting,
	"NO_ANSWER":       KeyNoAnswer,
	"NOANSWER":        KeyNoAnswer,
	"MISSED":          KeyNoAnswer,
	"VOICEMAIL":       KeyVoicemail,
	"VOICE_MAIL":      KeyVoicemail,
	"HOSTILE":         KeyHostile,
	"REJECTED":        KeyRejected,
	"DECLINED":        KeyRejected,
	"NOT_INTERESTED":  KeyRejected,
	"CONNECTED":       KeyConnected,
	"EARLY_EXIT":      KeyEarlyExit,
	"HANGUP":          KeyEarlyExit,
	"UNCLEAR":         KeyUnclear,
	"UNKNOWN":         KeyUnclear,
}

// BookedScore is the scored booked-meeting evidence for a transcript.
type BookedScore struct {
	// Score is the cumulative evidence weight.
	Score int
	// Evidence concatenates the matched snippets.
	Evidence string
}

// ScoreBooked computes the independent booked-meeting evidence over
// lowercased dialogue text: a platform mention, an explicit scheduling
// cue, and an acceptance phrase each contribute their policy weight.
func ScoreBooked(text string, p Policy) BookedScore {
	p.ApplyDefaults()

	var score int
	var snippets []string
	for _, probe := range []struct {
		evidence string
		weight   int
	}{
		{findEvidence(platformRE, text), p.PlatformWeight},
		{findEvidence(schedulingRE, text), p.SchedulingWeight},
		{findEvidence(acceptanceRE, text), p.AcceptanceWeight},
	} {
		if probe.evidence != "" {
			score += probe.weight
			snippets = append(snippets, probe.evidence)
		}
	}

	return BookedScore{Score: score, Evidence: strings.Join(snippets, "; ")}
}

// Refine is the persistence-time classifier. It overrides the live
// outcome with scored rule evidence whenever that evidence exists,
// falling back to the upstream generator's proposed label (normalized
// through the synonym table) and finally to CONNECTED.
func Refine(lines []transcript.Line, proposed string, p Policy) Result {
	p.ApplyDefaults()
	text := strings.ToLower(transcript.Text(lines))

	if booked := ScoreBooked(text, p); booked.Score >= p.BookedCutoff {
		return Result{
			Key:      KeyBookedMeeting,
			Reason:   fmt.Sprintf("booked-meeting evidence score %d", booked.Score),
			Evidence: booked.Evidence,
		}
	}

	if ev := findEvidence(hostileRE, text); ev != "" {
		return Result{Key: KeyHostile, Reason: "profanity or do-not-call demand", Evidence: ev}
	}
	if ev := findEvidence(rejectedRE, text); ev != "" {
		return Result{Key: KeyRejected, Reason: "explicit decline language", Evidence: ev}
	}
	if ev := findEvidence(voicemailRE, text); ev != "" {
		return Result{Key: KeyVoicemail, Reason: "voicemail greeting detected", Evidence: ev}
	}

	if key, ok := NormalizeLabel(proposed); ok {
		return Result{
			Key:    key,
			Reason: fmt.Sprintf("adopted upstream label %q", proposed),
		}
	}

	return Result{Key: KeyConnected, Reason: "reached a person, no strong evidence either way"}
}

// NormalizeLabel maps a free-form upstream outcome label into the
// closed key set through the synonym table.
func NormalizeLabel(label string) (Key, bool) {
	norm := strings.ToUpper(strings.TrimSpace(label))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	key, ok := synonyms[norm]
	return key, ok
}
