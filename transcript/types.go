package transcript

import (
	"strconv"
	"strings"
)

// Canonical speaker labels with semantic meaning. Neutral labels
// ("Speaker A".."Speaker Z") are generated by SpeakerLabel.
const (
	// LabelYou marks the calling rep's side of the conversation.
	LabelYou = "You"
	// LabelProspect marks the called party's side of the conversation.
	LabelProspect = "Prospect"
	// LabelOther holds text that carried no recognizable speaker marker.
	LabelOther = "Other"
)

// Utterance is one diarized segment as produced by the upstream
// transcription provider. Order in a slice is temporal.
type Utterance struct {
	// SpeakerID is the raw speaker identifier from the diarizer.
	SpeakerID string `json:"speaker_id"`
	// Text is the transcribed text for this segment.
	Text string `json:"text"`
}

// Line is one canonically labeled transcript line. In a normalized
// slice, consecutive lines never share a label.
type Line struct {
	// Speaker is the canonical label ("Speaker A", "You", "Prospect", "Other").
	Speaker string `json:"speaker"`
	// Text is the cleaned utterance text.
	Text string `json:"text"`
}

// SpeakerStats holds per-speaker volume counters for one analysis run.
type SpeakerStats struct {
	// Words is the total word count across the speaker's lines.
	Words int
	// Turns is the number of canonical lines attributed to the speaker.
	Turns int
}

// SpeakerLabel returns the neutral label for the nth distinct speaker:
// "Speaker A" for 0 through "Speaker Z" for 25, then "Speaker 27" and up.
func SpeakerLabel(n int) string {
	if n < 26 {
		return "Speaker " + string(rune('A'+n))
	}
	return "Speaker " + strconv.Itoa(n+1)
}

// IsNeutralLabel reports whether label is a generated "Speaker X" label,
// i.e. one that has not been upgraded to a semantic role.
func IsNeutralLabel(label string) bool {
	return strings.HasPrefix(label, "Speaker ")
}

// Words returns the whitespace-separated word count of s.
func Words(s string) int {
	return len(strings.Fields(s))
}
