package testutil

import "github.com/kbukum/callintel/transcript"

// Lines builds canonical transcript lines from alternating
// speaker, text pairs.
func Lines(pairs ...string) []transcript.Line {
	out := make([]transcript.Line, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, transcript.Line{Speaker: pairs[i], Text: pairs[i+1]})
	}
	return out
}

// Dialogue builds a two-speaker exchange from bare texts, alternating
// the neutral "Speaker A" and "Speaker B" labels.
func Dialogue(texts ...string) []transcript.Line {
	out := make([]transcript.Line, len(texts))
	for i, text := range texts {
		out[i] = transcript.Line{Speaker: transcript.SpeakerLabel(i % 2), Text: text}
	}
	return out
}

// Utterances builds raw diarized utterances from alternating
// speakerID, text pairs.
func Utterances(pairs ...string) []transcript.Utterance {
	out := make([]transcript.Utterance, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, transcript.Utterance{SpeakerID: pairs[i], Text: pairs[i+1]})
	}
	return out
}
