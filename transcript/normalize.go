package transcript

import "strings"

// Normalize converts an ordered diarizer utterance list into canonical
// lines. Each distinct raw speaker id (case-insensitive) gets a stable
// neutral label in order of first appearance. Utterance text is
// whitespace-collapsed; empty utterances are dropped; consecutive
// utterances from the same speaker merge into one line.
func Normalize(utterances []Utterance) []Line {
	labels := make(map[string]string)
	var lines []Line

	for _, u := range utterances {
		text := CleanText(u.Text)
		if text == "" {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(u.SpeakerID))
		label, ok := labels[key]
		if !ok {
			label = SpeakerLabel(len(labels))
			labels[key] = label
		}

		appendLine(&lines, label, text)
	}

	return lines
}

// Stats computes per-speaker word and turn counts over canonical lines.
func Stats(lines []Line) map[string]SpeakerStats {
	stats := make(map[string]SpeakerStats)
	for _, line := range lines {
		s := stats[line.Speaker]
		s.Words += Words(line.Text)
		s.Turns++
		stats[line.Speaker] = s
	}
	return stats
}

// CleanText collapses runs of whitespace into single spaces and trims
// the ends.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// appendLine adds a line, merging into the previous one when the label
// matches so adjacent lines never share a speaker.
func appendLine(lines *[]Line, label, text string) {
	if n := len(*lines); n > 0 && (*lines)[n-1].Speaker == label {
		(*lines)[n-1].Text += " " + text
		return
	}
	*lines = append(*lines, Line{Speaker: label, Text: text})
}
