package transcript

import (
	"strings"

	"github.com/kbukum/callintel/util"
)

// Render returns the canonical transcript text: one "Label: text" line
// per canonical line, newline-joined.
func Render(lines []Line) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line.Speaker)
		b.WriteString(": ")
		b.WriteString(line.Text)
	}
	return b.String()
}

// Text returns the dialogue text of all lines joined by single spaces,
// without speaker labels. Classifiers match phrases against this form.
func Text(lines []Line) string {
	return strings.Join(util.Map(lines, func(line Line) string { return line.Text }), " ")
}

// Relabel returns a copy of lines with speaker labels replaced
// according to mapping; labels absent from the mapping are kept.
// Adjacent lines that end up sharing a label are merged.
func Relabel(lines []Line, mapping map[string]string) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		label := line.Speaker
		if mapped, ok := mapping[label]; ok {
			label = mapped
		}
		appendLine(&out, label, line.Text)
	}
	return out
}
