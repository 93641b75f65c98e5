package transcript

import (
	"regexp"
	"strings"
)

// labelMarker matches an inline speaker marker: a recognized label
// token followed by a colon. "Speaker <letter-or-number>" stays
// neutral; the rest map to semantic labels in canonicalLabel.
var labelMarker = regexp.MustCompile(`(?i)\b(speaker\s+(?:[a-z]\b|[0-9]+)|prospect|customer|rep|caller|agent|you|other)(\s*):`)

// Parse converts a single text blob with inline speaker markers into
// canonical lines. A line break is inserted before every recognized
// marker, whitespace is collapsed, and each piece is mapped to its
// canonical label. A doubled marker ("You: Prospect: ...") collapses to
// the outer label. Text with no recognizable marker is kept verbatim
// under the Other label rather than dropped.
func Parse(blob string) []Line {
	// The blob's own whitespace (including newlines) collapses first;
	// only the breaks inserted before markers split lines.
	broken := labelMarker.ReplaceAllString(CleanText(blob), "\n$0")

	var lines []Line
	pending := ""

	for _, raw := range strings.Split(broken, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		label, rest, ok := splitMarker(raw)
		if !ok {
			label = LabelOther
			rest = CleanText(raw)
		}

		if rest == "" {
			// Bare marker: remember it as the outer label for the
			// nested marker that follows. The first one wins.
			if pending == "" {
				pending = label
			}
			continue
		}

		if pending != "" {
			label = pending
			pending = ""
		}

		appendLine(&lines, label, rest)
	}

	return lines
}

// splitMarker splits "Label: text" into a canonical label and cleaned
// text. ok is false when the line does not start with a marker.
func splitMarker(line string) (label, rest string, ok bool) {
	loc := labelMarker.FindStringSubmatchIndex(line)
	if loc == nil || loc[0] != 0 {
		return "", "", false
	}
	token := line[loc[2]:loc[3]]
	rest = CleanText(line[loc[1]:])
	return canonicalLabel(token), rest, true
}

// canonicalLabel maps a recognized marker token to its canonical label.
func canonicalLabel(token string) string {
	token = strings.ToLower(CleanText(token))
	switch token {
	case "prospect", "customer":
		return LabelProspect
	case "rep", "caller", "agent", "you":
		return LabelYou
	case "other":
		return LabelOther
	}
	// "speaker <x>" stays neutral.
	id := strings.TrimSpace(strings.TrimPrefix(token, "speaker"))
	return "Speaker " + strings.ToUpper(id)
}
