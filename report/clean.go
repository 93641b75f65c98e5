package report

import "strings"

// CleanScript strips the wrapping an LLM-backed generator tends to put
// around a script: markdown code fences, surrounding quotes, and a
// leading "Script:" style heading.
func CleanScript(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s[3:], "\n"); idx >= 0 {
			s = s[3+idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	for _, heading := range []string{"script:", "suggested script:", "opener:"} {
		if len(s) >= len(heading) && strings.EqualFold(s[:len(heading)], heading) {
			s = strings.TrimSpace(s[len(heading):])
			break
		}
	}

	return s
}
