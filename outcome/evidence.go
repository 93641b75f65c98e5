package outcome

import (
	"regexp"
	"strings"
)

// Phrase sets shared by the live cascade and the refinement
// classifier. All matching happens against lowercased dialogue text.
var (
	voicemailRE = regexp.MustCompile(`voice ?mail|mailbox|after the tone|leave (?:a|your) message|(?:is |are )?not available`)

	hostileRE = regexp.MustCompile(`\b(?:fuck\w*|shit|asshole|bastard|bitch)\b|stop calling|don'?t call|do not call|never call|take me off (?:your|the) list`)

	earlyExitRE = regexp.MustCompile(`not interested|no thanks?|no thank you|wrong number|\bbusy\b|\bstop\b|don'?t want|not right now`)

	rejectedRE = regexp.MustCompile(`not interested|no thank you|don'?t need|we already (?:have|use|work with)|we'?re (?:all set|good|fine)|please remove|not a good fit`)

	platformRE = regexp.MustCompile(`\bzoom\b|google meet|\bteams\b|\bskype\b|calendly|calendar (?:link|invite)|send (?:you |over )?(?:an |the )?invite|video call`)

	schedulingRE = regexp.MustCompile(`\b(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b|\btomorrow\b|next week|at \d{1,2}(?::\d{2})?\s*(?:am|pm|o'?clock)|in the (?:morning|afternoon|evening)`)

	acceptanceRE = regexp.MustCompile(`sounds good|that works|works for me|\bperfect\b|\byes\b|\byeah\b|\bsure\b|let'?s do (?:it|that)|see you then`)
)

// findEvidence returns the first match of re in text, or "" when none.
func findEvidence(re *regexp.Regexp, text string) string {
	return re.FindString(text)
}

// firstWords returns the first n whitespace-separated words of text.
func firstWords(text string, n int) string {
	fields := strings.Fields(text)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}
