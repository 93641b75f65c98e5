package roles

import "regexp"

// repPatterns match phrases typical of the calling rep: greetings,
// self-introduction, permission asks, scheduling asks.
var repPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(hi|hello|hey)\b`),
	regexp.MustCompile(`\bmy name is\b`),
	regexp.MustCompile(`\bthis is\b`),
	regexp.MustCompile(`\bcalling (from|about|because)\b`),
	regexp.MustCompile(`\bquick question\b`),
	regexp.MustCompile(`\bdo you have (a|twenty|20|30|a few)?\s*(seconds|minutes|moment)\b`),
	regexp.MustCompile(`\bcan i\b`),
	regexp.MustCompile(`\bis this\b`),
	regexp.MustCompile(`\b(schedule|book) (a|an|some)?\s*(call|time|demo|meeting)\b`),
	regexp.MustCompile(`\bare you the (owner|manager|right person)\b`),
	regexp.MustCompile(`\breason for my call\b`),
}

// prospectPatterns match phrases typical of the called party: explicit
// rejection, price pushback, suspicion, incumbency.
var prospectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bnot interested\b`),
	regexp.MustCompile(`\bno thanks?\b`),
	regexp.MustCompile(`\bwho is this\b`),
	regexp.MustCompile(`\bhow did you get (this|my) number\b`),
	regexp.MustCompile(`\bwe already (have|use|work with)\b`),
	regexp.MustCompile(`\bwe're (all set|good|fine)\b`),
	regexp.MustCompile(`\bstop calling\b`),
	regexp.MustCompile(`\btoo expensive\b`),
	regexp.MustCompile(`\bhow much (is it|does it cost)\b`),
	regexp.MustCompile(`\btake me off\b`),
}
