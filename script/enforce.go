package script

import (
	"strings"

	"github.com/kbukum/callintel/util"
)

// Enforced is the result of applying the script contract.
type Enforced struct {
	// Text is the final script text.
	Text string `json:"text"`
	// WordCount is the word count of Text.
	WordCount int `json:"word_count"`
	// Pass reports whether Text satisfies the contract
	// (more than zero and at most the word cap).
	Pass bool `json:"pass"`
}

// Policy holds the script contract's tunable bound.
type Policy struct {
	// MaxWords is the word cap. Text beyond it is truncated at the
	// word boundary.
	MaxWords int `yaml:"max_words" mapstructure:"max_words"`
}

// ApplyDefaults applies the default word cap.
func (p *Policy) ApplyDefaults() {
	if p.MaxWords == 0 {
		p.MaxWords = 90
	}
}

// Enforce applies the contract: truncate past the word cap, repair the
// trailing punctuation, and append "?" when no terminal punctuation
// remains. The question mark keeps a truncated cold-call script
// ending on an ask.
func Enforce(text string, p Policy) Enforced {
	p.ApplyDefaults()

	out := util.TruncateWords(text, p.MaxWords)
	out = strings.TrimRight(out, " \t,;:-")
	if out != "" && !strings.ContainsRune(".!?", rune(out[len(out)-1])) {
		out += "?"
	}

	count := len(strings.Fields(out))
	return Enforced{
		Text:      out,
		WordCount: count,
		Pass:      count > 0 && count <= p.MaxWords,
	}
}
