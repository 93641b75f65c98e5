package contextcheck

import (
	"strings"

	"github.com/kbukum/callintel/transcript"
)

// Conflict is the detector's flat output record.
type Conflict struct {
	// Message describes the declared-vs-transcript mismatch. Empty
	// when no conflict was flagged.
	Message string `json:"message,omitempty"`
	// MissingInfo holds at most two prompts for information absent
	// from both the declared context and the transcript.
	MissingInfo []string `json:"missing_info,omitempty"`
}

// Policy holds the tunable thresholds of conflict detection.
type Policy struct {
	// StrongSignal is how many distinct taxonomy terms the transcript
	// must hit for its offer reading to count as strong.
	StrongSignal int `yaml:"strong_signal" mapstructure:"strong_signal"`
	// MaxMissingInfo caps the number of missing-information prompts.
	MaxMissingInfo int `yaml:"max_missing_info" mapstructure:"max_missing_info"`
}

// ApplyDefaults applies default thresholds to unset policy fields.
func (p *Policy) ApplyDefaults() {
	if p.StrongSignal == 0 {
		p.StrongSignal = 2
	}
	if p.MaxMissingInfo == 0 {
		p.MaxMissingInfo = 2
	}
}

// Missing-information prompts, one per dimension.
const (
	promptOffer    = "What are you selling or offering on these calls?"
	promptAudience = "Who are you calling (business type or role)?"
)

// Detect compares the user-declared context against the transcript's
// own offer evidence. Only the two asymmetric website/seo vs
// ai-receptionist cases flag a conflict; no evidence on either side
// never does.
func Detect(userContext string, lines []transcript.Line, p Policy) Conflict {
	p.ApplyDefaults()

	userText := strings.ToLower(userContext)
	transText := strings.ToLower(transcript.Text(lines))
	userHits := offerHits(userText)
	transHits := offerHits(transText)

	var c Conflict
	switch {
	case len(userHits[offerWebsite]) > 0 &&
		len(transHits[offerAIReceptionist]) >= p.StrongSignal &&
		len(transHits[offerWebsite]) == 0:
		c.Message = "Your context says you sell website/SEO/marketing services, " +
			"but the call is clearly about an AI receptionist offer."
	case len(userHits[offerAIReceptionist]) > 0 &&
		len(transHits[offerWebsite]) >= p.StrongSignal &&
		len(transHits[offerAIReceptionist]) == 0:
		c.Message = "Your context says you sell an AI receptionist, " +
			"but the call is clearly about website/SEO/marketing services."
	}

	// Each prompt fires only when BOTH sides lack signal for its
	// dimension.
	if len(userHits) == 0 && len(transHits) == 0 {
		c.MissingInfo = append(c.MissingInfo, promptOffer)
	}
	if prospectType(userText) == "" && prospectType(transText) == "" {
		c.MissingInfo = append(c.MissingInfo, promptAudience)
	}
	if len(c.MissingInfo) > p.MaxMissingInfo {
		c.MissingInfo = c.MissingInfo[:p.MaxMissingInfo]
	}

	return c
}
