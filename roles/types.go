package roles

// Verdict is the tri-state outcome of role inference.
type Verdict string

const (
	// VerdictInsufficientSignal means the diarization gate failed:
	// the transcript does not have exactly two speakers, or the
	// word-share split suggests one "speaker" is noise.
	VerdictInsufficientSignal Verdict = "INSUFFICIENT_SIGNAL"
	// VerdictNeutral means the gate passed but neither tie-break
	// condition held; labels stay neutral.
	VerdictNeutral Verdict = "NEUTRAL"
	// VerdictConfident means semantic roles were assigned.
	VerdictConfident Verdict = "CONFIDENT"
)

// Confidence is the flat diagnostics record for one inference run.
// Invariant: RoleConfident implies DiarizationConfident.
type Confidence struct {
	// DiarizationConfident reports whether the two-speaker word-share
	// gate passed.
	DiarizationConfident bool `json:"diarization_confident"`
	// RoleConfident reports whether semantic roles were assigned.
	RoleConfident bool `json:"role_confident"`
	// Reason explains the verdict in one human-readable sentence.
	Reason string `json:"reason"`
}

// Assignment is the full result of role inference.
type Assignment struct {
	// Verdict is the tri-state inference outcome.
	Verdict Verdict `json:"verdict"`
	// Mapping maps neutral speaker labels to "You"/"Prospect".
	// Populated only when Verdict is VerdictConfident.
	Mapping map[string]string `json:"mapping,omitempty"`
	// Confidence is the flat diagnostics record.
	Confidence Confidence `json:"confidence"`
}

// Policy holds the tunable thresholds of role inference. The defaults
// are empirically chosen; treat them as policy, not invariants.
type Policy struct {
	// MaxTopShare is the largest word share the dominant speaker may
	// hold for diarization to count as confident.
	MaxTopShare float64 `yaml:"max_top_share" mapstructure:"max_top_share"`
	// MinSecondShare is the smallest word share the quieter speaker
	// must hold for diarization to count as confident.
	MinSecondShare float64 `yaml:"min_second_share" mapstructure:"min_second_share"`
	// NetMargin is the keyword net-score gap required to assign roles
	// by scoring alone.
	NetMargin int `yaml:"net_margin" mapstructure:"net_margin"`
	// ScanTurns caps how many of a speaker's lines are scanned.
	ScanTurns int `yaml:"scan_turns" mapstructure:"scan_turns"`
	// ScanChars caps how much of a speaker's text is scanned.
	ScanChars int `yaml:"scan_chars" mapstructure:"scan_chars"`
}

// ApplyDefaults applies default thresholds to unset policy fields.
func (p *Policy) ApplyDefaults() {
	if p.MaxTopShare == 0 {
		p.MaxTopShare = 0.88
	}
	if p.MinSecondShare == 0 {
		p.MinSecondShare = 0.12
	}
	if p.NetMargin == 0 {
		p.NetMargin = 2
	}
	if p.ScanTurns == 0 {
		p.ScanTurns = 30
	}
	if p.ScanChars == 0 {
		p.ScanChars = 4000
	}
}
