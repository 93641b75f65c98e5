package outcome

// Key is one member of the closed call-outcome set.
type Key string

const (
	// KeyVoicemail means the call hit a voicemail or answering machine.
	KeyVoicemail Key = "VOICEMAIL"
	// KeyHostile means profanity or an explicit do-not-call demand.
	KeyHostile Key = "HOSTILE"
	// KeyEarlyExit means a short rejection within the opening words.
	KeyEarlyExit Key = "EARLY_EXIT"
	// KeyBookedMeeting means scored evidence of a scheduled meeting.
	KeyBookedMeeting Key = "BOOKED_MEETING"
	// KeyRejected means explicit decline language later in the call.
	KeyRejected Key = "REJECTED"
	// KeyConnected means a real two-way conversation took place.
	KeyConnected Key = "CONNECTED"
	// KeyNoAnswer means the call never reached a person; only the
	// upstream label normalization produces it, never the live cascade.
	KeyNoAnswer Key = "NO_ANSWER"
	// KeyUnclear means not enough signal to classify. It is a valid
	// result, not an error.
	KeyUnclear Key = "UNCLEAR"
)

// Result is one classification decision.
type Result struct {
	// Key is the outcome key.
	Key Key `json:"key"`
	// Reason is a human-readable explanation of the decision.
	Reason string `json:"reason"`
	// Evidence holds the matched phrase(s) that justify the key.
	// Non-empty whenever a rule, rather than the fallback, decided.
	Evidence string `json:"evidence,omitempty"`
}

// Policy holds the tunable thresholds of outcome classification.
// Values are empirically chosen policy, not structural invariants.
type Policy struct {
	// EarlyExitWindow is how many opening words are searched for a
	// short rejection phrase.
	EarlyExitWindow int `yaml:"early_exit_window" mapstructure:"early_exit_window"`
	// BookedCutoff is the evidence score at or above which the
	// refinement classifier declares a booked meeting.
	BookedCutoff int `yaml:"booked_cutoff" mapstructure:"booked_cutoff"`
	// PlatformWeight scores a video-call platform or calendar-link mention.
	PlatformWeight int `yaml:"platform_weight" mapstructure:"platform_weight"`
	// SchedulingWeight scores an explicit date or time phrase.
	SchedulingWeight int `yaml:"scheduling_weight" mapstructure:"scheduling_weight"`
	// AcceptanceWeight scores an agreement phrase.
	AcceptanceWeight int `yaml:"acceptance_weight" mapstructure:"acceptance_weight"`
}

// ApplyDefaults applies default thresholds to unset policy fields.
func (p *Policy) ApplyDefaults() {
	if p.EarlyExitWindow == 0 {
		p.EarlyExitWindow = 35
	}
	if p.BookedCutoff == 0 {
		p.BookedCutoff = 4
	}
	if p.PlatformWeight == 0 {
		p.PlatformWeight = 2
	}
	if p.SchedulingWeight == 0 {
		p.SchedulingWeight = 2
	}
	if p.AcceptanceWeight == 0 {
		p.AcceptanceWeight = 1
	}
}
