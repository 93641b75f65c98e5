package report

import "github.com/kbukum/callintel/provider"

// Request is the generator's input: the engine's canonical transcript
// plus the caller-supplied context.
type Request struct {
	// Transcript is the canonical speaker-labeled transcript text.
	Transcript string `json:"transcript"`
	// UserContext is the user-declared business context.
	UserContext string `json:"user_context,omitempty"`
	// Category is an optional style nudge. It never overrides
	// transcript evidence.
	Category string `json:"category,omitempty"`
	// OutcomeKey is the engine's live outcome, offered as a hint.
	OutcomeKey string `json:"outcome_key,omitempty"`
}

// Draft is the generator's raw output, consumed by the engine's
// enforcement pass.
type Draft struct {
	// Script is the suggested call script, unenforced.
	Script string `json:"script"`
	// ProposedOutcome is the generator's own outcome label, normalized
	// later through the engine's synonym table.
	ProposedOutcome string `json:"proposed_outcome,omitempty"`
	// Summary is the free-text coaching summary.
	Summary string `json:"summary,omitempty"`
}

// Generator produces a coaching-report draft for an analyzed call. It
// is the RequestResponse instantiation service backends plug into; the
// engine never calls it, it only consumes the resulting Draft.
type Generator = provider.RequestResponse[Request, *Draft]

// Factory creates a generator instance from configuration.
type Factory = provider.Factory[Generator]

// Registry manages named generator factories and cached instances, so
// the service layer can select a backend at runtime.
type Registry = provider.Registry[Generator]

// NewRegistry creates a new empty generator Registry.
func NewRegistry() *Registry {
	return provider.NewRegistry[Generator]()
}
