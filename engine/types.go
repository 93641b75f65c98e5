package engine

import (
	"github.com/kbukum/callintel/contextcheck"
	"github.com/kbukum/callintel/outcome"
	"github.com/kbukum/callintel/report"
	"github.com/kbukum/callintel/roles"
	"github.com/kbukum/callintel/script"
	"github.com/kbukum/callintel/transcript"
	"github.com/kbukum/callintel/util"
)

// Request is one analysis run's input. Utterances take precedence;
// RawText is the fallback for transcripts that only exist as an
// inline-labeled blob.
type Request struct {
	// Utterances is the ordered diarizer output, if available.
	Utterances []transcript.Utterance `json:"utterances,omitempty"`
	// RawText is an inline-labeled transcript blob.
	RawText string `json:"raw_text,omitempty"`
	// UserContext is the user-declared business context.
	UserContext string `json:"user_context,omitempty" validate:"max=2000"`
	// Category is an optional style nudge for report generation. It
	// never overrides transcript evidence.
	Category string `json:"category,omitempty" validate:"max=100"`
}

// Diagnostics bundles everything one analysis run derived from the
// transcript. It is assembled once and never mutated afterwards.
type Diagnostics struct {
	// RunID identifies this analysis run.
	RunID string `json:"run_id"`
	// Transcript is the canonical rendered transcript text.
	Transcript string `json:"transcript"`
	// Lines is the canonical line sequence behind Transcript.
	Lines []transcript.Line `json:"lines"`
	// Roles is the gated role-inference result.
	Roles roles.Assignment `json:"roles"`
	// Outcome is the live cascade classification.
	Outcome outcome.Result `json:"outcome"`
	// Context is the declared-vs-transcript conflict check.
	Context contextcheck.Conflict `json:"context"`
	// Inferred is the business context read out of the transcript.
	Inferred contextcheck.Inferred `json:"inferred"`
}

// Final is the enforcement pass applied to a generator draft.
type Final struct {
	// Outcome is the refined, persistence-time classification.
	Outcome outcome.Result `json:"outcome"`
	// Script is the contract-enforced call script.
	Script script.Enforced `json:"script"`
}

// ReportRequest builds the generator request for this run. The
// category falls back to a generic style tag when the caller gave none.
func (d Diagnostics) ReportRequest(req Request) report.Request {
	return report.Request{
		Transcript:  d.Transcript,
		UserContext: util.SanitizeString(req.UserContext),
		Category:    util.Coalesce(util.SanitizeString(req.Category), "general_outbound"),
		OutcomeKey:  string(d.Outcome.Key),
	}
}
