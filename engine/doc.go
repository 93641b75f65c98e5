// Package engine orchestrates one call-analysis run: speaker
// normalization, gated role inference, outcome classification, and
// context-conflict detection over the same canonical transcript, plus
// the enforcement pass applied to a generated report draft.
//
// The engine is pure with respect to its inputs: no I/O, no shared
// mutable state, safe for concurrent use. Malformed or empty input
// degrades to honest advisory results (UNCLEAR outcome, neutral
// labels) instead of errors.
//
// # Usage
//
//	eng := engine.New(config.Default().Policy)
//	diag := eng.Analyze(ctx, engine.Request{Utterances: utts, UserContext: "I sell SEO"})
//	final := eng.Finalize(ctx, diag, draft)
package engine
