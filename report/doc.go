// Package report defines the contract between the analysis engine and
// the external coaching-report generator.
//
// The engine never produces a report itself: a Generator (typically an
// LLM-backed collaborator owned by the service layer) turns the
// engine's diagnostics into a Draft, and the engine only validates and
// enforces that draft afterwards. Generator is the provider package's
// RequestResponse shape instantiated for this exchange, so backends
// register through a provider.Registry and bridge their own wire types
// with provider.Adapt. CleanScript strips the markdown
// wrapping that generator output tends to carry before the script
// contract is applied.
package report
