// Package provider defines the pluggable-backend seam of the module.
//
// A Provider is a named backend with an availability check. The
// RequestResponse shape covers one-shot backends such as report
// generators; Adapt bridges a backend with its own wire types to a
// domain interface, and Registry manages named factories so the
// embedding service can select a backend at runtime.
//
// # Usage
//
//	reg := provider.NewRegistry[report.Generator]()
//	reg.RegisterFactory("openai", newOpenAIGenerator)
//	gen, err := reg.Create("openai", cfg)
package provider
