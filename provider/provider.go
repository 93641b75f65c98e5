package provider

import "context"

// Provider is the base interface all pluggable backends implement.
type Provider interface {
	// Name returns the backend's unique name.
	Name() string
	// IsAvailable checks if the backend is ready to handle requests.
	IsAvailable(ctx context.Context) bool
}

// Factory creates a provider instance from configuration.
type Factory[T Provider] func(cfg map[string]any) (T, error)

// RequestResponse represents a provider that takes one input and
// returns one output. Report generation is the one-shot exchange this
// module consumes through it.
type RequestResponse[I, O any] interface {
	Provider
	Execute(ctx context.Context, input I) (O, error)
}
