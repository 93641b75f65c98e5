package provider

import "context"

// Adapt wraps a RequestResponse provider with input/output type
// transformation, bridging a backend with wire types [BI, BO] to a
// domain interface with types [I, O].
//
// mapIn converts the domain input to the backend input and mapOut
// converts the backend output back. An error from either short-circuits
// the exchange.
func Adapt[I, O, BI, BO any](
	inner RequestResponse[BI, BO],
	name string,
	mapIn func(ctx context.Context, input I) (BI, error),
	mapOut func(output BO) (O, error),
) RequestResponse[I, O] {
	return &adapted[I, O, BI, BO]{
		inner:  inner,
		name:   name,
		mapIn:  mapIn,
		mapOut: mapOut,
	}
}

type adapted[I, O, BI, BO any] struct {
	inner  RequestResponse[BI, BO]
	name   string
	mapIn  func(ctx context.Context, input I) (BI, error)
	mapOut func(output BO) (O, error)
}

func (a *adapted[I, O, BI, BO]) Name() string { return a.name }

func (a *adapted[I, O, BI, BO]) IsAvailable(ctx context.Context) bool {
	return a.inner.IsAvailable(ctx)
}

func (a *adapted[I, O, BI, BO]) Execute(ctx context.Context, input I) (O, error) {
	var zero O

	backendInput, err := a.mapIn(ctx, input)
	if err != nil {
		return zero, err
	}

	backendOutput, err := a.inner.Execute(ctx, backendInput)
	if err != nil {
		return zero, err
	}

	return a.mapOut(backendOutput)
}
