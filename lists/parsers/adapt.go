package parsers

import "context"

// TryAdapt returns a parser converting each value of `inner` with `adapt`.
//
// Errors returned by `adapt` are resumable: the next call to `Next` moves on
// to the next value of `inner`.
func TryAdapt[From, To any](inner SeriesParser[From], adapt func(From) (To, error)) SeriesParser[To] {
	return &adapter[From, To]{inner: inner, adapt: adapt}
}

type adapter[From, To any] struct {
	inner SeriesParser[From]
	adapt func(From) (To, error)
}

func (a *adapter[From, To]) Position() string {
	return a.inner.Position()
}

func (a *adapter[From, To]) Next(ctx context.Context) (To, error) {
	var zero To

	from, err := a.inner.Next(ctx)
	if err != nil {
		return zero, err
	}

	res, err := a.adapt(from)
	if err != nil {
		return zero, err
	}

	return res, nil
}
