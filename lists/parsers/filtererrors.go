package parsers

import (
	"context"
	"errors"
)

// NoErrorLimit can be used to continue parsing until EOF.
const NoErrorLimit = -1

var ErrTooManyErrors = errors.New("too many parse errors")

type FilteredSeriesParser[T any] interface {
	SeriesParser[T]

	// OnErr registers a callback invoked for each error encountered.
	OnErr(func(error))
}

// FilterErrors returns a parser that skips the resumable errors of `inner`
// for which `filter` returns nil.
func FilterErrors[T any](inner SeriesParser[T], filter func(error) error) FilteredSeriesParser[T] {
	return &errorFilter[T]{inner: inner, filter: filter}
}

// AllowErrors returns a parser that skips up to `n` resumable errors of `inner`.
//
// The next error is replaced with `ErrTooManyErrors`.
func AllowErrors[T any](inner SeriesParser[T], n int) FilteredSeriesParser[T] {
	if n == NoErrorLimit {
		return FilterErrors(inner, func(error) error { return nil })
	}

	count := 0

	return FilterErrors(inner, func(err error) error {
		count++

		if count > n {
			return ErrTooManyErrors
		}

		return nil
	})
}

type errorFilter[T any] struct {
	inner  SeriesParser[T]
	filter func(error) error
}

func (f *errorFilter[T]) OnErr(callback func(error)) {
	filter := f.filter

	f.filter = func(err error) error {
		callback(ErrWithPosition(f.inner, err))

		return filter(err)
	}
}

func (f *errorFilter[T]) Position() string {
	return f.inner.Position()
}

func (f *errorFilter[T]) Next(ctx context.Context) (T, error) {
	var zero T

	for {
		res, err := f.inner.Next(ctx)
		if err == nil {
			return res, nil
		}

		if IsNonResumableErr(err) {
			// bypass the filter, the series is over
			return zero, err
		}

		if err := f.filter(err); err != nil {
			return zero, err
		}
	}
}
