// Package parsers implements streaming parsers for line based list formats.
package parsers

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// SeriesParser parses a series of `T`.
type SeriesParser[T any] interface {
	// Next advances the cursor and returns the next `T`, or an error.
	//
	// Errors of type `NonResumableError` end the series: `Next` must not be
	// called again. Any other error only concerns the current item.
	Next(context.Context) (T, error)

	// Position describes where the cursor is in the underlying data,
	// in a form that can be shown to the user ("line 12").
	Position() string
}

// ForEach calls `callback` for each item of `parser`.
//
// Iteration stops at the first error, which is returned with the parser's
// position. Reaching `io.EOF` is not an error.
// Wrap `parser` with `FilterErrors` to skip resumable errors.
func ForEach[T any](ctx context.Context, parser SeriesParser[T], callback func(T) error) (rerr error) {
	defer func() {
		rerr = ErrWithPosition(parser, rerr)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := parser.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		if err := callback(res); err != nil {
			return err
		}
	}
}

// ErrWithPosition prefixes `err` with the `parser`'s position.
func ErrWithPosition[T any](parser SeriesParser[T], err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", parser.Position(), err)
}

// IsNonResumableErr returns true if `err` ends the series.
func IsNonResumableErr(err error) bool {
	var nonResumableError *NonResumableError

	return errors.As(err, &nonResumableError)
}

// NonResumableError is an error after which a parser cannot continue.
type NonResumableError struct {
	inner error
}

// NewNonResumableError wraps `inner` in a `NonResumableError`.
func NewNonResumableError(inner error) error {
	return &NonResumableError{inner}
}

func (e *NonResumableError) Error() string {
	return fmt.Sprintf("non resumable parse error: %s", e.inner.Error())
}

func (e *NonResumableError) Unwrap() error {
	return e.inner
}
