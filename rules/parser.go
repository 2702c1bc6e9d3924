package rules

import (
	"context"
	"io"
	"strings"

	"github.com/0xERR0R/pslsplit/lists/parsers"
	"github.com/0xERR0R/pslsplit/log"
)

const (
	privateBeginMarker = "===BEGIN PRIVATE DOMAINS==="
	privateEndMarker   = "===END PRIVATE DOMAINS==="
)

// Options controls `Parse`.
type Options struct {
	// MaxErrors is the number of invalid lines tolerated before parsing is
	// aborted with `parsers.ErrTooManyErrors`. Zero or negative means no limit.
	MaxErrors int

	// ExcludePrivate drops the rules of the private domains section.
	ExcludePrivate bool

	// OnInvalidRule is called for each skipped line.
	// Defaults to a warning on the package logger.
	OnInvalidRule func(error)
}

// Parse reads all rules from `r`.
//
// Invalid lines are skipped and reported through `opts.OnInvalidRule`.
// An error is only returned if `r` can't be read, `ctx` is done or too many
// lines are invalid.
func Parse(ctx context.Context, r io.Reader, opts Options) ([]Rule, error) {
	private := false

	lines := parsers.LinesWithComments(r, func(comment string) {
		switch {
		case strings.HasPrefix(comment, privateBeginMarker):
			private = true
		case strings.HasPrefix(comment, privateEndMarker):
			private = false
		}
	})

	maxErrors := opts.MaxErrors
	if maxErrors <= 0 {
		maxErrors = parsers.NoErrorLimit
	}

	p := parsers.AllowErrors(parsers.TryAdapt(lines, ParseRule), maxErrors)

	onInvalid := opts.OnInvalidRule
	if onInvalid == nil {
		onInvalid = func(err error) {
			log.PrefixedLog("rules").Warnf("skipping rule: %s", err)
		}
	}

	p.OnErr(onInvalid)

	var res []Rule

	err := parsers.ForEach(ctx, p, func(rule Rule) error {
		if private {
			if opts.ExcludePrivate {
				return nil
			}

			rule.Private = true
		}

		res = append(res, rule)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
