// Package rules parses Public Suffix List text into rules.
package rules

//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/0xERR0R/pslsplit/normalize"
)

const (
	// WildcardLabel matches any single label.
	WildcardLabel = "*"

	exceptionMarker = "!"
)

// ErrInvalidRule is returned for lines that are not a valid rule.
var ErrInvalidRule = errors.New("invalid rule")

// Kind of a suffix rule ENUM(
// normal    // the labels are a public suffix
// wildcard  // the leftmost label matches any label
// exception // the rule is registrable despite a matching wildcard
// )
type Kind uint8

// Rule is a parsed suffix rule.
//
// Labels are stored most significant first: "*.kobe.jp" is ["jp", "kobe", "*"].
// A Rule must not be modified once parsed.
type Rule struct {
	Labels  []string
	Kind    Kind
	Private bool
}

// String returns the rule as written in the list.
func (r Rule) String() string {
	var sb strings.Builder

	if r.Kind == KindException {
		sb.WriteString(exceptionMarker)
	}

	for i := len(r.Labels) - 1; i >= 0; i-- {
		sb.WriteString(r.Labels[i])

		if i > 0 {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}

// ParseRule parses a single rule.
//
// Labels are canonicalized like queries so both compare directly.
func ParseRule(text string) (Rule, error) {
	if !utf8.ValidString(text) {
		return Rule{}, fmt.Errorf("%w %q: not valid UTF-8", ErrInvalidRule, text)
	}

	kind := KindNormal
	value := text

	if strings.HasPrefix(value, exceptionMarker) {
		kind = KindException
		value = strings.TrimPrefix(value, exceptionMarker)
	}

	if len(value) == 0 {
		return Rule{}, fmt.Errorf("%w %q: no labels", ErrInvalidRule, text)
	}

	parts := strings.Split(value, ".")
	labels := make([]string, len(parts))

	for i, part := range parts {
		switch {
		case len(part) == 0:
			return Rule{}, fmt.Errorf("%w %q: empty label", ErrInvalidRule, text)

		case part == WildcardLabel && i > 0:
			return Rule{}, fmt.Errorf("%w %q: wildcard must be the leftmost label", ErrInvalidRule, text)

		case part == WildcardLabel && kind == KindException:
			return Rule{}, fmt.Errorf("%w %q: exception can't be a wildcard", ErrInvalidRule, text)

		case part == WildcardLabel:
			kind = KindWildcard
		}

		labels[len(parts)-1-i] = normalize.Label(part)
	}

	if kind == KindException && len(labels) < 2 { //nolint:gomnd
		return Rule{}, fmt.Errorf("%w %q: exception needs at least two labels", ErrInvalidRule, text)
	}

	return Rule{Labels: labels, Kind: kind}, nil
}
