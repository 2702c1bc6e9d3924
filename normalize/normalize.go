// Package normalize turns raw domain names into the canonical label form
// shared by suffix rules and queries: lowercase, ASCII-compatible, TLD last.
package normalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

const acePrefix = "xn--"

// nolint:gochecknoglobals
var labelSeparators = strings.NewReplacer(
	"。", ".", // ideographic full stop
	"．", ".", // fullwidth full stop
	"｡", ".", // halfwidth ideographic full stop
)

// Labels splits `raw` into canonical labels.
//
// One leading and one trailing dot are ignored, so "example.com",
// ".example.com" and "example.com." are equivalent.
// Malformed labels are not rejected: they are returned lowercased and
// will simply not match any specific rule.
//
// www.Example.COM -> ["www", "example", "com"]
func Labels(raw string) []string {
	if !isASCII(raw) {
		raw = labelSeparators.Replace(raw)
	}

	raw = strings.TrimPrefix(raw, ".")
	raw = strings.TrimSuffix(raw, ".")

	if len(raw) == 0 {
		return []string{}
	}

	labels := strings.Split(raw, ".")
	for i, label := range labels {
		labels[i] = Label(label)
	}

	return labels
}

// Label returns the canonical form of a single label.
//
// ASCII labels, including labels already in "xn--" form, are only lowercased.
// Other labels are converted to their ASCII-Compatible Encoding.
func Label(label string) string {
	if isASCII(label) {
		return toLowerASCII(label)
	}

	if ace, err := idna.Lookup.ToASCII(label); err == nil && isSingleLabel(ace) {
		return toLowerASCII(ace)
	}

	// Lookup rejects some labels (bidi rules, leading hyphens...),
	// plain punycode still yields a stable encoding for them
	if ace, err := idna.Punycode.ToASCII(strings.ToLower(label)); err == nil && isSingleLabel(ace) {
		return toLowerASCII(ace)
	}

	return strings.ToLower(label)
}

// Join is the inverse of `Labels` for canonical labels.
func Join(labels []string) string {
	return strings.Join(labels, ".")
}

// ToUnicode converts the ACE labels of a dotted name back to Unicode for display.
// Labels that aren't valid punycode are kept.
func ToUnicode(name string) string {
	if !strings.Contains(name, acePrefix) {
		return name
	}

	labels := strings.Split(name, ".")
	for i, label := range labels {
		if !IsACE(label) {
			continue
		}

		if u, err := idna.Punycode.ToUnicode(label); err == nil {
			labels[i] = u
		}
	}

	return Join(labels)
}

// IsACE returns true if `label` is in ASCII-Compatible Encoding.
func IsACE(label string) bool {
	return len(label) > len(acePrefix) && strings.EqualFold(label[:len(acePrefix)], acePrefix)
}

func isSingleLabel(s string) bool {
	return len(s) > 0 && !strings.Contains(s, ".")
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

func toLowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if c := b[j]; 'A' <= c && c <= 'Z' {
					b[j] = c + 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}
