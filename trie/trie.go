package trie

import (
	"github.com/0xERR0R/pslsplit/rules"
)

// Index stores suffix rules and finds the public suffix boundary of a domain.
//
// Nodes are keyed by label, most significant label first: the rule
// "*.kobe.jp" is stored as root -> "jp" -> "kobe" -> wildcard.
//
// An Index is immutable once built, so it can be shared by concurrent
// readers without synchronization.
type Index struct {
	root  node
	rules int
}

type node struct {
	children map[string]*node
	wildcard *node

	// terminal: a rule ends at this node
	terminal  bool
	exception bool
}

func (n *node) child(label string) *node {
	if label == rules.WildcardLabel {
		if n.wildcard == nil {
			n.wildcard = &node{}
		}

		return n.wildcard
	}

	if n.children == nil {
		n.children = make(map[string]*node, 1)
	}

	c, ok := n.children[label]
	if !ok {
		c = &node{}
		n.children[label] = c
	}

	return c
}

// Build creates an Index containing `rs`.
func Build(rs []rules.Rule) *Index {
	idx := &Index{}

	for _, rule := range rs {
		idx.insert(rule)
	}

	return idx
}

func (i *Index) insert(rule rules.Rule) {
	if len(rule.Labels) == 0 {
		return
	}

	n := &i.root
	for _, label := range rule.Labels {
		n = n.child(label)
	}

	if !n.terminal {
		i.rules++
	}

	n.terminal = true
	n.exception = n.exception || rule.Kind == rules.KindException
}

// Len returns the number of distinct rules.
func (i *Index) Len() int {
	return i.rules
}

// IsEmpty returns true if the index has no rules.
func (i *Index) IsEmpty() bool {
	return i.rules == 0
}

type match struct {
	labels    int
	exception bool
}

// longer returns true if `m` takes precedence over `other`:
// the longest match wins, an exception wins a tie.
func (m match) longer(other match) bool {
	if m.labels != other.labels {
		return m.labels > other.labels
	}

	return m.exception && !other.exception
}

// Match returns the number of labels of the public suffix of `labels`,
// and whether an exception rule decided it.
//
// `labels` must be canonical (see `normalize.Labels`), in domain order:
// TLD last. Domains without a matching rule have a single label suffix.
func (i *Index) Match(labels []string) (suffixLen int, isException bool) {
	if len(labels) == 0 {
		return 0, false
	}

	best := match{}
	n := &i.root

	for depth := 1; depth <= len(labels); depth++ {
		label := labels[len(labels)-depth]

		next := n.children[label]

		if next == nil {
			next = n.wildcard
		} else if n.wildcard != nil && n.wildcard.terminal {
			// the wildcard also matches this label: it's a candidate,
			// but the walk continues with the literal label
			if m := (match{labels: depth, exception: n.wildcard.exception}); m.longer(best) {
				best = m
			}
		}

		if next == nil {
			break
		}

		if next.terminal {
			if m := (match{labels: depth, exception: next.exception}); m.longer(best) {
				best = m
			}
		}

		n = next
	}

	switch {
	case best.labels == 0:
		// implicit "*" rule
		return 1, false

	case best.exception:
		// the exception's own leftmost label is registrable
		if best.labels > 1 {
			return best.labels - 1, true
		}

		return 1, true
	}

	return best.labels, false
}
