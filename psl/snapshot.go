package psl

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/zeebo/xxh3"

	"github.com/0xERR0R/pslsplit/evt"
	"github.com/0xERR0R/pslsplit/normalize"
	"github.com/0xERR0R/pslsplit/rules"
	"github.com/0xERR0R/pslsplit/trie"
)

// Snapshot is an immutable, published suffix list.
type Snapshot struct {
	ID        uuid.UUID
	Built     time.Time
	RuleCount int

	// Hash of the text the snapshot was built from
	Hash uint64

	index *trie.Index

	// nil if disabled
	cache *lru.Cache
}

func emptySnapshot() *Snapshot {
	return &Snapshot{index: trie.Build(nil)}
}

func newSnapshot(rs []rules.Rule, hash uint64, cacheSize int) (*Snapshot, error) {
	s := &Snapshot{
		ID:    uuid.New(),
		Built: time.Now(),
		Hash:  hash,
		index: trie.Build(rs),
	}

	s.RuleCount = s.index.Len()

	if cacheSize > 0 {
		cache, err := lru.New(cacheSize)
		if err != nil {
			return nil, fmt.Errorf("can't create split cache: %w", err)
		}

		s.cache = cache

		evt.Bus().Publish(evt.SuffixListSplitCacheChanged, 0)
	}

	return s, nil
}

func contentHash(text string) uint64 {
	return xxh3.HashString(text)
}

// IsEmpty returns true if no list was loaded into the snapshot.
func (s *Snapshot) IsEmpty() bool {
	return s.RuleCount == 0
}

// CacheSize returns the number of cached split results.
func (s *Snapshot) CacheSize() int {
	if s.cache == nil {
		return 0
	}

	return s.cache.Len()
}

// Split cuts `domain` using the snapshot's rules.
func (s *Snapshot) Split(domain string) SplitResult {
	if s.cache == nil {
		return split(normalize.Labels(domain), s.index)
	}

	if res, ok := s.cache.Get(domain); ok {
		return res.(SplitResult)
	}

	res := split(normalize.Labels(domain), s.index)

	if evicted := s.cache.Add(domain, res); !evicted {
		evt.Bus().Publish(evt.SuffixListSplitCacheChanged, s.cache.Len())
	}

	return res
}

func split(labels []string, index *trie.Index) SplitResult {
	n := len(labels)
	if n == 0 {
		return SplitResult{}
	}

	suffixLen, _ := index.Match(labels)
	if suffixLen >= n {
		return SplitResult{Suffix: normalize.Join(labels)}
	}

	domainIdx := n - suffixLen - 1

	return SplitResult{
		Subdomain: normalize.Join(labels[:domainIdx]),
		Domain:    labels[domainIdx],
		Suffix:    normalize.Join(labels[domainIdx+1:]),
	}
}

// ToUnicode returns the result with ACE labels converted back to Unicode.
func (r SplitResult) ToUnicode() SplitResult {
	return SplitResult{
		Subdomain: normalize.ToUnicode(r.Subdomain),
		Domain:    normalize.ToUnicode(r.Domain),
		Suffix:    normalize.ToUnicode(r.Suffix),
	}
}
