// Package psl splits domain names into subdomain, registered domain and
// public suffix using a periodically refreshed public suffix list.
package psl

//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/0xERR0R/pslsplit/config"
	"github.com/0xERR0R/pslsplit/evt"
	"github.com/0xERR0R/pslsplit/log"
	"github.com/0xERR0R/pslsplit/rules"
	"github.com/0xERR0R/pslsplit/util"
)

// State of a List ENUM(
// uninitialized // no load was attempted yet
// loading // a load is in progress
// ready // a list was published
// failed // the first load failed
// )
type State int32

// ErrClosed is returned by `Refresh` once the list was closed.
var ErrClosed = errors.New("suffix list is closed")

// Logger receives the messages of a List.
type Logger interface {
	Detail(msg string)
	Warning(msg string)
	Error(msg string)
}

// DataSource returns the raw suffix list text.
type DataSource interface {
	Fetch(ctx context.Context) (string, error)
}

// DataSourceFunc adapts a function to `DataSource`.
type DataSourceFunc func(ctx context.Context) (string, error)

// Fetch implements `DataSource`.
func (f DataSourceFunc) Fetch(ctx context.Context) (string, error) {
	return f(ctx)
}

// FetchError is returned by `Refresh` when the data source failed.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("can't fetch suffix list: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Options configures a List.
type Options struct {
	DataSource DataSource

	// Logger defaults to the "psl" prefixed global logger.
	Logger Logger

	// RefreshPeriod enables the periodic refresh if greater than zero.
	RefreshPeriod time.Duration

	// Strategy of the initial load.
	Strategy config.InitStrategy

	// MaxErrors is the number of invalid rules tolerated per load. Zero or negative means no limit.
	MaxErrors int

	ExcludePrivate bool

	// CacheSize is the number of split results kept per published list. Zero disables the cache.
	CacheSize int
}

// OptionsFromConfig returns the options matching `cfg`, without data source and logger.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		RefreshPeriod:  cfg.Loading.RefreshPeriod.ToDuration(),
		Strategy:       cfg.Loading.Strategy,
		MaxErrors:      cfg.Loading.MaxErrorsPerSource,
		ExcludePrivate: !cfg.Loading.IncludePrivate,
		CacheSize:      cfg.Cache.MaxItemsCount,
	}
}

// SplitResult is a domain name cut at its public suffix.
type SplitResult struct {
	Subdomain string `json:"subdomain"`
	Domain    string `json:"domain"`
	Suffix    string `json:"suffix"`
}

// String returns the non-empty parts joined with ".".
func (r SplitResult) String() string {
	parts := make([]string, 0, 3)

	for _, part := range []string{r.Subdomain, r.Domain, r.Suffix} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ".")
}

// RegisteredDomain returns the domain joined with its suffix,
// or an empty string if the input is a public suffix.
func (r SplitResult) RegisteredDomain() string {
	if r.Domain == "" {
		return ""
	}

	return r.Domain + "." + r.Suffix
}

// List keeps the current public suffix list.
//
// Split can be called concurrently with everything, including refreshes:
// it reads the published snapshot once and never waits.
type List struct {
	opts   Options
	logger Logger

	current atomic.Pointer[Snapshot]
	state   atomic.Int32

	// serializes refreshes
	refreshMu sync.Mutex

	ctx     context.Context
	cancel  context.CancelFunc
	stopped sync.WaitGroup
}

// NewList creates a List and loads the suffix list according to `opts.Strategy`.
//
// Until a list was published, Split answers with an empty list: every domain
// has a single label suffix.
func NewList(ctx context.Context, opts Options) (*List, error) {
	if opts.DataSource == nil {
		return nil, errors.New("suffix list data source is required")
	}

	l := &List{
		opts:   opts,
		logger: opts.Logger,
	}

	if l.logger == nil {
		l.logger = log.NewCapability(logger())
	}

	l.current.Store(emptySnapshot())
	l.ctx, l.cancel = context.WithCancel(ctx)

	err := opts.Strategy.Do(func() error {
		return l.Refresh(l.ctx)
	}, nil)
	if err != nil {
		l.Close()

		return nil, fmt.Errorf("initial suffix list load failed: %w", err)
	}

	if opts.RefreshPeriod > 0 {
		l.stopped.Add(1)

		go l.periodicRefresh(opts.RefreshPeriod)
	}

	return l, nil
}

func logger() *logrus.Entry {
	return log.PrefixedLog("psl")
}

func (l *List) periodicRefresh(period time.Duration) {
	defer l.stopped.Done()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// errors are logged by Refresh, the next tick retries
			_ = l.Refresh(l.ctx)

		case <-l.ctx.Done():
			return
		}
	}
}

// Close stops the periodic refresh and cancels a running one.
// The last published list stays usable.
func (l *List) Close() {
	l.cancel()
	l.stopped.Wait()

	// wait for a refresh in progress
	l.refreshMu.Lock()
	defer l.refreshMu.Unlock()
}

// State returns the current state.
func (l *List) State() State {
	return State(l.state.Load())
}

// Snapshot returns the published list.
func (l *List) Snapshot() *Snapshot {
	return l.current.Load()
}

// Split cuts `domain` into subdomain, registered domain label and public suffix.
// Parts are returned in normalized form: lowercase, non-ASCII labels ACE encoded.
func (l *List) Split(domain string) (subdomain, registered, suffix string) {
	res := l.SplitResult(domain)

	return res.Subdomain, res.Domain, res.Suffix
}

// SplitResult is like `Split` but returns a `SplitResult`.
func (l *List) SplitResult(domain string) SplitResult {
	return l.current.Load().Split(domain)
}

// Refresh loads the suffix list from the data source and publishes it.
//
// On failure, the error is logged and returned, and the published list is kept.
// Refreshes never run in parallel.
func (l *List) Refresh(ctx context.Context) error {
	l.refreshMu.Lock()
	defer l.refreshMu.Unlock()

	if l.ctx.Err() != nil {
		return ErrClosed
	}

	ctx, cancel := util.LinkContext(ctx, l.ctx)
	defer cancel()

	previous := l.State()
	l.state.Store(int32(StateLoading))

	err := l.refresh(ctx)
	if err != nil {
		l.logger.Error(err.Error())

		evt.Bus().Publish(evt.SuffixListRefreshFailed, err.Error())

		if previous == StateReady {
			l.state.Store(int32(StateReady))
		} else {
			l.state.Store(int32(StateFailed))
		}

		return err
	}

	l.state.Store(int32(StateReady))

	return nil
}

func (l *List) refresh(ctx context.Context) error {
	text, err := l.opts.DataSource.Fetch(ctx)
	if err != nil {
		return &FetchError{Err: err}
	}

	if err := ctx.Err(); err != nil {
		return &FetchError{Err: err}
	}

	hash := contentHash(text)

	if current := l.current.Load(); current.RuleCount > 0 && current.Hash == hash {
		l.logger.Detail(fmt.Sprintf("suffix list unchanged, keeping %s", current.ID))

		return nil
	}

	rs, err := rules.Parse(ctx, strings.NewReader(text), rules.Options{
		MaxErrors:      l.opts.MaxErrors,
		ExcludePrivate: l.opts.ExcludePrivate,
		OnInvalidRule: func(err error) {
			l.logger.Warning(fmt.Sprintf("skipping invalid rule: %s", err))
		},
	})
	if err != nil {
		return fmt.Errorf("can't parse suffix list: %w", err)
	}

	snapshot, err := newSnapshot(rs, hash, l.opts.CacheSize)
	if err != nil {
		return err
	}

	// a cancelled refresh never publishes
	if err := ctx.Err(); err != nil {
		return &FetchError{Err: err}
	}

	l.current.Store(snapshot)

	l.logger.Detail(fmt.Sprintf("published suffix list %s with %d rules", snapshot.ID, snapshot.RuleCount))

	evt.Bus().Publish(evt.SuffixListRefreshed, snapshot.RuleCount)

	return nil
}
