package lists

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/0xERR0R/pslsplit/config"
	"github.com/0xERR0R/pslsplit/log"
	"github.com/0xERR0R/pslsplit/util"
)

// SourceSet reads the suffix list text from all configured sources.
//
// It implements `psl.DataSource`.
type SourceSet struct {
	openers []SourceOpener
}

// NewSourceSet creates a SourceSet for `sources`, downloading HTTP sources with `downloader`.
func NewSourceSet(sources []config.BytesSource, downloader FileDownloader) (*SourceSet, error) {
	if len(sources) == 0 {
		return nil, errors.New("no suffix list source configured")
	}

	set := &SourceSet{openers: make([]SourceOpener, 0, len(sources))}

	for i, source := range sources {
		opener, err := NewSourceOpener(fmt.Sprintf("inline source #%d", i+1), source, downloader)
		if err != nil {
			return nil, err
		}

		set.openers = append(set.openers, opener)
	}

	return set, nil
}

// NewSourceSetFromConfig creates a SourceSet for the configured sources and downloads.
func NewSourceSetFromConfig(cfg *config.Config) (*SourceSet, error) {
	return NewSourceSet(cfg.Sources, NewDownloaderFromConfig(cfg.Loading.Downloads))
}

func (s *SourceSet) String() string {
	names := make([]string, 0, len(s.openers))

	for _, opener := range s.openers {
		names = append(names, opener.String())
	}

	return strings.Join(names, ", ")
}

type sourceText struct {
	idx  int
	text string
	err  error
}

// Fetch reads all sources concurrently and returns their concatenated text.
//
// If any source fails, all errors are returned and no text.
func (s *SourceSet) Fetch(ctx context.Context) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan sourceText, len(s.openers))

	for i, opener := range s.openers {
		go func(idx int, opener SourceOpener) {
			text, err := read(ctx, opener)

			util.CtxSend(ctx, results, sourceText{idx: idx, text: text, err: err})
		}(i, opener)
	}

	texts := make([]string, len(s.openers))

	var errs *multierror.Error

	for range s.openers {
		select {
		case res := <-results:
			if res.err != nil {
				errs = multierror.Append(errs, res.err)

				continue
			}

			texts[res.idx] = res.text

		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return "", err
	}

	return strings.Join(texts, "\n"), nil
}

func read(ctx context.Context, opener SourceOpener) (string, error) {
	logger := log.PrefixedLog("lists").WithField("source", opener.String())

	r, err := opener.Open(ctx)
	if err != nil {
		logger.Warnf("can't open source: %s", err)

		return "", fmt.Errorf("%s: %w", opener, err)
	}
	defer r.Close()

	var sb strings.Builder

	n, err := io.Copy(&sb, r)
	if err != nil {
		logger.Warnf("can't read source: %s", err)

		return "", fmt.Errorf("%s: %w", opener, err)
	}

	logger.WithFields(logrus.Fields{"bytes": n}).Debug("source read")

	return sb.String(), nil
}
