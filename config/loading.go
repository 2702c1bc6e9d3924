//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names --values
package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/0xERR0R/pslsplit/log"
)

// InitStrategy startup strategy ENUM(
// blocking // synchronously load the suffix list and continue with defaults on error
// failOnError // synchronously load the suffix list and fail on error
// fast // asynchronously load the suffix list
// )
type InitStrategy uint16

// Do runs `init` according to the strategy.
// Errors are always passed to `logErr`, but only returned by `InitStrategyFailOnError`.
func (s InitStrategy) Do(init func() error, logErr func(error)) error {
	run := func() error {
		err := init()
		if err != nil && logErr != nil {
			logErr(err)
		}

		return err
	}

	switch s {
	case InitStrategyFast:
		go func() {
			_ = run()
		}()

		return nil

	case InitStrategyFailOnError:
		return run()

	default:
		_ = run()

		return nil
	}
}

// SourceLoading configures how the suffix list is loaded and refreshed.
type SourceLoading struct {
	RefreshPeriod      Duration     `yaml:"refreshPeriod" default:"24h"`
	Strategy           InitStrategy `yaml:"strategy" default:"blocking"`
	MaxErrorsPerSource int          `yaml:"maxErrorsPerSource" default:"-1"`
	IncludePrivate     bool         `yaml:"includePrivate" default:"true"`
	Downloads          Downloader   `yaml:"downloads"`
}

// Downloader configures the HTTP downloads of sources.
type Downloader struct {
	Timeout  Duration `yaml:"timeout" default:"5s"`
	Attempts uint     `yaml:"attempts" default:"3"`
	Cooldown Duration `yaml:"cooldown" default:"500ms"`
}

// IsEnabled implements `config.Configurable`.
func (c *SourceLoading) IsEnabled() bool {
	return true
}

// LogConfig implements `config.Configurable`.
func (c *SourceLoading) LogConfig(logger *logrus.Entry) {
	logger.Infof("strategy = %s", c.Strategy)

	if c.MaxErrorsPerSource < 0 {
		logger.Info("maxErrorsPerSource = unlimited")
	} else {
		logger.Infof("maxErrorsPerSource = %d", c.MaxErrorsPerSource)
	}

	logger.Infof("includePrivate = %t", c.IncludePrivate)

	if c.RefreshPeriod.IsAboveZero() {
		logger.Infof("refresh = every %s", c.RefreshPeriod)
	} else {
		logger.Debug("refresh = disabled")
	}

	logger.Info("downloads:")
	log.WithIndent(logger, "  ", c.Downloads.LogConfig)
}

func (c *SourceLoading) validate() error {
	var errs *multierror.Error

	if c.Downloads.Attempts == 0 {
		errs = multierror.Append(errs, errors.New("loading.downloads.attempts must be at least 1"))
	}

	if !c.Downloads.Timeout.IsAboveZero() {
		errs = multierror.Append(errs, fmt.Errorf("loading.downloads.timeout must be positive: %s", c.Downloads.Timeout))
	}

	if !c.Downloads.Cooldown.IsAtLeastZero() {
		errs = multierror.Append(errs, fmt.Errorf("loading.downloads.cooldown must not be negative: %s", c.Downloads.Cooldown))
	}

	return errs.ErrorOrNil()
}

// LogConfig implements `config.Configurable`.
func (c *Downloader) LogConfig(logger *logrus.Entry) {
	logger.Infof("timeout = %s", c.Timeout)
	logger.Infof("attempts = %d", c.Attempts)
	logger.Debugf("cooldown = %s", c.Cooldown)
}
