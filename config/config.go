package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/0xERR0R/pslsplit/log"
)

// DefaultSuffixListURL is used when no source is configured.
const DefaultSuffixListURL = "https://publicsuffix.org/list/public_suffix_list.dat"

// Configurable is a section of the configuration that can be logged.
type Configurable interface {
	// IsEnabled returns true when the section's feature is active.
	IsEnabled() bool

	// LogConfig logs the section's values.
	LogConfig(*logrus.Entry)
}

// Config main configuration
type Config struct {
	Sources    []BytesSource `yaml:"sources"`
	Loading    SourceLoading `yaml:"loading"`
	Cache      Cache         `yaml:"cache"`
	Ports      Ports         `yaml:"ports"`
	Prometheus MetricsConfig `yaml:"prometheus"`
	Log        log.Config    `yaml:"log"`
}

// Cache configures the split result cache of each published suffix list.
type Cache struct {
	MaxItemsCount int `yaml:"maxItemsCount" default:"0"`
}

// IsEnabled implements `config.Configurable`.
func (c *Cache) IsEnabled() bool {
	return c.MaxItemsCount > 0
}

// LogConfig implements `config.Configurable`.
func (c *Cache) LogConfig(logger *logrus.Entry) {
	logger.Infof("maxItemsCount = %d", c.MaxItemsCount)
}

// Ports contains the listen addresses of the server.
type Ports struct {
	HTTP ListenConfig `yaml:"http" default:"4000"`
}

// ListenConfig is a list of listen addresses: "port", ":port" or "host:port".
type ListenConfig []string

// UnmarshalText implements `encoding.TextUnmarshaler`.
func (l *ListenConfig) UnmarshalText(data []byte) error {
	addresses := strings.Split(string(data), ",")

	*l = make(ListenConfig, 0, len(addresses))

	for _, address := range addresses {
		if address = strings.TrimSpace(address); address != "" {
			*l = append(*l, address)
		}
	}

	return nil
}

// Addresses returns the listen addresses in "host:port" form.
func (l ListenConfig) Addresses() []string {
	res := make([]string, 0, len(l))

	for _, address := range l {
		if !strings.Contains(address, ":") {
			address = ":" + address
		}

		res = append(res, address)
	}

	return res
}

// WithDefaults returns a new instance of T with default values.
func WithDefaults[T any]() (T, error) {
	var cfg T

	if err := defaults.Set(&cfg); err != nil {
		return cfg, fmt.Errorf("can't apply %T defaults: %w", cfg, err)
	}

	return cfg, nil
}

// LoadConfig reads the configuration file at `path`.
// If `mandatory` is false, a missing file results in the default configuration.
func LoadConfig(path string, mandatory bool) (*Config, error) {
	cfg, err := WithDefaults[Config]()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mandatory {
			cfg.applySourceDefaults()

			return &cfg, nil
		}

		return nil, fmt.Errorf("can't read config file '%s': %w", path, err)
	}

	if err := unmarshalConfig(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func unmarshalConfig(data []byte, cfg *Config) error {
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("wrong file structure: %w", err)
	}

	cfg.applySourceDefaults()

	return cfg.validate()
}

func (cfg *Config) applySourceDefaults() {
	if len(cfg.Sources) == 0 {
		cfg.Sources = NewBytesSources(DefaultSuffixListURL)
	}
}

func (cfg *Config) validate() error {
	var errs *multierror.Error

	for _, source := range cfg.Sources {
		if err := source.validate(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if err := cfg.Loading.validate(); err != nil {
		errs = multierror.Append(errs, err)
	}

	if cfg.Cache.MaxItemsCount < 0 {
		errs = multierror.Append(errs, fmt.Errorf("cache.maxItemsCount must not be negative: %d", cfg.Cache.MaxItemsCount))
	}

	if cfg.Prometheus.IsEnabled() && !strings.HasPrefix(cfg.Prometheus.Path, "/") {
		errs = multierror.Append(errs, fmt.Errorf("prometheus.path must start with '/': %s", cfg.Prometheus.Path))
	}

	if len(cfg.Ports.HTTP) == 0 {
		errs = multierror.Append(errs, errors.New("ports.http must not be empty"))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// LogConfig logs the whole configuration.
func (cfg *Config) LogConfig(logger *logrus.Entry) {
	logger.Info("sources:")

	for _, source := range cfg.Sources {
		logger.Infof("  - %s", source)
	}

	sections := []struct {
		name string
		cfg  Configurable
	}{
		{"loading", &cfg.Loading},
		{"cache", &cfg.Cache},
		{"prometheus", &cfg.Prometheus},
	}

	for _, section := range sections {
		if !section.cfg.IsEnabled() {
			logger.Infof("%s: disabled", section.name)

			continue
		}

		logger.Infof("%s:", section.name)
		log.WithIndent(logger, "  ", section.cfg.LogConfig)
	}

	logger.Infof("ports.http = %s", strings.Join(cfg.Ports.HTTP, ", "))
}
