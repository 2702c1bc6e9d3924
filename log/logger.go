package log

//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names

import (
	"io"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// FormatType format for logging ENUM(
// text // logging as text
// json // JSON format
// )
type FormatType int

// Level log level ENUM(
// info
// trace
// debug
// warn
// error
// fatal
// )
type Level int

type Config struct {
	Level     Level      `yaml:"level" default:"info"`
	Format    FormatType `yaml:"format" default:"text"`
	Timestamp bool       `yaml:"timestamp" default:"true"`
	Privacy   bool       `yaml:"privacy" default:"false"`
}

// Logger is the global logging instance
// nolint:gochecknoglobals
var (
	logger  *logrus.Logger
	privacy atomic.Bool
)

// nolint:gochecknoinits
func init() {
	logger = logrus.New()

	lc := Config{
		Level:     LevelInfo,
		Format:    FormatTypeText,
		Timestamp: true,
	}

	ConfigureLogger(lc)
}

// Log returns the global logger
func Log() *logrus.Logger {
	return logger
}

// PrefixedLog return the global logger with prefix
func PrefixedLog(prefix string) *logrus.Entry {
	return logger.WithField("prefix", prefix)
}

// EscapeInput removes line breaks from input
func EscapeInput(input string) string {
	result := strings.ReplaceAll(input, "\n", "")
	result = strings.ReplaceAll(result, "\r", "")

	return result
}

// Domain prepares a user supplied domain for logging.
// With privacy enabled, letters and digits are masked.
func Domain(domain string) string {
	domain = EscapeInput(domain)

	if !privacy.Load() {
		return domain
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return '*'
		}

		return r
	}, domain)
}

// ConfigureLogger applies configuration to the global logger
func ConfigureLogger(lc Config) {
	privacy.Store(lc.Privacy)

	if level, err := logrus.ParseLevel(lc.Level.String()); err != nil {
		logger.Fatalf("invalid log level %s %v", lc.Level, err)
	} else {
		logger.SetLevel(level)
	}

	switch lc.Format {
	case FormatTypeText:
		logFormatter := &prefixed.TextFormatter{
			TimestampFormat:  "2006-01-02 15:04:05",
			FullTimestamp:    true,
			ForceFormatting:  true,
			ForceColors:      false,
			QuoteEmptyFields: true,
			DisableTimestamp: !lc.Timestamp,
		}

		logFormatter.SetColorScheme(&prefixed.ColorScheme{
			PrefixStyle:    "blue+b",
			TimestampStyle: "white+h",
		})

		logger.SetFormatter(logFormatter)

	case FormatTypeJson:
		logger.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: !lc.Timestamp})
	}
}

// WithIndent prefixes every message logged by `callback` with `prefix`.
func WithIndent(log *logrus.Entry, prefix string, callback func(*logrus.Entry)) {
	callback(log.WithField("prefix", entryPrefix(log)+prefix))
}

func entryPrefix(entry *logrus.Entry) string {
	if prefix, ok := entry.Data["prefix"].(string); ok {
		return prefix
	}

	return ""
}

// Silence disables the logger output
func Silence() {
	logger.Out = io.Discard
}
