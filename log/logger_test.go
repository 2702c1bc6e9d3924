package log

import (
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	AfterEach(func() {
		ConfigureLogger(Config{Level: LevelInfo, Format: FormatTypeText, Timestamp: true})
		Silence()
	})

	Describe("ConfigureLogger", func() {
		It("should apply the configured level", func() {
			ConfigureLogger(Config{Level: LevelDebug, Format: FormatTypeText})

			Expect(Log().GetLevel()).Should(Equal(logrus.DebugLevel))
		})

		It("should use JSON formatter for json format", func() {
			ConfigureLogger(Config{Level: LevelWarn, Format: FormatTypeJson})

			Expect(Log().Formatter).Should(BeAssignableToTypeOf(&logrus.JSONFormatter{}))
			Expect(Log().GetLevel()).Should(Equal(logrus.WarnLevel))
		})
	})

	Describe("Enums", func() {
		It("should parse level names", func() {
			lvl, err := ParseLevel("warn")
			Expect(err).Should(Succeed())
			Expect(lvl).Should(Equal(LevelWarn))

			_, err = ParseLevel("verbose")
			Expect(err).Should(MatchError(ErrInvalidLevel))
		})

		It("should unmarshal format type", func() {
			var f FormatType
			Expect(f.UnmarshalText([]byte("json"))).Should(Succeed())
			Expect(f).Should(Equal(FormatTypeJson))
		})
	})

	Describe("EscapeInput", func() {
		It("should remove line breaks", func() {
			Expect(EscapeInput("exa\nmple.\rcom")).Should(Equal("example.com"))
		})
	})

	Describe("Domain", func() {
		It("should keep the domain without privacy", func() {
			Expect(Domain("www.example.com\n")).Should(Equal("www.example.com"))
		})

		It("should mask the domain with privacy", func() {
			ConfigureLogger(Config{Level: LevelInfo, Format: FormatTypeText, Privacy: true})

			Expect(Domain("www.食狮.com")).Should(Equal("***.**.***"))
		})
	})

	Describe("PrefixedLog", func() {
		It("should set the prefix field", func() {
			Expect(PrefixedLog("psl").Data).Should(HaveKeyWithValue("prefix", "psl"))
		})
	})

	Describe("Capability", func() {
		var hook *test.Hook

		BeforeEach(func() {
			var logger *logrus.Logger
			logger, hook = test.NewNullLogger()
			logger.SetLevel(logrus.TraceLevel)

			sut := NewCapability(logrus.NewEntry(logger))
			sut.Detail("detail message")
			sut.Warning("warning message")
			sut.Error("error message")
		})

		It("should map severities to logrus levels", func() {
			Expect(hook.Entries).Should(HaveLen(3))
			Expect(hook.Entries[0].Level).Should(Equal(logrus.DebugLevel))
			Expect(hook.Entries[0].Message).Should(Equal("detail message"))
			Expect(hook.Entries[1].Level).Should(Equal(logrus.WarnLevel))
			Expect(hook.Entries[2].Level).Should(Equal(logrus.ErrorLevel))
		})

		It("should fall back to the global logger", func() {
			Expect(NewCapability(nil).Entry().Logger).Should(BeIdenticalTo(Log()))
		})
	})
})
