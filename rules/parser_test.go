package rules

import (
	"context"
	"errors"
	"strings"

	"github.com/0xERR0R/pslsplit/helpertest"
	"github.com/0xERR0R/pslsplit/lists/parsers"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parse", func() {
	var (
		ctx     context.Context
		opts    Options
		invalid []error
	)

	BeforeEach(func() {
		ctx = context.Background()
		invalid = nil
		opts = Options{
			OnInvalidRule: func(err error) {
				invalid = append(invalid, err)
			},
		}
	})

	ruleStrings := func(rules []Rule) []string {
		res := make([]string, 0, len(rules))
		for _, r := range rules {
			res = append(res, r.String())
		}

		return res
	}

	When("text contains comments and blank lines", func() {
		It("should return only rules", func() {
			rules, err := Parse(ctx, strings.NewReader("// header\n\ncom\n  \n// other\n*.bd\n!www.ck\n"), opts)

			Expect(err).Should(Succeed())
			Expect(ruleStrings(rules)).Should(Equal([]string{"com", "*.bd", "!www.ck"}))
			Expect(invalid).Should(BeEmpty())
		})
	})

	When("text contains invalid lines", func() {
		It("should skip and report them", func() {
			rules, err := Parse(ctx, strings.NewReader("com\na..b\n!\nnet\n"), opts)

			Expect(err).Should(Succeed())
			Expect(ruleStrings(rules)).Should(Equal([]string{"com", "net"}))
			Expect(invalid).Should(HaveLen(2))
			Expect(invalid[0].Error()).Should(HavePrefix("line 2: "))
			Expect(invalid[1].Error()).Should(HavePrefix("line 3: "))
		})

		It("should fail after the error limit", func() {
			opts.MaxErrors = 1

			_, err := Parse(ctx, strings.NewReader("a..b\n!\ncom\n"), opts)

			Expect(err).Should(MatchError(parsers.ErrTooManyErrors))
		})

		It("should log a warning without callback", func() {
			opts.OnInvalidRule = nil

			rules, err := Parse(ctx, strings.NewReader("a..b\ncom\n"), opts)

			Expect(err).Should(Succeed())
			Expect(rules).Should(HaveLen(1))
		})
	})

	When("the list has a private section", func() {
		It("should mark private rules", func() {
			rules, err := Parse(ctx, strings.NewReader(helpertest.SuffixList), opts)

			Expect(err).Should(Succeed())
			Expect(invalid).Should(BeEmpty())

			var private []string
			for _, r := range rules {
				if r.Private {
					private = append(private, r.String())
				}
			}

			Expect(private).Should(ConsistOf("uk.com", "us.com", "github.io"))
		})

		It("should drop private rules if requested", func() {
			opts.ExcludePrivate = true

			rules, err := Parse(ctx, strings.NewReader(helpertest.SuffixList), opts)

			Expect(err).Should(Succeed())
			Expect(ruleStrings(rules)).ShouldNot(ContainElement("uk.com"))
			Expect(ruleStrings(rules)).Should(ContainElement("com"))
		})
	})

	When("the reader fails", func() {
		It("should return the error", func() {
			readErr := errors.New("boom")

			_, err := Parse(ctx, &failingReader{err: readErr}, opts)

			Expect(err).Should(MatchError(readErr))
		})
	})

	When("context is done", func() {
		It("should stop", func() {
			ctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := Parse(ctx, strings.NewReader("com\n"), opts)

			Expect(err).Should(MatchError(context.Canceled))
		})
	})
})

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}
