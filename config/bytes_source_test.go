package config

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BytesSource", func() {
	DescribeTable("UnmarshalText",
		func(input string, expected BytesSource) {
			var s BytesSource

			Expect(s.UnmarshalText([]byte(input))).Should(Succeed())
			Expect(s).Should(Equal(expected))
		},
		Entry("https URL", "https://publicsuffix.org/list/public_suffix_list.dat",
			BytesSource{Type: BytesSourceTypeHttp, From: "https://publicsuffix.org/list/public_suffix_list.dat"}),
		Entry("http URL", "http://localhost/psl.dat",
			BytesSource{Type: BytesSourceTypeHttp, From: "http://localhost/psl.dat"}),
		Entry("file URL", "file:///etc/psl.dat",
			BytesSource{Type: BytesSourceTypeFile, From: "/etc/psl.dat"}),
		Entry("path", "httpdocs/psl.dat",
			BytesSource{Type: BytesSourceTypeFile, From: "httpdocs/psl.dat"}),
		Entry("inline", "com\nnet\n",
			BytesSource{Type: BytesSourceTypeText, From: "com\nnet\n"}),
	)

	DescribeTable("String",
		func(source BytesSource, expected string) {
			Expect(source.String()).Should(Equal(expected))
		},
		Entry("http", BytesSource{Type: BytesSourceTypeHttp, From: "https://example.com/x"}, "https://example.com/x"),
		Entry("file", BytesSource{Type: BytesSourceTypeFile, From: "/tmp/x"}, "file:///tmp/x"),
		Entry("single line", TextBytesSource("com"), "com"),
		Entry("multiple lines", TextBytesSource("com", "net"), "com..."),
		Entry("long line", TextBytesSource("// this is a comment"), "// this is a..."),
		Entry("unknown", BytesSource{From: "x"}, "unknown source (BytesSourceType(0): x)"),
	)

	Describe("validate", func() {
		It("should accept configured sources", func() {
			for _, s := range NewBytesSources("https://example.com", "/tmp/psl.dat", "com\n") {
				Expect(s.validate()).Should(Succeed())
			}
		})

		It("should reject empty sources", func() {
			Expect(BytesSource{Type: BytesSourceTypeFile}.validate()).ShouldNot(Succeed())
		})

		It("should reject unknown types", func() {
			Expect(BytesSource{From: "x"}.validate()).Should(MatchError(ContainSubstring("invalid source type")))
		})
	})
})
