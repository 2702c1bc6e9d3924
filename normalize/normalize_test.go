package normalize

import (
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Labels", func() {
	ginkgo.It("should return no labels for empty input", func() {
		Expect(Labels("")).Should(BeEmpty())
		Expect(Labels(".")).Should(BeEmpty())
	})

	ginkgo.It("should split and lowercase", func() {
		Expect(Labels("WwW.example.COM")).Should(Equal([]string{"www", "example", "com"}))
	})

	ginkgo.It("should ignore one leading and one trailing dot", func() {
		Expect(Labels(".example.com")).Should(Equal([]string{"example", "com"}))
		Expect(Labels("example.com.")).Should(Equal([]string{"example", "com"}))
		Expect(Labels(".example.com.")).Should(Equal([]string{"example", "com"}))
	})

	ginkgo.It("should keep empty inner labels as opaque labels", func() {
		Expect(Labels("www.example..com")).Should(Equal([]string{"www", "example", "", "com"}))
		Expect(Labels("..com")).Should(Equal([]string{"", "com"}))
	})

	ginkgo.It("should convert unicode labels to punycode", func() {
		Expect(Labels("食狮.公司.cn")).Should(Equal([]string{"xn--85x722f", "xn--55qx5d", "cn"}))
		Expect(Labels("中国")).Should(Equal([]string{"xn--fiqs8s"}))
	})

	ginkgo.It("should treat unicode and punycode forms identically", func() {
		Expect(Labels("www.食狮.中国")).Should(Equal(Labels("www.xn--85x722f.xn--fiqs8s")))
	})

	ginkgo.It("should lowercase punycode labels", func() {
		Expect(Labels("XN--85X722F.cn")).Should(Equal([]string{"xn--85x722f", "cn"}))
	})

	ginkgo.It("should split on ideographic full stops", func() {
		Expect(Labels("食狮。公司。cn")).Should(Equal([]string{"xn--85x722f", "xn--55qx5d", "cn"}))
	})
})

var _ = ginkgo.Describe("Label", func() {
	ginkgo.It("should pass ACE labels through", func() {
		Expect(Label("xn--55qx5d")).Should(Equal("xn--55qx5d"))
		Expect(IsACE("xn--55qx5d")).Should(BeTrue())
		Expect(IsACE("example")).Should(BeFalse())
	})

	ginkgo.It("should keep the wildcard label", func() {
		Expect(Label("*")).Should(Equal("*"))
	})
})

var _ = ginkgo.Describe("ToUnicode", func() {
	ginkgo.It("should decode ACE labels", func() {
		Expect(ToUnicode("www.xn--85x722f.xn--55qx5d.cn")).Should(Equal("www.食狮.公司.cn"))
	})

	ginkgo.It("should keep other names", func() {
		Expect(ToUnicode("www.example.com")).Should(Equal("www.example.com"))
		Expect(ToUnicode("")).Should(Equal(""))
	})
})

var _ = ginkgo.Describe("Join", func() {
	ginkgo.It("should join labels with dots", func() {
		Expect(Join([]string{"www", "example", "com"})).Should(Equal("www.example.com"))
		Expect(Join(nil)).Should(Equal(""))
	})
})
