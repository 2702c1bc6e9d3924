package cmd

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/0xERR0R/pslsplit/api"
	"github.com/0xERR0R/pslsplit/helpertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Split command", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	run := func(args ...string) error {
		c := NewRootCommand()
		c.SetOut(out)
		c.SetArgs(append([]string{"split", "--config", configFile()}, args...))

		return c.Execute()
	}

	It("should print one line per domain", func() {
		Expect(run("www.Example.COM", "a.b.c.bd", "co.uk")).Should(Succeed())

		Expect(strings.Split(strings.TrimSpace(out.String()), "\n")).Should(Equal([]string{
			"www.Example.COM\t\"www\"\t\"example\"\t\"com\"",
			"a.b.c.bd\t\"a\"\t\"b\"\t\"c.bd\"",
			"co.uk\t\"\"\t\"\"\t\"co.uk\"",
		}))
	})

	It("should print JSON", func() {
		Expect(run("--json", "forums.bbc.co.uk")).Should(Succeed())

		var res api.SplitResponse
		Expect(json.Unmarshal(out.Bytes(), &res)).Should(Succeed())
		Expect(res).Should(Equal(api.SplitResponse{
			Subdomain:        "forums",
			Domain:           "bbc",
			Suffix:           "co.uk",
			RegisteredDomain: "bbc.co.uk",
		}))
	})

	It("should print unicode labels", func() {
		Expect(run("--unicode", "www.xn--85x722f.xn--55qx5d.cn")).Should(Succeed())

		Expect(out.String()).Should(ContainSubstring("\"食狮\"\t\"公司.cn\""))
	})

	It("should require a domain", func() {
		Expect(run()).Should(HaveOccurred())
	})

	It("should fail if the suffix list can't be loaded", func() {
		c := NewRootCommand()
		c.SetOut(out)
		c.SetArgs([]string{"split", "--config", helperConfigWithMissingList(), "example.com"})

		Expect(c.Execute()).Should(MatchError(ContainSubstring("can't create suffix list")))
	})
})

func helperConfigWithMissingList() string {
	return helpertest.TempFile("sources:\n  - /notexisting/public_suffix_list.dat\n").Name()
}
