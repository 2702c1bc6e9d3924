package cmd

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Version command", func() {
	When("Version command is called", func() {
		It("should print the version", func() {
			out := &bytes.Buffer{}

			c := NewVersionCommand()
			c.SetOut(out)
			c.SetArgs(make([]string, 0))
			Expect(c.Execute()).Should(Succeed())

			Expect(out.String()).Should(ContainSubstring("Version: undefined"))
		})

		It("should not need a configuration", func() {
			c := NewRootCommand()
			c.SetOut(&bytes.Buffer{})
			c.SetArgs([]string{"version", "--config", "/notexisting/path.yaml"})

			Expect(c.Execute()).Should(Succeed())
		})
	})
})
