package cmd

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Validate command", func() {
	When("Validate is called with not existing configuration file", func() {
		It("should terminate with error", func() {
			c := NewRootCommand()
			c.SetArgs([]string{"validate", "--config", "/notexisting/path.yaml"})

			Expect(c.Execute()).Should(MatchError("configuration path does not exist"))
		})
	})

	When("Validate is called with existing valid configuration file", func() {
		It("should terminate without error", func() {
			c := NewRootCommand()
			c.SetArgs([]string{"validate", "--config", configFile(
				"loading:",
				"  strategy: fast",
			)})

			Expect(c.Execute()).Should(Succeed())
			Expect(loggerHook.Entries).Should(ContainElement(HaveField("Message", "Configuration is valid")))
		})
	})

	When("Validate is called with existing invalid configuration file", func() {
		It("should terminate with error", func() {
			c := NewRootCommand()
			c.SetArgs([]string{"validate", "--config", configFile(
				"loading:",
				"  strategy: sometimes",
			)})

			Expect(c.Execute()).Should(MatchError(ContainSubstring("unable to load configuration")))
		})

		It("should reject unknown keys", func() {
			c := NewRootCommand()
			c.SetArgs([]string{"validate", "--config", configFile("upstreams: 1.1.1.1")})

			Expect(c.Execute()).Should(HaveOccurred())
		})
	})
})
