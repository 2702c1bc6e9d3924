package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("root command", func() {
	When("help is called", func() {
		It("should execute without error", func() {
			c := NewRootCommand()
			c.SetOut(io.Discard)
			c.SetArgs([]string{"help"})

			Expect(c.Execute()).Should(Succeed())
		})
	})

	Describe("initConfig", func() {
		It("should use the defaults if the default config file does not exist", func() {
			configPath = defaultConfigPath

			Expect(initConfig()).Should(Succeed())
			Expect(cfg.Sources).Should(HaveLen(1))
			Expect(apiPort).Should(Equal(uint16(defaultPort)))
		})

		It("should fail if an explicit config file does not exist", func() {
			configPath = "/notexisting/path.yaml"

			Expect(initConfig()).Should(MatchError(ContainSubstring("unable to load configuration")))
		})

		It("should accept the env var", func() {
			path := configFile()

			os.Setenv(configFileEnvVar, path)
			DeferCleanup(func() { os.Unsetenv(configFileEnvVar) })

			Expect(initConfig()).Should(Succeed())
			Expect(configPath).Should(Equal(path))
		})

		It("should take the API address from the HTTP port", func() {
			configPath = configFile(
				"ports:",
				"  http: 127.0.0.1:8080",
			)

			Expect(initConfig()).Should(Succeed())
			Expect(apiHost).Should(Equal("127.0.0.1"))
			Expect(apiPort).Should(Equal(uint16(8080)))
		})

		It("should keep the API host for a bare port", func() {
			configPath = configFile(
				"ports:",
				"  http: 8081",
			)

			Expect(initConfig()).Should(Succeed())
			Expect(apiHost).Should(Equal(defaultHost))
			Expect(apiPort).Should(Equal(uint16(8081)))
		})

		It("should fail with invalid HTTP port", func() {
			configPath = configFile(
				"ports:",
				"  http: 127.0.0.1:invalid",
			)

			Expect(initConfig()).Should(MatchError(ContainSubstring("can't convert port")))
		})
	})

	Describe("apiURL", func() {
		It("should return correct URL with default values", func() {
			Expect(apiURL("/api/lists/status")).Should(Equal("http://localhost:4000/api/lists/status"))
		})

		It("should bracket IPv6 hosts", func() {
			apiHost = "::1"
			apiPort = 8080

			Expect(apiURL("/x")).Should(Equal("http://[::1]:8080/x"))
		})
	})

	Describe("printOkOrError", func() {
		It("should return the body for OK status", func() {
			rr := httptest.NewRecorder()
			_, _ = rr.WriteString("body")

			body, err := printOkOrError(rr.Result())
			Expect(err).Should(Succeed())
			Expect(string(body)).Should(Equal("body"))
			Expect(loggerHook.LastEntry().Message).Should(Equal("OK"))
		})

		It("should return error for non-OK status", func() {
			rr := httptest.NewRecorder()
			rr.WriteHeader(http.StatusBadRequest)
			_, _ = rr.WriteString("Error message\n")

			_, err := printOkOrError(rr.Result())
			Expect(err).Should(MatchError("response NOK, 400 Bad Request Error message"))
		})
	})

	Describe("NewRootCommand", func() {
		It("should create root command with all subcommands", func() {
			names := []string{}
			for _, subCmd := range NewRootCommand().Commands() {
				names = append(names, subCmd.Name())
			}

			Expect(names).Should(ContainElements("serve", "split", "lists", "validate", "version"))
		})

		It("should set flags correctly", func() {
			c := NewRootCommand()

			configFlag := c.PersistentFlags().Lookup("config")
			Expect(configFlag).ShouldNot(BeNil())
			Expect(configFlag.Shorthand).Should(Equal("c"))
			Expect(configFlag.DefValue).Should(Equal(defaultConfigPath))

			Expect(c.PersistentFlags().Lookup("apiHost").DefValue).Should(Equal(defaultHost))
			Expect(c.PersistentFlags().Lookup("apiPort").DefValue).Should(Equal("4000"))
		})
	})
})
