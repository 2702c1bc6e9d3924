package cmd

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0xERR0R/pslsplit/config"
	"github.com/0xERR0R/pslsplit/log"
)

//nolint:gochecknoglobals
var (
	version    = "undefined"
	buildTime  = "undefined"
	configPath string
	apiHost    string
	apiPort    uint16
	cfg        *config.Config
)

const (
	defaultPort       = 4000
	defaultHost       = "localhost"
	defaultConfigPath = "./config.yml"
	configFileEnvVar  = "PSLSPLIT_CONFIG_FILE"
)

// NewRootCommand creates new root command
func NewRootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "pslsplit",
		Short: "pslsplit splits domain names at their public suffix",
		Long: `Splits domain names into subdomain, registered domain and public suffix
using the Public Suffix List (https://publicsuffix.org).

Runs as HTTP service (default command) or splits domains from the command line.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer(cmd, args)
		},
		SilenceUsage: true,
	}

	c.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to config file")
	c.PersistentFlags().StringVar(&apiHost, "apiHost", defaultHost, "host of pslsplit (API). Default overridden by config")
	c.PersistentFlags().Uint16Var(&apiPort, "apiPort", defaultPort, "port of pslsplit (API). Default overridden by config")

	c.AddCommand(newServeCommand(),
		newSplitCommand(),
		NewListsCommand(),
		NewValidateCommand(),
		NewVersionCommand(),
	)

	return c
}

func apiURL(path string) string {
	return fmt.Sprintf("http://%s%s", net.JoinHostPort(apiHost, strconv.Itoa(int(apiPort))), path)
}

// initConfig loads the configuration file. A missing file results in the defaults,
// unless the path was set explicitly.
func initConfig() error {
	if configPath == defaultConfigPath {
		if val, present := os.LookupEnv(configFileEnvVar); present {
			configPath = val
		}
	}

	c, err := config.LoadConfig(configPath, configPath != defaultConfigPath)
	if err != nil {
		return fmt.Errorf("unable to load configuration: %w", err)
	}

	cfg = c

	log.ConfigureLogger(cfg.Log)

	addresses := cfg.Ports.HTTP.Addresses()
	if len(addresses) == 0 {
		return nil
	}

	host, port, err := net.SplitHostPort(addresses[0])
	if err != nil {
		return fmt.Errorf("can't parse HTTP address '%s': %w", addresses[0], err)
	}

	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return fmt.Errorf("can't convert port '%s' to number: %w", port, err)
	}

	apiPort = uint16(p)

	if host != "" {
		apiHost = host
	}

	return nil
}

func printOkOrError(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("can't read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("response NOK, %s %s", resp.Status, strings.TrimSpace(string(body)))
	}

	log.Log().Info("OK")

	return body, nil
}

// Execute starts the command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
