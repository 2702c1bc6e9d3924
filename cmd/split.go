package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xERR0R/pslsplit/api"
	"github.com/0xERR0R/pslsplit/config"
)

type splitOptions struct {
	unicode bool
	json    bool
}

func newSplitCommand() *cobra.Command {
	opts := splitOptions{}

	c := &cobra.Command{
		Use:   "split <domain>...",
		Args:  cobra.MinimumNArgs(1),
		Short: "loads the suffix list once and splits the passed domains",
		Long: `Loads the suffix list once and splits the passed domains.

Each line of the output contains the input, the subdomain, the registered domain and the public suffix.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return splitDomains(cmd, args, opts)
		},
	}

	c.Flags().BoolVar(&opts.unicode, "unicode", false, "print IDN labels in Unicode instead of ACE form")
	c.Flags().BoolVar(&opts.json, "json", false, "print one JSON object per domain")

	return c
}

func splitDomains(cmd *cobra.Command, domains []string, opts splitOptions) error {
	// a one-shot split is useless without the list
	list, err := newList(cmd.Context(), oneShotConfig(), config.InitStrategyFailOnError)
	if err != nil {
		return err
	}

	defer list.Close()

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)

	for _, domain := range domains {
		res := list.SplitResult(domain)
		if opts.unicode {
			res = res.ToUnicode()
		}

		if opts.json {
			err = enc.Encode(api.SplitResponse{
				Subdomain:        res.Subdomain,
				Domain:           res.Domain,
				Suffix:           res.Suffix,
				RegisteredDomain: res.RegisteredDomain(),
			})
		} else {
			_, err = fmt.Fprintf(out, "%s\t%q\t%q\t%q\n", domain, res.Subdomain, res.Domain, res.Suffix)
		}

		if err != nil {
			return fmt.Errorf("can't write result: %w", err)
		}
	}

	return nil
}

func oneShotConfig() *config.Config {
	c := *cfg
	c.Loading.RefreshPeriod = 0

	return &c
}
