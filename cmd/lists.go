package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/0xERR0R/pslsplit/api"
	"github.com/0xERR0R/pslsplit/log"
)

// NewListsCommand creates new command instance
func NewListsCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "lists",
		Short: "suffix list operations",
	}

	c.AddCommand(newRefreshCommand(), newStatusCommand())

	return c
}

func newRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Args:  cobra.NoArgs,
		Short: "refreshes the suffix list of a running service",
		RunE:  refreshList,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Args:  cobra.NoArgs,
		Short: "prints the suffix list status of a running service",
		RunE:  listStatus,
	}
}

func refreshList(cmd *cobra.Command, _ []string) error {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, apiURL(api.PathListsRefresh), nil)
	if err != nil {
		return fmt.Errorf("can't create request: %w", err)
	}

	return callListsAPI(req)
}

func listStatus(cmd *cobra.Command, _ []string) error {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, apiURL(api.PathListsStatus), nil)
	if err != nil {
		return fmt.Errorf("can't create request: %w", err)
	}

	return callListsAPI(req)
}

func callListsAPI(req *http.Request) error {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("can't execute %w", err)
	}
	defer resp.Body.Close()

	body, err := printOkOrError(resp)
	if err != nil {
		return err
	}

	var status api.ListStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return fmt.Errorf("can't read response: %w", err)
	}

	log.Log().Infof("state:         %s", status.State)
	log.Log().Infof("rules:         %d", status.RuleCount)

	if status.ID != "" {
		log.Log().Infof("id:            %s", status.ID)
		log.Log().Infof("age:           %s", status.Age)
	}

	log.Log().Infof("cached splits: %d", status.CacheSize)

	return nil
}
