package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/0xERR0R/pslsplit/config"
	"github.com/0xERR0R/pslsplit/evt"
	"github.com/0xERR0R/pslsplit/lists"
	"github.com/0xERR0R/pslsplit/log"
	"github.com/0xERR0R/pslsplit/metrics"
	"github.com/0xERR0R/pslsplit/psl"
	"github.com/0xERR0R/pslsplit/server"
)

//nolint:gochecknoglobals
var signals = make(chan os.Signal, 1)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "start pslsplit HTTP service (default command)",
		RunE:  startServer,
	}
}

func startServer(_ *cobra.Command, _ []string) error {
	printBanner()

	if cfg == nil {
		if err := initConfig(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	if cfg.Prometheus.IsEnabled() {
		metrics.StartCollection()
	}

	list, err := newList(ctx, cfg, cfg.Loading.Strategy)
	if err != nil {
		return err
	}

	defer list.Close()

	srv, err := server.NewServer(cfg, list)
	if err != nil {
		return fmt.Errorf("can't start server: %w", err)
	}

	errCh := make(chan error, 1)

	srv.Start(ctx, errCh)

	evt.Bus().Publish(evt.ApplicationStarted, version, buildTime)

	select {
	case <-signals:
		log.Log().Info("Terminating...")
		srv.Stop()

		return nil

	case err := <-errCh:
		log.Log().Error("server start failed: ", err)
		srv.Stop()

		return err
	}
}

// newList creates the suffix list from the configured sources.
func newList(ctx context.Context, cfg *config.Config, strategy config.InitStrategy) (*psl.List, error) {
	sources, err := lists.NewSourceSetFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("can't create suffix list sources: %w", err)
	}

	opts := psl.OptionsFromConfig(cfg)
	opts.DataSource = sources
	opts.Logger = log.NewCapability(log.PrefixedLog("psl"))
	opts.Strategy = strategy

	list, err := psl.NewList(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("can't create suffix list: %w", err)
	}

	return list, nil
}

func printBanner() {
	log.Log().Info("_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/")
	log.Log().Info("_/                                                              _/")
	log.Log().Info("_/   pslsplit: domain names cut at their public suffix          _/")
	log.Log().Info("_/                                                              _/")
	log.Log().Infof("_/  Version: %-18s Build time: %-18s  _/", version, buildTime)
	log.Log().Info("_/                                                              _/")
	log.Log().Info("_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/")
}
