// Command oci-pricing-mcp serves Oracle Cloud Infrastructure pricing data to
// AI assistants over the Model Context Protocol on stdio.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jasonwilbur/oci-pricing-mcp/internal/cache"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/catalog"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/estimate"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/live"
	"github.com/jasonwilbur/oci-pricing-mcp/internal/mcpserver"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "oci-pricing-mcp: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "oci-pricing-mcp",
		Short:         "MCP server for Oracle Cloud Infrastructure pricing",
		Long:          "Serves OCI list pricing, cost calculators, and multicloud comparisons to MCP clients over stdio.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(cfgPath)
		},
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the server version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	return cmd
}

func runServe(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	c := cache.New(cfg.CacheTTL)
	loader, err := catalog.NewLoader(c, logger)
	if err != nil {
		return fmt.Errorf("loading pricing catalog: %w", err)
	}
	engine := estimate.NewEngine(loader, logger)
	liveClient := live.NewClient(cfg.LiveEndpoint, cfg.LiveTimeout, c, logger)

	srv := mcpserver.New(loader, engine, liveClient, c, logger, version)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
		os.Exit(0)
	}()

	logger.Info().Str("version", version).Msg("serving MCP over stdio")
	if err := srv.ServeStdio(); err != nil {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}
