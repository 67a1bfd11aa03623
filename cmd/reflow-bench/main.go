package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reflow-bench",
		Short: "Benchmark and inspection tooling for the Reflow renderer",
		Long: `reflow-bench exercises the Reflow reconciler outside of a host:

  • diff   — run keyed-diff benchmark profiles over the in-memory host
  • serve  — serve a live demo component over websocket, with Prometheus
             metrics at /metrics
  • version`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		diffCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("reflow-bench %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
