// Command nodegrad trains small scalar networks and renders computation
// graphs.
//
// Usage:
//
//	nodegrad <command> [flags]
//
// Commands:
//
//	train  Fit an MLP described by a YAML config
//	graph  Differentiate an example expression and print it as DOT
//
// LOG_LEVEL (DEBUG, INFO, WARN, ERROR) and LOG_FORMAT (json, text) control
// logging on stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/born-ml/nodegrad/internal/cli"
	"github.com/born-ml/nodegrad/internal/telemetry"
)

// version is set with ldflags at build time.
var version = "dev"

func main() {
	logger := telemetry.SetupLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = telemetry.WithLogger(ctx, logger)

	rootCmd := &cobra.Command{
		Use:           "nodegrad",
		Short:         "Scalar reverse-mode autodiff and tiny neural networks",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		cli.NewTrainCmd(),
		cli.NewGraphCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}
