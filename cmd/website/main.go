// Command website serves the VilnaCRM website and runs its build tooling:
// localization bundling, API schema download and the GraphQL mock.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VilnaCRM-Org/website-sub001/internal/config"
	"github.com/VilnaCRM-Org/website-sub001/internal/infrastructure/telemetry"
)

const serviceName = "vilnacrm-website"

// app is the state shared by every command of one invocation.
type app struct {
	verbose bool
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "website",
		Short:         "VilnaCRM website server and build tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := telemetry.NewLogger(cfg.LogLevel, a.verbose)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.serveCmd(),
		a.mockCmd(),
		a.i18nCmd(),
		a.schemaCmd(),
	)
	return root
}

// startTracing installs the OTLP exporter when configured and returns a
// function flushing it.
func (a *app) startTracing(ctx context.Context) func() {
	shutdown, err := telemetry.SetupTracing(ctx, serviceName, a.cfg.OTelEndpoint, a.cfg.OTelEnabled)
	if err != nil {
		a.logger.Warn("tracing disabled", zap.Error(err))
	}
	return func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			a.logger.Warn("flush traces", zap.Error(err))
		}
	}
}

// fail reports a command error through the logger, or to stderr when the
// command failed before configuration produced one.
func (a *app) fail(err error, stderr io.Writer) {
	if a.logger == nil {
		fmt.Fprintln(stderr, "error:", err)
		return
	}
	a.logger.Error("command failed", zap.Error(err))
	_ = a.logger.Sync()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{}
	if err := a.rootCmd().ExecuteContext(ctx); err != nil {
		a.fail(err, os.Stderr)
		stop()
		os.Exit(1)
	}
}
