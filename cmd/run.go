package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/giantswarm/namespace-pods/internal/config"
	"github.com/giantswarm/namespace-pods/internal/instrumentation"
	"github.com/giantswarm/namespace-pods/internal/logging"
	"github.com/giantswarm/namespace-pods/internal/runner"
)

// newRunCmd creates the Cobra command that performs a single run.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Check the namespace and print its pods",
		Long: `Reads HOST, NAMESPACE and the bearer token, verifies that the namespace
exists and prints its pods to stdout.

Environment:
  HOST        API server URL (required)
  NAMESPACE   namespace to inspect (required)
  TOKEN_FILE  bearer token file (default: the service-account token)
  CA_FILE     CA bundle used to verify the API server
  OUTPUT      json (default) or yaml
  LOG_LEVEL   debug, info (default), warn or error
  LOG_FORMAT  text (default) or json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// runOnce wires logging and instrumentation around a single run.
// out receives the pod list, logs receives the structured logs.
func runOnce(out, logs io.Writer, opts ...runner.Option) error {
	// Listen for both SIGINT and SIGTERM to cancel in-flight requests
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logSettings, err := config.LoadLogSettings()
	if err != nil {
		return err
	}
	slogger, err := logging.New(logSettings.LogLevel, logSettings.LogFormat, logs)
	if err != nil {
		return &config.ConfigError{Key: "LOG_LEVEL", Reason: "invalid logging settings", Err: err}
	}
	logger := logging.NewSlogAdapter(slogger)

	instrumentationConfig, err := instrumentation.LoadConfig()
	if err != nil {
		return err
	}
	instrumentationConfig.ServiceVersion = rootCmd.Version

	instrumentationProvider, err := instrumentation.NewProvider(ctx, instrumentationConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if shutdownErr := instrumentationProvider.Shutdown(context.Background()); shutdownErr != nil {
			logger.Warn("instrumentation shutdown failed", logging.Err(shutdownErr))
		}
	}()

	if instrumentationProvider.Enabled() {
		logger.Debug("OpenTelemetry instrumentation enabled",
			"metrics_exporter", instrumentationConfig.MetricsExporter,
			"tracing_exporter", instrumentationConfig.TracingExporter)
	}

	runOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithMetrics(instrumentationProvider.Metrics()),
	}
	return runner.New(out, append(runOpts, opts...)...).Run(ctx)
}
