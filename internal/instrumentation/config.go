package instrumentation

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Exporter names accepted in the configuration.
const (
	ExporterPrometheus = "prometheus"
	ExporterOTLP       = "otlp"
	ExporterStdout     = "stdout"
	ExporterNone       = "none"
)

// Config holds the configuration for OpenTelemetry instrumentation.
type Config struct {
	// ServiceName is the name of the service (default: namespace-pods)
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"namespace-pods"`

	// ServiceVersion is the version of the service, injected at build time.
	ServiceVersion string `ignored:"true"`

	// Enabled determines if instrumentation is active (default: false for zero overhead)
	Enabled bool `envconfig:"INSTRUMENTATION_ENABLED" default:"false"`

	// MetricsExporter specifies the metrics exporter type
	// Options: "prometheus", "otlp", "stdout" (default: "prometheus")
	MetricsExporter string `envconfig:"METRICS_EXPORTER" default:"prometheus"`

	// TracingExporter specifies the tracing exporter type
	// Options: "otlp", "stdout", "none" (default: "none")
	TracingExporter string `envconfig:"TRACING_EXPORTER" default:"none"`

	// OTLPEndpoint is the OTLP collector endpoint, e.g. "http://localhost:4318"
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// OTLPInsecure controls whether to use insecure HTTP for OTLP export.
	// Set to true only for local development or testing with unencrypted endpoints.
	OTLPInsecure bool `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"false"`

	// TraceSamplingRate is the sampling rate for traces (0.0 to 1.0).
	// A run produces a single trace, so everything is sampled by default.
	TraceSamplingRate float64 `envconfig:"OTEL_TRACES_SAMPLER_ARG" default:"1.0"`

	// DetailedLabels adds namespace and resource_type labels to operation metrics.
	DetailedLabels bool `envconfig:"METRICS_DETAILED_LABELS" default:"false"`

	// PushgatewayURL receives the prometheus metrics when the provider shuts down.
	// Empty disables the push.
	PushgatewayURL string `envconfig:"PUSHGATEWAY_URL"`

	// PushJobName is the job label used when pushing to the Pushgateway.
	PushJobName string `envconfig:"PUSHGATEWAY_JOB" default:"namespace-pods"`
}

// LoadConfig reads the instrumentation configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("failed to read instrumentation config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.MetricsExporter {
	case ExporterPrometheus, ExporterOTLP, ExporterStdout:
	default:
		return fmt.Errorf("unsupported metrics exporter %q", c.MetricsExporter)
	}

	switch c.TracingExporter {
	case ExporterOTLP, ExporterStdout, ExporterNone, "":
	default:
		return fmt.Errorf("unsupported tracing exporter %q", c.TracingExporter)
	}

	if c.TraceSamplingRate < 0 || c.TraceSamplingRate > 1 {
		return fmt.Errorf("trace sampling rate must be between 0 and 1, got %v", c.TraceSamplingRate)
	}

	return nil
}

// Constants for metric label values.
const (
	// Status values
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusError    = "error"

	// Operation types
	OperationGet  = "get"
	OperationList = "list"

	// Run results
	RunResultSuccess           = "success"
	RunResultConfigError       = "config_error"
	RunResultQueryError        = "query_error"
	RunResultNamespaceNotFound = "namespace_not_found"

	// Metric recording intervals
	DefaultMetricInterval = 10 * time.Second
)
