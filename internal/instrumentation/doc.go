// Package instrumentation provides OpenTelemetry instrumentation for
// namespace-pods.
//
// A run is short-lived, so the package is built around a Provider that is
// created at start-up and shut down (flushing every exporter) before the
// process exits:
//   - OpenTelemetry metrics for Kubernetes API calls and run outcomes
//   - Distributed tracing for the run and each Kubernetes API call
//   - Prometheus exposition pushed to a Pushgateway at shutdown
//   - OTLP and stdout exporters for collectors and local debugging
//
// # Metrics
//
//   - kubernetes_operations_total: Counter of K8s operations by operation and status
//   - kubernetes_operation_duration_seconds: Histogram of K8s operation durations
//   - run_total: Counter of completed runs by result
//
// Namespace and resource_type labels are only attached when detailed labels
// are enabled.
//
// # Tracing
//
// A "run" span wraps one "k8s.get" span for the namespace check and, when
// the namespace exists, one "k8s.list" span for the pod listing.
//
// # Configuration
//
// Instrumentation is configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: false)
//   - METRICS_EXPORTER: prometheus, otlp or stdout (default: prometheus)
//   - TRACING_EXPORTER: otlp, stdout or none (default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_EXPORTER_OTLP_INSECURE: use plain HTTP for OTLP (default: false)
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 1.0)
//   - OTEL_SERVICE_NAME: Service name (default: namespace-pods)
//   - PUSHGATEWAY_URL: Pushgateway receiving the prometheus metrics on shutdown
//   - PUSHGATEWAY_JOB: job label used for the push (default: namespace-pods)
//
// # Example Usage
//
//	config, err := instrumentation.LoadConfig()
//	if err != nil {
//		return err
//	}
//	provider, err := instrumentation.NewProvider(ctx, config)
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	ctx, span := instrumentation.StartAPISpan(ctx, instrumentation.OperationList, "pods", "demo")
//	defer func() { instrumentation.EndSpan(span, err) }()
//	provider.Metrics().RecordAPICall(ctx, instrumentation.APICall{
//		Operation: instrumentation.OperationList,
//		Resource:  "pods",
//		Namespace: "demo",
//		Status:    instrumentation.StatusSuccess,
//		Duration:  time.Since(start),
//	})
package instrumentation
