package instrumentation

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

// restoreGlobalProviders undoes the global registration NewProvider performs.
func restoreGlobalProviders(t *testing.T) {
	t.Helper()
	tp := otel.GetTracerProvider()
	mp := otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetMeterProvider(mp)
	})
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	server := httptest.NewServer(promhttp.HandlerFor(provider.Registry(), promhttp.HandlerOpts{}))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewProvider_Disabled(t *testing.T) {
	ctx := context.Background()
	provider, err := NewProvider(ctx, Config{
		MetricsExporter: ExporterPrometheus,
		TracingExporter: ExporterNone,
	})
	require.NoError(t, err)

	assert.False(t, provider.Enabled())
	assert.NotNil(t, provider.Metrics())
	assert.Nil(t, provider.Registry())

	// Recording into no-op instruments must not panic
	provider.Metrics().RecordRun(ctx, RunResultSuccess)
	assert.NoError(t, provider.Shutdown(ctx))
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{
		Enabled:         true,
		MetricsExporter: "graphite",
	})
	assert.ErrorContains(t, err, "unsupported metrics exporter")
}

func TestNewProvider_PrometheusExposition(t *testing.T) {
	restoreGlobalProviders(t)
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-namespace-pods",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: ExporterPrometheus,
		TracingExporter: ExporterNone,
	})
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(ctx) }()

	require.NotNil(t, provider.Registry())

	metrics := provider.Metrics()
	metrics.RecordAPICall(ctx, APICall{Operation: OperationGet, Resource: "namespaces", Namespace: "demo", Status: StatusSuccess, Duration: 5 * time.Millisecond})
	metrics.RecordAPICall(ctx, APICall{Operation: OperationList, Resource: "pods", Namespace: "demo", Status: StatusSuccess, Duration: 7 * time.Millisecond})
	metrics.RecordRun(ctx, RunResultSuccess)

	output := scrape(t, provider)
	for _, name := range []string{
		"kubernetes_operations_total",
		"kubernetes_operation_duration_seconds",
		"run_total",
	} {
		assert.True(t, strings.Contains(output, name), "expected metric %s in exposition", name)
	}
	assert.Contains(t, output, `result="success"`)
}

func TestProvider_ShutdownPushesToPushgateway(t *testing.T) {
	restoreGlobalProviders(t)
	ctx := context.Background()

	var (
		mu     sync.Mutex
		method string
		path   string
		body   string
	)
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		mu.Lock()
		method, path, body = r.Method, r.URL.Path, string(data)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	provider, err := NewProvider(ctx, Config{
		ServiceName:     "test-namespace-pods",
		Enabled:         true,
		MetricsExporter: ExporterPrometheus,
		TracingExporter: ExporterNone,
		PushgatewayURL:  gateway.URL,
		PushJobName:     "namespace-pods",
	})
	require.NoError(t, err)

	provider.Metrics().RecordRun(ctx, RunResultNamespaceNotFound)
	require.NoError(t, provider.Shutdown(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/metrics/job/namespace-pods", path)
	assert.NotEmpty(t, body)
}

func TestProvider_ShutdownReportsPushFailure(t *testing.T) {
	restoreGlobalProviders(t)
	ctx := context.Background()

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer gateway.Close()

	provider, err := NewProvider(ctx, Config{
		Enabled:         true,
		MetricsExporter: ExporterPrometheus,
		TracingExporter: ExporterNone,
		PushgatewayURL:  gateway.URL,
		PushJobName:     "namespace-pods",
	})
	require.NoError(t, err)

	err = provider.Shutdown(ctx)
	assert.ErrorContains(t, err, "failed to push metrics")
}

func TestNewProvider_StdoutExporters(t *testing.T) {
	restoreGlobalProviders(t)
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{
		Enabled:           true,
		MetricsExporter:   ExporterStdout,
		TracingExporter:   ExporterStdout,
		TraceSamplingRate: 1,
	})
	require.NoError(t, err)

	assert.Nil(t, provider.Registry())

	_, span := StartRunSpan(ctx)
	EndSpan(span, nil)
	provider.Metrics().RecordRun(ctx, RunResultSuccess)

	assert.NoError(t, provider.Shutdown(ctx))
}
