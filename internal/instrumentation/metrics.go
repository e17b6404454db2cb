package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	MetricAPICalls       = "kubernetes_operations_total"
	MetricAPICallSeconds = "kubernetes_operation_duration_seconds"
	MetricRuns           = "run_total"
)

// Metric label keys.
const (
	attrStatus       = "status"
	attrOperation    = "operation"
	attrResourceType = "resource_type"
	attrNamespace    = "namespace"
	attrResult       = "result"
)

// apiCallBuckets covers a fast in-cluster GET up to a slow LIST.
var apiCallBuckets = []float64{0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0}

// APICall describes one finished Kubernetes API call.
type APICall struct {
	Operation string
	Resource  string
	Namespace string
	// Status is StatusSuccess, StatusNotFound or StatusError.
	Status   string
	Duration time.Duration
}

// Metrics records the metrics of a run. A nil *Metrics records nothing.
type Metrics struct {
	apiCalls       metric.Int64Counter
	apiCallSeconds metric.Float64Histogram
	runs           metric.Int64Counter

	// namespace and resource_type are only attached when set
	detailedLabels bool
}

// NewMetrics creates the instruments on meter.
func NewMetrics(meter metric.Meter, detailedLabels bool) (*Metrics, error) {
	m := &Metrics{detailedLabels: detailedLabels}

	var err error
	if m.apiCalls, err = meter.Int64Counter(MetricAPICalls,
		metric.WithDescription("Kubernetes API calls by operation and status"),
		metric.WithUnit("{call}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", MetricAPICalls, err)
	}

	if m.apiCallSeconds, err = meter.Float64Histogram(MetricAPICallSeconds,
		metric.WithDescription("Kubernetes API call latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(apiCallBuckets...),
	); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", MetricAPICallSeconds, err)
	}

	if m.runs, err = meter.Int64Counter(MetricRuns,
		metric.WithDescription("Finished runs by result"),
		metric.WithUnit("{run}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", MetricRuns, err)
	}

	return m, nil
}

// RecordAPICall counts call and observes its duration.
func (m *Metrics) RecordAPICall(ctx context.Context, call APICall) {
	if m == nil || m.apiCalls == nil || m.apiCallSeconds == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, call.Operation),
		attribute.String(attrStatus, call.Status),
	}
	if m.detailedLabels {
		attrs = append(attrs,
			attribute.String(attrResourceType, call.Resource),
			attribute.String(attrNamespace, call.Namespace))
	}

	opt := metric.WithAttributeSet(attribute.NewSet(attrs...))
	m.apiCalls.Add(ctx, 1, opt)
	m.apiCallSeconds.Record(ctx, call.Duration.Seconds(), opt)
}

// RecordRun counts a finished run. result is one of the RunResult* values.
func (m *Metrics) RecordRun(ctx context.Context, result string) {
	if m == nil || m.runs == nil {
		return
	}
	m.runs.Add(ctx, 1, metric.WithAttributes(attribute.String(attrResult, result)))
}
