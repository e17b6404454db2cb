package instrumentation

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName names the tracer every span of a run is created with.
const TracerName = "github.com/giantswarm/namespace-pods"

// Span names.
const (
	SpanRun = "run"
	// API call spans are named SpanAPIPrefix + operation, e.g. "k8s.get".
	SpanAPIPrefix = "k8s."
)

// Span attribute keys.
const (
	AttrNamespace = attribute.Key("k8s.namespace")
	AttrResource  = attribute.Key("k8s.resource")
	AttrOperation = attribute.Key("k8s.operation")
	AttrItemCount = attribute.Key("k8s.item_count")
)

// EventNamespaceNotFound is added to the namespace check span when the
// namespace does not exist. The span itself still ends successfully.
const EventNamespaceNotFound = "namespace.not_found"

func tracer() trace.Tracer {
	return otel.GetTracerProvider().Tracer(TracerName)
}

// StartRunSpan starts the root span of a run. The namespace attribute is
// added once the settings are known.
func StartRunSpan(ctx context.Context) (context.Context, trace.Span) {
	return tracer().Start(ctx, SpanRun)
}

// StartAPISpan starts a client span for one Kubernetes API call.
func StartAPISpan(ctx context.Context, operation, resource, namespace string) (context.Context, trace.Span) {
	return tracer().Start(ctx, SpanAPIPrefix+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			AttrOperation.String(operation),
			AttrResource.String(resource),
			AttrNamespace.String(namespace),
		),
	)
}

// EndSpan sets the span status from err and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// TraceID returns the trace ID of the span in ctx, or "" when there is none.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
