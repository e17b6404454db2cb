package k8s

import (
	"context"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/giantswarm/namespace-pods/internal/instrumentation"
	"github.com/giantswarm/namespace-pods/internal/logging"
)

// NamespaceStatus is the outcome of a namespace check.
type NamespaceStatus int

const (
	// NamespaceUnknown means the check itself failed; an error accompanies it.
	NamespaceUnknown NamespaceStatus = iota
	// NamespaceFound means the namespace exists.
	NamespaceFound
	// NamespaceNotFound means the API server answered "not found".
	NamespaceNotFound
)

// String implements fmt.Stringer.
func (s NamespaceStatus) String() string {
	switch s {
	case NamespaceFound:
		return "found"
	case NamespaceNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// CheckNamespace reads the namespace called name.
//
// A "not found" answer yields NamespaceNotFound and a nil error. Any other
// failure (transport, authentication, server) yields NamespaceUnknown and a
// *QueryError.
func (c *Client) CheckNamespace(ctx context.Context, name string) (status NamespaceStatus, err error) {
	ctx, span := instrumentation.StartAPISpan(ctx, instrumentation.OperationGet, ResourceNamespaces, name)
	defer func() { instrumentation.EndSpan(span, err) }()

	c.logger.Debug("checking namespace", logging.Query(instrumentation.OperationGet, ResourceNamespaces, name))

	start := time.Now()
	_, getErr := c.dynamic.Resource(NamespaceGVR).Get(ctx, name, metav1.GetOptions{})
	call := instrumentation.APICall{
		Operation: instrumentation.OperationGet,
		Resource:  ResourceNamespaces,
		Namespace: name,
		Duration:  time.Since(start),
	}

	switch {
	case getErr == nil:
		call.Status = instrumentation.StatusSuccess
		c.metrics.RecordAPICall(ctx, call)
		return NamespaceFound, nil

	case apierrors.IsNotFound(getErr):
		call.Status = instrumentation.StatusNotFound
		c.metrics.RecordAPICall(ctx, call)
		span.AddEvent(instrumentation.EventNamespaceNotFound)
		c.logger.Debug("namespace not found", logging.Namespace(name), logging.Status(logging.StatusNotFound))
		return NamespaceNotFound, nil
	}

	call.Status = instrumentation.StatusError
	c.metrics.RecordAPICall(ctx, call)
	c.logger.Error("namespace check failed",
		logging.Query(instrumentation.OperationGet, ResourceNamespaces, name),
		logging.SanitizedErr(getErr))
	return NamespaceUnknown, &QueryError{Op: instrumentation.OperationGet, Resource: ResourceNamespaces, Namespace: name, Err: getErr}
}
