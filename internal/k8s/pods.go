package k8s

import (
	"context"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/giantswarm/namespace-pods/internal/instrumentation"
	"github.com/giantswarm/namespace-pods/internal/logging"
)

// PodList is the single page of pods returned for a namespace.
// Items are kept exactly as the API server sent them.
type PodList struct {
	Namespace       string
	ResourceVersion string
	Items           []unstructured.Unstructured
}

// ListPods lists the pods in namespace with a single request.
// No pagination is performed; any error is returned as a *QueryError.
func (c *Client) ListPods(ctx context.Context, namespace string) (pods *PodList, err error) {
	ctx, span := instrumentation.StartAPISpan(ctx, instrumentation.OperationList, ResourcePods, namespace)
	defer func() { instrumentation.EndSpan(span, err) }()

	query := logging.Query(instrumentation.OperationList, ResourcePods, namespace)
	c.logger.Debug("listing pods", query)

	start := time.Now()
	list, listErr := c.dynamic.Resource(PodGVR).Namespace(namespace).List(ctx, metav1.ListOptions{})
	call := instrumentation.APICall{
		Operation: instrumentation.OperationList,
		Resource:  ResourcePods,
		Namespace: namespace,
		Status:    instrumentation.StatusSuccess,
		Duration:  time.Since(start),
	}

	if listErr != nil {
		call.Status = instrumentation.StatusError
		c.metrics.RecordAPICall(ctx, call)
		c.logger.Error("pod list failed", query, logging.SanitizedErr(listErr))
		return nil, &QueryError{Op: instrumentation.OperationList, Resource: ResourcePods, Namespace: namespace, Err: listErr}
	}
	c.metrics.RecordAPICall(ctx, call)

	pods = &PodList{
		Namespace:       namespace,
		ResourceVersion: list.GetResourceVersion(),
		Items:           list.Items,
	}
	span.SetAttributes(instrumentation.AttrItemCount.Int(len(pods.Items)))
	c.logger.Debug("listed pods", query, logging.ItemCount(len(pods.Items)))

	return pods, nil
}
