package k8s

import (
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// ErrQuery is matched by every *QueryError through errors.Is.
var ErrQuery = errors.New("kubernetes query failed")

// QueryError reports a failed Kubernetes API call.
type QueryError struct {
	// Op is the verb of the failed call ("get" or "list").
	Op string
	// Resource is the resource the call targeted.
	Resource string
	// Namespace is the namespace the call was about.
	Namespace string
	// Err is the error returned by client-go.
	Err error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	switch {
	case e.Resource == ResourceNamespaces:
		return fmt.Sprintf("error checking namespace %q: %v", e.Namespace, e.Err)
	case e.Op == "list":
		return fmt.Sprintf("error getting %s for namespace %q: %v", e.Resource, e.Namespace, e.Err)
	default:
		return fmt.Sprintf("error during %s of %s in namespace %q: %v", e.Op, e.Resource, e.Namespace, e.Err)
	}
}

// Unwrap returns the client-go error.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrQuery.
func (e *QueryError) Is(target error) bool {
	return target == ErrQuery
}

// NotFound reports whether the API server answered "not found".
func (e *QueryError) NotFound() bool {
	return apierrors.IsNotFound(e.Err)
}
