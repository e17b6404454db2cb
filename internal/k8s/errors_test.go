package k8s

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

func TestQueryError_Error(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *QueryError
		want string
	}{
		{
			name: "namespace check",
			err:  &QueryError{Op: "get", Resource: ResourceNamespaces, Namespace: "demo", Err: cause},
			want: `error checking namespace "demo": boom`,
		},
		{
			name: "pod list",
			err:  &QueryError{Op: "list", Resource: ResourcePods, Namespace: "demo", Err: cause},
			want: `error getting pods for namespace "demo": boom`,
		},
		{
			name: "other",
			err:  &QueryError{Op: "get", Resource: ResourcePods, Namespace: "demo", Err: cause},
			want: `error during get of pods in namespace "demo": boom`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestQueryError_Matching(t *testing.T) {
	cause := apierrors.NewNotFound(schema.GroupResource{Resource: ResourceNamespaces}, "demo")
	err := fmt.Errorf("wrapped: %w", &QueryError{Op: "get", Resource: ResourceNamespaces, Namespace: "demo", Err: cause})

	assert.ErrorIs(t, err, ErrQuery)
	assert.True(t, apierrors.IsNotFound(err))

	var qerr *QueryError
	assert.ErrorAs(t, err, &qerr)
	assert.True(t, qerr.NotFound())
	assert.False(t, errors.Is(errors.New("other"), ErrQuery))
}
