package runner

import (
	"errors"
	"fmt"
)

// ErrNamespaceNotFound is matched by *NamespaceNotFoundError through errors.Is.
var ErrNamespaceNotFound = errors.New("namespace not found")

// NamespaceNotFoundError is returned when the API server reports that the
// requested namespace does not exist.
type NamespaceNotFoundError struct {
	Namespace string
}

// Error implements the error interface.
func (e *NamespaceNotFoundError) Error() string {
	return fmt.Sprintf("namespace %q does not exist", e.Namespace)
}

// Is reports whether target is ErrNamespaceNotFound.
func (e *NamespaceNotFoundError) Is(target error) bool {
	return target == ErrNamespaceNotFound
}
