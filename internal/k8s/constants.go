package k8s

const (
	// UserAgent is sent with every API request.
	UserAgent = "namespace-pods"

	// Resource names used in logs, spans and errors
	ResourceNamespaces = "namespaces"
	ResourcePods       = "pods"
)
