package k8s

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

var (
	// NamespaceGVR identifies the core/v1 namespaces resource.
	NamespaceGVR = corev1.SchemeGroupVersion.WithResource(ResourceNamespaces)

	// PodGVR identifies the core/v1 pods resource.
	PodGVR = corev1.SchemeGroupVersion.WithResource(ResourcePods)
)

// ListKinds maps the resources this package lists to their list kinds.
// Fake dynamic clients need it to serve List calls.
func ListKinds() map[schema.GroupVersionResource]string {
	return map[schema.GroupVersionResource]string{
		NamespaceGVR: "NamespaceList",
		PodGVR:       "PodList",
	}
}
