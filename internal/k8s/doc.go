// Package k8s talks to the Kubernetes API on behalf of namespace-pods.
//
// It owns the two calls a run makes:
//
//   - CheckNamespace: GET v1/namespaces/<name>, returning a typed
//     NamespaceStatus so that "not found" is an ordinary outcome
//   - ListPods: LIST v1/pods in a namespace, returning the records as
//     unstructured objects
//
// Clients are built from an explicit ConnectionConfig carrying the API host
// and the Authorization header value; there is no process-wide default
// configuration. Authenticate performs no network call: malformed hosts or
// tokens surface as a *QueryError from the first request.
//
// Example usage:
//
//	client, err := k8s.Authenticate(k8s.NewConnectionConfig(host, token),
//		k8s.WithLogger(logger), k8s.WithMetrics(metrics))
//	if err != nil {
//		return err
//	}
//
//	status, err := client.CheckNamespace(ctx, "demo")
//	if err != nil {
//		return err
//	}
//	if status == k8s.NamespaceFound {
//		pods, err := client.ListPods(ctx, "demo")
//		...
//	}
package k8s
