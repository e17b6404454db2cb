// Package output renders pod lists for namespace-pods.
//
// The pods are wrapped in a v1 List document and written either as indented
// JSON or as YAML. Pod records are written exactly as the API server
// returned them.
package output
