// Package runner drives a single namespace-pods run.
//
// A run loads its settings, builds a Kubernetes client, checks that the
// namespace exists and, if it does, lists and prints its pods. The first
// failure ends the run and is returned to the caller, which reports it and
// exits non-zero. Nothing is retried.
package runner
