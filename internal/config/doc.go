// Package config loads the run settings of namespace-pods.
//
// The API server host and the target namespace come from the environment
// (HOST and NAMESPACE, the latter usually injected through the downward
// API); the bearer token is read from the service-account token file. Every
// failure is reported as a *ConfigError and happens before any network call.
package config
