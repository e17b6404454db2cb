// Package cmd provides the command-line interface for namespace-pods.
//
// This package implements a Cobra-based CLI with the following subcommands:
//   - run: Checks the namespace and prints its pods (default behavior when no subcommand is provided)
//   - version: Displays the application version
//   - self-update: Updates the binary to the latest version from GitHub releases
//
// Command Structure:
//
//	namespace-pods                 # Runs once (default)
//	namespace-pods run             # Explicitly runs once
//	namespace-pods version         # Shows version information
//	namespace-pods self-update     # Updates to latest release
//	namespace-pods help [command]  # Shows help information
//
// The run command takes no flags. It is configured entirely from the
// environment (HOST, NAMESPACE, TOKEN_FILE, CA_FILE, OUTPUT, LOG_LEVEL,
// LOG_FORMAT and the instrumentation variables). On success the pod list is
// written to stdout; on failure a one-line diagnostic is written to stdout
// and the process exits with status 1.
package cmd
