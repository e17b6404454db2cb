package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the namespace-pods application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "namespace-pods",
	Short: "List the pods of a Kubernetes namespace",
	Long: `namespace-pods authenticates to a Kubernetes API server with a bearer token,
verifies that a namespace exists and prints the pods it contains.

It is meant to run inside a pod: the token defaults to the mounted
service-account token and the namespace is usually injected through the
downward API.

When run without subcommands, it performs a single run (equivalent to 'namespace-pods run').`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	// Errors are reported by Execute as a single line on stdout.
	SilenceErrors: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	// SetVersionTemplate defines a custom template for displaying the version.
	// This is used when the --version flag is invoked.
	rootCmd.SetVersionTemplate(`{{printf "namespace-pods version %s\n" .Version}}`)

	// If no subcommand is provided, run once by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "run")
	}

	if err := rootCmd.Execute(); err != nil {
		printDiagnostic(rootCmd.OutOrStdout(), err)
		os.Exit(1)
	}
}

// printDiagnostic writes err to w as a single line.
func printDiagnostic(w io.Writer, err error) {
	msg := strings.Join(strings.Fields(err.Error()), " ")
	_, _ = fmt.Fprintln(w, msg)
}

// init is a special Go function that is executed when the package is initialized.
// It is used here to add subcommands to the root command.
func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newRunCmd())
}
