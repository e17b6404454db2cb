package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmdProperties(t *testing.T) {
	assert.Equal(t, "namespace-pods", rootCmd.Use)
	assert.Equal(t, "List the pods of a Kubernetes namespace", rootCmd.Short)
	assert.True(t, strings.Contains(rootCmd.Long, "namespace"))
	assert.True(t, strings.Contains(rootCmd.Long, "Kubernetes"))
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestSetVersion(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() {
		rootCmd.Version = originalVersion
	}()

	testVersion := "v1.2.3-test"
	SetVersion(testVersion)

	assert.Equal(t, testVersion, rootCmd.Version)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	subcommands := rootCmd.Commands()

	var foundCommands []string
	for _, cmd := range subcommands {
		foundCommands = append(foundCommands, cmd.Use)
	}

	assert.Contains(t, foundCommands, "version")
	assert.Contains(t, foundCommands, "self-update")
	assert.Contains(t, foundCommands, "run")
	assert.GreaterOrEqual(t, len(foundCommands), 3)
}

func TestPrintDiagnostic(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "single line",
			err:  errors.New(`namespace "demo" does not exist`),
			want: "namespace \"demo\" does not exist\n",
		},
		{
			name: "multi line error is folded",
			err:  errors.New("error checking namespace \"demo\":\n  connection refused\n"),
			want: "error checking namespace \"demo\": connection refused\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printDiagnostic(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
