package cmd

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"perfchart.dev/pkg/perfchart/internal/domain"
)

// resetConfig gives a test a fresh viper holding only the defaults. Flags
// bound by one test would otherwise keep feeding their values to the next.
func resetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	setupConfig()
	viper.SetDefault(logFilenameKey, filepath.Join(t.TempDir(), "perfchart.log"))

	previousLogger := slog.Default()

	t.Cleanup(func() {
		slog.SetDefault(previousLogger)
		viper.Reset()
		setupConfig()
	})
}

// useWorkflow swaps the shared workflow for the duration of a test.
func useWorkflow(t *testing.T, w domain.Workflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = w

	t.Cleanup(func() { workflow = originalWorkflow })
}

// newTestRoot builds a root command over fresh config and attaches the
// subcommands the constructors return. Constructors run after the reset so
// their flag bindings survive it. Output is captured in the returned buffer.
func newTestRoot(t *testing.T, constructors ...func() *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	resetConfig(t)

	out := &bytes.Buffer{}
	cmd := newRootCmd()

	for _, newCmd := range constructors {
		cmd.AddCommand(newCmd())
	}

	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}
