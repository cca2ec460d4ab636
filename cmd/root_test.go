package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainmocks "perfchart.dev/pkg/perfchart/internal/domain/mocks"
)

const executeModeEnv = "EXECUTE_TEST_MODE"

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "perfchart", cmd.Use)
	assert.Equal(t, rootLongDescription, cmd.Long)

	flags := cmd.PersistentFlags()
	for name, shorthand := range map[string]string{outputFlagName: "o", verboseFlagName: "v", logFileFlagName: ""} {
		flag := flags.Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, shorthand, flag.Shorthand, name)
	}
}

func TestRootCmd_HelpListsCommands(t *testing.T) {
	cmd, out := newTestRoot(t, newCalcCmd, newInspectCmd, newBatchCmd, newViewCmd)

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	for _, want := range []string{"performance charts", "calc", "inspect", "batch", "view", "--output"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestRootCmd_ConfiguresLogger(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)
	mockWorkflow.EXPECT().View(mock.Anything, mock.Anything).Return(nil)

	logPath := filepath.Join(t.TempDir(), "calc.log")

	cmd, _ := newTestRoot(t, newViewCmd)
	cmd.SetArgs([]string{"view", "--verbose", "--log-file", logPath})
	require.NoError(t, cmd.Execute())

	assert.True(t, viper.GetBool(logVerboseKey))
	assert.Equal(t, logPath, viper.GetString(logFilenameKey))
	assert.Same(t, globalLogger, slog.Default())
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	slog.Debug("chart loaded", "kind", "chase around")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "chart loaded")
}

func TestRootCmd_LogsAtInfoByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)
	mockWorkflow.EXPECT().View(mock.Anything, mock.Anything).Return(nil)

	cmd, _ := newTestRoot(t, newViewCmd)
	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())

	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
}

func TestSharedDependencies(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, definitionStore)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, calculatorCache)
	assert.NotNil(t, workflow)
}

// runExecuteMode replaces the root command and calls Execute. It runs inside
// the child process started by TestExecute.
func runExecuteMode(mode string) {
	rootCmd = &cobra.Command{
		Use: "perfchart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			switch mode {
			case "success":
				if ctx.Err() != nil {
					return ctx.Err()
				}

				fmt.Println("calculated")

				return nil
			case "failure":
				return errors.New("step 3 (wind until windComponent): no intersection")
			case "interrupt":
				self, err := os.FindProcess(os.Getpid())
				if err != nil {
					return err
				}

				if err := self.Signal(os.Interrupt); err != nil {
					return err
				}

				select {
				case <-ctx.Done():
					fmt.Fprintln(os.Stderr, "interrupted:", ctx.Err())
					return ctx.Err()
				case <-time.After(10 * time.Second):
					return errors.New("interrupt never cancelled the context")
				}
			}

			return fmt.Errorf("unknown mode %q", mode)
		},
	}
	rootCmd.SetArgs([]string{})

	Execute()
}

func TestExecute(t *testing.T) {
	if mode := os.Getenv(executeModeEnv); mode != "" {
		runExecuteMode(mode)
		return
	}

	tests := []struct {
		mode       string
		wantCode   int
		wantOutput string
	}{
		{mode: "success", wantCode: 0, wantOutput: "calculated"},
		{mode: "failure", wantCode: 1, wantOutput: "no intersection"},
		{mode: "interrupt", wantCode: 1, wantOutput: "interrupted: context canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			child := exec.Command(os.Args[0], "-test.run=^TestExecute$")
			child.Env = append(os.Environ(), executeModeEnv+"="+tt.mode)

			output, err := child.CombinedOutput()

			code := 0

			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else {
				require.NoError(t, err, "output: %s", output)
			}

			assert.Equal(t, tt.wantCode, code, "output: %s", output)
			assert.Contains(t, string(output), tt.wantOutput)
		})
	}
}
