package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"perfchart.dev/pkg/perfchart/internal/domain"
	domainmocks "perfchart.dev/pkg/perfchart/internal/domain/mocks"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

func TestInspectCmd_PassesDefinition(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := newTestRoot(t, newInspectCmd)

	mockWorkflow.EXPECT().
		Inspect(mock.Anything, domain.InspectArgs{Definition: m.FilePath("charts/envelope.json")}).
		Return(nil)

	cmd.SetArgs([]string{"inspect", "charts/envelope.json"})
	require.NoError(t, cmd.Execute())
}

func TestInspectCmd_RequiresOneDefinition(t *testing.T) {
	for _, args := range [][]string{{"inspect"}, {"inspect", "a.json", "b.json"}} {
		useWorkflow(t, domainmocks.NewMockWorkflow(t))

		cmd, _ := newTestRoot(t, newInspectCmd)

		cmd.SetArgs(args)
		require.Error(t, cmd.Execute(), "args %v", args)
	}
}
