package domain

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

func readFixture[T any](t *testing.T, name string) T {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	var out T
	require.NoError(t, json.Unmarshal(data, &out))

	return out
}

func cruiseChart(t *testing.T) (m.ChaseAroundDef, m.WpdProject) {
	t.Helper()

	return readFixture[m.ChaseAroundDef](t, "cruise.json"), readFixture[m.WpdProject](t, "cruise.wpd.json")
}

func assertPaths(t *testing.T, want, got []m.Path) {
	t.Helper()

	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}
