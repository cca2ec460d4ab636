package chart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func mustContour(t *testing.T, direction m.Direction, path ...m.Point) *Contour {
	t.Helper()

	c, err := NewContour(path, direction)
	require.NoError(t, err)

	return c
}

func assertPath(t *testing.T, want m.Path, got *Contour) {
	t.Helper()

	require.NotNil(t, got)

	if diff := cmp.Diff(want, got.Path(), approx); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}
