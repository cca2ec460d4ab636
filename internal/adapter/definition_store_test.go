package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

const chaseDefinition = `{
  "kind": "chase around",
  "version": "1.0",
  "size": [100, 100],
  "project": {"src": "chart.wpd.json"},
  "guides": {"wind": {"flow": "right"}},
  "scales": {"speed": {"flow": "right", "unit": "knots", "variable": "trueAirspeed"}},
  "steps": [{"chase": "wind", "until": "speed"}, {"solve": "speed"}]
}`

const chaseProject = `{
  "version": [4, 2],
  "datasetColl": [
    {"name": "guide:wind@0", "data": [{"value": [0, 0]}, {"value": [10, 10]}]},
    {"name": "scale:speed=100", "data": [{"value": [0, 5]}, {"value": [10, 5]}]}
  ]
}`

const armsDefinition = `{
  "kind": "load-arms",
  "version": "1",
  "units": {"arm": "inches", "weight": "pounds"},
  "arms": {"pilot": 37, "fuel": 48}
}`

func writeTestFile(t *testing.T, dir, name, content string, compress bool) m.FilePath {
	t.Helper()

	path := m.FilePath(filepath.Join(dir, name))
	require.NoError(t, writeFile(path, []byte(content), compress))

	return path
}

func TestLocalDefinitionStore_Load(t *testing.T) {
	t.Run("chase around with relative project", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTestFile(t, dir, "chart.json", chaseDefinition, false)
		writeTestFile(t, dir, "chart.wpd.json", chaseProject, false)

		def, err := NewLocalDefinitionStore().Load(path)
		require.NoError(t, err)

		assert.Equal(t, m.KindChaseAround, def.Kind)
		assert.Equal(t, path, def.Source)
		require.NotNil(t, def.ChaseAround)
		assert.Equal(t, [2]float64{100, 100}, def.ChaseAround.Size)
		assert.Len(t, def.ChaseAround.Steps, 2)
		require.NotNil(t, def.Project)
		assert.Len(t, def.Project.DatasetColl, 2)
		assert.Len(t, def.Digest, 64)
	})

	t.Run("compressed definition", func(t *testing.T) {
		dir := t.TempDir()
		plain := writeTestFile(t, dir, "arms.json", armsDefinition, false)
		packed := writeTestFile(t, dir, "arms.json.zst", armsDefinition, true)

		raw, err := os.ReadFile(string(packed))
		require.NoError(t, err)
		assert.NotEqual(t, armsDefinition, string(raw))

		store := NewLocalDefinitionStore()

		want, err := store.Load(plain)
		require.NoError(t, err)

		got, err := store.Load(packed)
		require.NoError(t, err)

		assert.Equal(t, want.LoadArms, got.LoadArms)
		assert.Equal(t, want.Digest, got.Digest)
		assert.Nil(t, got.Project)
	})

	t.Run("digest covers the project", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTestFile(t, dir, "chart.json", chaseDefinition, false)
		writeTestFile(t, dir, "chart.wpd.json", chaseProject, false)

		before, err := NewLocalDefinitionStore().Load(path)
		require.NoError(t, err)

		writeTestFile(t, dir, "chart.wpd.json", chaseProject+"\n", false)

		after, err := NewLocalDefinitionStore().Load(path)
		require.NoError(t, err)

		assert.NotEqual(t, before.Digest, after.Digest)
	})

	t.Run("missing project", func(t *testing.T) {
		path := writeTestFile(t, t.TempDir(), "chart.json", chaseDefinition, false)

		_, err := NewLocalDefinitionStore().Load(path)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("missing definition", func(t *testing.T) {
		_, err := NewLocalDefinitionStore().Load(m.FilePath(filepath.Join(t.TempDir(), "nope.json")))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "load arms", data: armsDefinition},
		{name: "chase around", data: chaseDefinition},
		{
			name:    "unknown kind",
			data:    `{"kind": "nomogram", "version": "1"}`,
			wantErr: `unsupported definition kind "nomogram"`,
		},
		{
			name:    "wrong version",
			data:    `{"kind": "chase around", "version": "2.0"}`,
			wantErr: `unsupported chase around version "2.0"`,
		},
		{
			name:    "bad step",
			data:    `{"kind": "chase around", "version": "1.0", "steps": [{"until": "speed"}]}`,
			wantErr: "decode chase around definition",
		},
		{
			name:    "not json",
			data:    `kind: chase around`,
			wantErr: "decode definition header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := ParseDefinition([]byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, def.Kind)
		})
	}
}

func TestLocalDefinitionStore_LoadCases(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "cases.yaml", `
- name: heavy
  inputs:
    pilot: 200
    fuel: 240
- inputs:
    pilot: 150
`, false)

	cases, err := NewLocalDefinitionStore().LoadCases(path)
	require.NoError(t, err)

	assert.Equal(t, []m.Case{
		{Name: "heavy", Inputs: map[string]float64{"pilot": 200, "fuel": 240}},
		{Name: "case-2", Inputs: map[string]float64{"pilot": 150}},
	}, cases)

	_, err = NewLocalDefinitionStore().LoadCases(writeTestFile(t, dir, "bad.yaml", "inputs: [", false))
	require.Error(t, err)
}
