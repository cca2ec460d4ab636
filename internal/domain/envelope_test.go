package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"perfchart.dev/pkg/perfchart/internal/chart"
	m "perfchart.dev/pkg/perfchart/internal/model"
	"perfchart.dev/pkg/perfchart/internal/project"
)

func envelopeChart(t *testing.T) (m.LoadEnvelopeDef, m.WpdProject) {
	t.Helper()

	return readFixture[m.LoadEnvelopeDef](t, "envelope.json"), readFixture[m.WpdProject](t, "envelope.wpd.json")
}

func TestLoadEnvelope_Calculate(t *testing.T) {
	def, wpd := envelopeChart(t)

	e, err := NewLoadEnvelope(def, wpd)
	require.NoError(t, err)

	assert.Equal(t, m.KindLoadEnvelope, e.Kind())
	assert.Empty(t, e.Outputs())
	require.Len(t, e.Inputs(), 2)
	assert.Equal(t, "inches", e.Inputs()["centerOfGravity"].Unit)
	assert.Equal(t, [2]float64{1000, 2000}, *e.Inputs()["weight"].Range)

	tests := []struct {
		name       string
		cg         float64
		want       m.EnvelopeSolution
		wantScales []m.Path
	}{
		{
			name:       "inside the normal category",
			cg:         35,
			want:       m.EnvelopeSolution{Position: m.Point{50, 50}, WithinLimits: true, Category: "normal"},
			wantScales: []m.Path{{{50, 100}, {50, 50}}, {{0, 50}, {50, 50}}},
		},
		{
			name:       "inside the utility category",
			cg:         31,
			want:       m.EnvelopeSolution{Position: m.Point{18, 50}, WithinLimits: true, Category: "utility"},
			wantScales: []m.Path{{{18, 100}, {18, 50}}, {{0, 50}, {18, 50}}},
		},
		{
			name:       "shared edge goes to the first area",
			cg:         31.25,
			want:       m.EnvelopeSolution{Position: m.Point{20, 50}, WithinLimits: true, Category: "normal"},
			wantScales: []m.Path{{{20, 100}, {20, 50}}, {{0, 50}, {20, 50}}},
		},
		{
			name:       "outside every area",
			cg:         30,
			want:       m.EnvelopeSolution{Position: m.Point{10, 50}},
			wantScales: []m.Path{{{10, 100}, {10, 0}}, {{0, 50}, {100, 50}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := e.Calculate(map[string]float64{"centerOfGravity": tt.cg, "weight": 1500})
			require.NoError(t, err)

			require.NotNil(t, calc.Envelope)
			assert.InDelta(t, tt.want.Position.X(), calc.Envelope.Position.X(), 1e-6)
			assert.InDelta(t, tt.want.Position.Y(), calc.Envelope.Position.Y(), 1e-6)
			assert.Equal(t, tt.want.WithinLimits, calc.Envelope.WithinLimits)
			assert.Equal(t, tt.want.Category, calc.Envelope.Category)
			assertPaths(t, tt.wantScales, calc.Scales)
			assert.Empty(t, calc.Solution)
		})
	}
}

func TestLoadEnvelope_MissingInput(t *testing.T) {
	def, wpd := envelopeChart(t)

	e, err := NewLoadEnvelope(def, wpd)
	require.NoError(t, err)

	_, err = e.Calculate(map[string]float64{"weight": 1500})
	require.ErrorIs(t, err, ErrInputMismatch)
}

func TestNewLoadEnvelope_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(def *m.LoadEnvelopeDef, wpd *m.WpdProject)
		wantErr error
	}{
		{
			name:    "one scale",
			mutate:  func(def *m.LoadEnvelopeDef, _ *m.WpdProject) { delete(def.Scales, "cg") },
			wantErr: ErrInvalidChart,
		},
		{
			name: "parallel scales",
			mutate: func(def *m.LoadEnvelopeDef, wpd *m.WpdProject) {
				delete(def.Scales, "weight")
				def.Scales["arm"] = m.ScaleDef{Flow: m.Down, Unit: "inches"}

				for _, dataset := range wpd.DatasetColl[:2] {
					dataset.Name = "scale:arm" + dataset.Name[len("scale:cg"):]
					wpd.DatasetColl = append(wpd.DatasetColl, dataset)
				}
			},
			wantErr: chart.ErrDirectionMismatch,
		},
		{
			name: "missing area",
			mutate: func(def *m.LoadEnvelopeDef, _ *m.WpdProject) {
				def.Areas = append(def.Areas, m.AreaDef{Area: "acrobatic"})
			},
			wantErr: project.ErrDatasetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, wpd := envelopeChart(t)
			tt.mutate(&def, &wpd)

			_, err := NewLoadEnvelope(def, wpd)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
