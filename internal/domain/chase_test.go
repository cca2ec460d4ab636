package domain

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"perfchart.dev/pkg/perfchart/internal/chart"
	m "perfchart.dev/pkg/perfchart/internal/model"
	"perfchart.dev/pkg/perfchart/internal/project"
)

func newCruise(t *testing.T) *ChaseAround {
	t.Helper()

	def, wpd := cruiseChart(t)

	c, err := NewChaseAround(def, wpd)
	require.NoError(t, err)

	return c
}

func TestNewChaseAround_DeclaresVariables(t *testing.T) {
	c := newCruise(t)

	assert.Equal(t, m.KindChaseAround, c.Kind())

	inputs := c.Inputs()
	require.Len(t, inputs, 3)
	assert.Equal(t, "feet", inputs["altitude"].Unit)
	assert.Equal(t, [2]float64{0, 10000}, *inputs["altitude"].Range)
	assert.Equal(t, [2]float64{-20, 20}, *inputs["temperature"].Range)
	assert.Equal(t, [2]float64{0, 20}, *inputs["windComponent"].Range)

	outputs := c.Outputs()
	require.Len(t, outputs, 1)
	assert.Equal(t, "knots", outputs["trueAirspeed"].Unit)
	assert.Equal(t, [2]float64{100, 200}, *outputs["trueAirspeed"].Range)
}

func TestChaseAround_Calculate(t *testing.T) {
	c := newCruise(t)

	tests := []struct {
		name         string
		inputs       map[string]float64
		wantSpeed    float64
		wantSolution []m.Path
		wantScales   []m.Path
	}{
		{
			name:      "warm day takes the altitude scale",
			inputs:    map[string]float64{"altitude": 5000, "temperature": 0, "windComponent": 10},
			wantSpeed: 125,
			wantSolution: []m.Path{
				{{0, 60}, {20, 60}},
				{{20, 60}, {50, 60}},
				{{50, 60}, {60, 70}},
				{{60, 70}, {100, 70}},
				{{90, 70}, {100, 70}},
			},
			wantScales: []m.Path{
				{{20, 100}, {20, 60}},
				{{50, 100}, {50, 60}},
				{{60, 100}, {60, 70}},
			},
		},
		{
			name:      "cold day takes the cold altitude scale",
			inputs:    map[string]float64{"altitude": 5000, "temperature": -10, "windComponent": 10},
			wantSpeed: 100,
			wantSolution: []m.Path{
				{{0, 70}, {15, 70}},
				{{15, 70}, {50, 70}},
				{{50, 70}, {60, 80}},
				{{60, 80}, {100, 80}},
				{{90, 80}, {100, 80}},
			},
			wantScales: []m.Path{
				{{15, 100}, {15, 70}},
				{{50, 100}, {50, 70}},
				{{60, 100}, {60, 80}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := c.Calculate(tt.inputs)
			require.NoError(t, err)

			assert.Equal(t, tt.inputs, calc.Inputs)
			require.Len(t, calc.Outputs, 1)
			assert.InDelta(t, tt.wantSpeed, calc.Outputs["trueAirspeed"], 1e-6)
			assertPaths(t, tt.wantSolution, calc.Solution)
			assertPaths(t, tt.wantScales, calc.Scales)
			assert.Nil(t, calc.Envelope)
		})
	}
}

func TestChaseAround_Calculate_EchoesExtraInputs(t *testing.T) {
	c := newCruise(t)

	inputs := map[string]float64{"altitude": 5000, "temperature": 0, "windComponent": 10, "flaps": 10}

	calc, err := c.Calculate(inputs)
	require.NoError(t, err)

	assert.Equal(t, 10.0, calc.Inputs["flaps"])
	assert.NotContains(t, calc.Outputs, "flaps")

	// the caller's map is not aliased
	calc.Inputs["altitude"] = 0
	assert.Equal(t, 5000.0, inputs["altitude"])
}

func TestChaseAround_Calculate_MissingInputs(t *testing.T) {
	c := newCruise(t)

	_, err := c.Calculate(map[string]float64{"altitude": 5000})

	require.ErrorIs(t, err, ErrInputMismatch)
	assert.Contains(t, err.Error(), "temperature, windComponent")
}

func TestChaseAround_Calculate_NoCrossing(t *testing.T) {
	c := newCruise(t)

	// the wind line ends at x=80, short of the extrapolated 40 kt reading at x=90
	_, err := c.Calculate(map[string]float64{"altitude": 5000, "temperature": 0, "windComponent": 40})

	require.ErrorIs(t, err, chart.ErrNoIntersection)
	assert.Contains(t, err.Error(), "step 3")
}

func TestChaseAround_Calculate_Concurrent(t *testing.T) {
	c := newCruise(t)

	want, err := c.Calculate(map[string]float64{"altitude": 5000, "temperature": 0, "windComponent": 10})
	require.NoError(t, err)

	var wg sync.WaitGroup

	results := make([]float64, 16)
	errs := make([]error, 16)

	for i := range results {
		wg.Add(1)

		go func() {
			defer wg.Done()

			calc, err := c.Calculate(map[string]float64{"altitude": 5000, "temperature": 0, "windComponent": 10})
			if err != nil {
				errs[i] = err
				return
			}

			results[i] = calc.Outputs["trueAirspeed"]
		}()
	}

	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.InDelta(t, want.Outputs["trueAirspeed"], results[i], 1e-9)
	}
}

func TestChaseAround_AmbiguousCondition(t *testing.T) {
	tests := []struct {
		name       string
		conditions []m.Condition
	}{
		{
			name: "two conditions hold",
			conditions: []m.Condition{
				{Predicate: "temperature > -100", Guide: "altitude"},
				{Predicate: "temperature < 0", Guide: "altitudeCold"},
			},
		},
		{
			name: "no condition holds",
			conditions: []m.Condition{
				{Predicate: "temperature > 100", Guide: "altitude"},
				{Predicate: "temperature < -100", Guide: "altitudeCold"},
			},
		},
		{
			name: "condition over an unknown variable",
			conditions: []m.Condition{
				{Predicate: "humidity > 0", Guide: "altitude"},
				{Predicate: "temperature > 100", Guide: "altitudeCold"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, wpd := cruiseChart(t)
			def.Steps[0].Chase = &m.GuideSpec{Conditions: tt.conditions}

			c, err := NewChaseAround(def, wpd)
			require.NoError(t, err)

			_, err = c.Calculate(map[string]float64{"altitude": 5000, "temperature": -10, "windComponent": 10})
			require.ErrorIs(t, err, ErrAmbiguousCondition)
		})
	}
}

func TestChaseAround_SolveWithoutPosition(t *testing.T) {
	def, wpd := cruiseChart(t)
	def.Steps = []m.Step{{Solve: "speed"}}

	c, err := NewChaseAround(def, wpd)
	require.NoError(t, err)

	_, err = c.Calculate(map[string]float64{"altitude": 5000, "temperature": 0, "windComponent": 10})
	require.ErrorIs(t, err, ErrNoPosition)
}

func TestChaseAround_ChaseWithoutAdvance(t *testing.T) {
	def, wpd := cruiseChart(t)
	stay := false
	def.Steps = []m.Step{
		def.Steps[0],
		{Chase: &m.GuideSpec{Name: "right"}, Until: "reference", Advance: &stay},
		{Chase: &m.GuideSpec{Name: "right"}},
		{Solve: "speed"},
	}

	c, err := NewChaseAround(def, wpd)
	require.NoError(t, err)

	calc, err := c.Calculate(map[string]float64{"altitude": 5000, "temperature": 0, "windComponent": 10})
	require.NoError(t, err)

	// the second step reads the reference line but stays at (20, 60)
	assertPaths(t, []m.Path{
		{{0, 60}, {20, 60}},
		{{20, 60}, {100, 60}},
		{{90, 60}, {100, 60}},
	}, calc.Solution)
	assertPaths(t, []m.Path{{{20, 100}, {20, 60}}, {{50, 100}, {50, 60}}}, calc.Scales)
	assert.InDelta(t, 150, calc.Outputs["trueAirspeed"], 1e-6)
}

func TestNewChaseAround_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(def *m.ChaseAroundDef)
		wantErr error
	}{
		{
			name:    "non-positive size",
			mutate:  func(def *m.ChaseAroundDef) { def.Size = [2]float64{0, 100} },
			wantErr: ErrInvalidChart,
		},
		{
			name:    "guide named after a direction",
			mutate:  func(def *m.ChaseAroundDef) { def.Guides["left"] = m.GuideDef{Flow: m.Left} },
			wantErr: ErrReservedName,
		},
		{
			name: "scale named after a direction",
			mutate: func(def *m.ChaseAroundDef) {
				def.Scales["up"] = m.ScaleDef{Flow: m.Up}
			},
			wantErr: ErrReservedName,
		},
		{
			name: "name is both a guide and a scale",
			mutate: func(def *m.ChaseAroundDef) {
				def.Scales["reference"] = m.ScaleDef{Flow: m.Up}
			},
			wantErr: ErrInvalidChart,
		},
		{
			name:    "missing dataset",
			mutate:  func(def *m.ChaseAroundDef) { def.Guides["flaps"] = m.GuideDef{Flow: m.Up} },
			wantErr: project.ErrDatasetNotFound,
		},
		{
			name: "step chases an unknown guide",
			mutate: func(def *m.ChaseAroundDef) {
				def.Steps[1].Chase = &m.GuideSpec{Name: "flaps"}
			},
			wantErr: ErrUnknownGuide,
		},
		{
			name:    "step chases until an unknown guide",
			mutate:  func(def *m.ChaseAroundDef) { def.Steps[1].Until = "flaps" },
			wantErr: ErrUnknownGuide,
		},
		{
			name:    "step solves an unknown scale",
			mutate:  func(def *m.ChaseAroundDef) { def.Steps[4].Solve = "flaps" },
			wantErr: ErrUnknownGuide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, wpd := cruiseChart(t)
			tt.mutate(&def)

			_, err := NewChaseAround(def, wpd)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewChaseAround_SolveByVariable(t *testing.T) {
	def, wpd := cruiseChart(t)
	def.Steps[4].Solve = "trueAirspeed"

	c, err := NewChaseAround(def, wpd)
	require.NoError(t, err)

	assert.Contains(t, c.Outputs(), "trueAirspeed")
}

func TestBoundaryGuide(t *testing.T) {
	size := [2]float64{100, 50}

	for _, direction := range m.Directions {
		t.Run(string(direction), func(t *testing.T) {
			guide, err := boundaryGuide(direction, size)
			require.NoError(t, err)

			contour, err := guide.Through(m.Point{30, 20})
			require.NoError(t, err)

			assert.True(t, contour.Contains(m.Point{30, 20}), fmt.Sprintf("%v", contour.Path()))
			assert.Equal(t, direction, contour.Direction())
		})
	}
}

func TestChaseAround_OutputMismatch(t *testing.T) {
	def, wpd := cruiseChart(t)

	c, err := NewChaseAround(def, wpd)
	require.NoError(t, err)

	c.outputs["landingDistance"] = m.Variable{Unit: "feet"}

	_, err = c.Calculate(map[string]float64{"altitude": 5000, "temperature": 0, "windComponent": 10})
	require.ErrorIs(t, err, ErrOutputMismatch)
	assert.Contains(t, err.Error(), "landingDistance")
}

func TestChaseAround_CheckOutputs(t *testing.T) {
	c := &ChaseAround{outputs: map[string]m.Variable{"trueAirspeed": {Unit: "knots"}}}

	require.NoError(t, c.checkOutputs(map[string]float64{"trueAirspeed": 125}))

	err := c.checkOutputs(map[string]float64{"trueAirspeed": 125, "groundSpeed": 110})
	require.ErrorIs(t, err, ErrOutputMismatch)
	assert.Contains(t, err.Error(), "unexpected [groundSpeed]")

	err = c.checkOutputs(map[string]float64{})
	require.ErrorIs(t, err, ErrOutputMismatch)
	assert.Contains(t, err.Error(), "missing [trueAirspeed]")
}
