package domain

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/brunoga/deep"
	"perfchart.dev/pkg/perfchart/internal/chart"
	m "perfchart.dev/pkg/perfchart/internal/model"
	"perfchart.dev/pkg/perfchart/internal/project"
)

type chaseStep struct {
	m.Step

	chase guideRef
	solve *chart.Scale
}

// ChaseAround evaluates a chase-around chart: it walks the chart's guides and
// scales step by step, the way a pilot traces a printed performance chart.
type ChaseAround struct {
	size    [2]float64
	guides  map[string]*chart.Guide
	scales  map[string]*chart.Scale
	steps   []chaseStep
	inputs  map[string]m.Variable
	outputs map[string]m.Variable
}

// NewChaseAround builds the evaluator for a chart definition and its digitized project.
func NewChaseAround(def m.ChaseAroundDef, wpd m.WpdProject) (*ChaseAround, error) {
	if def.Size[0] <= 0 || def.Size[1] <= 0 {
		return nil, fmt.Errorf("%w: size %v must be positive", ErrInvalidChart, def.Size)
	}

	proj, err := project.New(wpd)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}

	c := &ChaseAround{
		size:    def.Size,
		guides:  map[string]*chart.Guide{},
		scales:  map[string]*chart.Scale{},
		inputs:  map[string]m.Variable{},
		outputs: map[string]m.Variable{},
	}

	if err := c.loadFamilies(def, proj); err != nil {
		return nil, err
	}

	if err := c.compileSteps(deep.MustCopy(def.Steps)); err != nil {
		return nil, err
	}

	c.declareVariables()

	slog.Debug("built chase around calculator",
		"guides", len(def.Guides), "scales", len(def.Scales), "steps", len(c.steps),
		"inputs", sortedNames(c.inputs), "outputs", sortedNames(c.outputs))

	return c, nil
}

func (c *ChaseAround) loadFamilies(def m.ChaseAroundDef, proj *project.ChartProject) error {
	for _, name := range sortedNames(def.Guides) {
		if m.IsDirection(name) {
			return fmt.Errorf("%w: %q is a boundary direction", ErrReservedName, name)
		}

		guide, err := proj.Guide(name, def.Guides[name].Flow)
		if err != nil {
			return fmt.Errorf("guide %q: %w", name, err)
		}

		c.guides[name] = guide
	}

	for _, name := range sortedNames(def.Scales) {
		if m.IsDirection(name) {
			return fmt.Errorf("%w: %q is a boundary direction", ErrReservedName, name)
		}

		if _, ok := c.guides[name]; ok {
			return fmt.Errorf("%w: %q is declared as both a guide and a scale", ErrInvalidChart, name)
		}

		sd := def.Scales[name]

		scale, err := proj.Scale(name, sd.VariableName(name), sd.Unit, sd.Flow)
		if err != nil {
			return fmt.Errorf("scale %q: %w", name, err)
		}

		c.scales[name] = scale
	}

	for _, direction := range m.Directions {
		guide, err := boundaryGuide(direction, c.size)
		if err != nil {
			return err
		}

		c.guides[string(direction)] = guide
	}

	return nil
}

// boundaryGuide spans the chart in one direction: contour 0 runs along one
// edge and contour 1 along the opposite edge.
func boundaryGuide(direction m.Direction, size [2]float64) (*chart.Guide, error) {
	w, h := size[0], size[1]

	var edges [2]m.Path

	switch direction {
	case m.Down:
		edges = [2]m.Path{{{0, 0}, {0, h}}, {{w, 0}, {w, h}}}
	case m.Left:
		edges = [2]m.Path{{{w, 0}, {0, 0}}, {{w, h}, {0, h}}}
	case m.Right:
		edges = [2]m.Path{{{0, 0}, {w, 0}}, {{0, h}, {w, h}}}
	case m.Up:
		edges = [2]m.Path{{{0, h}, {0, 0}}, {{w, h}, {w, 0}}}
	}

	entries := make([]chart.Entry, 0, len(edges))

	for i, edge := range edges {
		contour, err := chart.NewContour(edge, direction)
		if err != nil {
			return nil, fmt.Errorf("boundary %s: %w", direction, err)
		}

		entries = append(entries, chart.Entry{Value: float64(i), Contour: contour})
	}

	return chart.NewGuide(string(direction), entries, direction)
}

func (c *ChaseAround) compileSteps(steps []m.Step) error {
	c.steps = make([]chaseStep, 0, len(steps))

	for i, step := range steps {
		compiled := chaseStep{Step: step}

		switch step.Kind() {
		case m.StepChase:
			ref, err := compileGuideSpec(*step.Chase)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}

			for _, name := range step.Chase.Names() {
				if !c.known(name) {
					return fmt.Errorf("step %d: %w %q", i+1, ErrUnknownGuide, name)
				}
			}

			if step.Until != "" && !c.known(step.Until) {
				return fmt.Errorf("step %d: %w %q", i+1, ErrUnknownGuide, step.Until)
			}

			compiled.chase = ref
		case m.StepSolve:
			scale := c.solveTarget(step.Solve)
			if scale == nil {
				return fmt.Errorf("step %d: %w: no scale %q to solve", i+1, ErrUnknownGuide, step.Solve)
			}

			compiled.solve = scale
		}

		c.steps = append(c.steps, compiled)
	}

	return nil
}

func (c *ChaseAround) known(name string) bool {
	_, guide := c.guides[name]
	_, scale := c.scales[name]

	return guide || scale
}

// solveTarget finds a scale by name, falling back to the scale reading the named variable.
func (c *ChaseAround) solveTarget(name string) *chart.Scale {
	if scale, ok := c.scales[name]; ok {
		return scale
	}

	for _, scaleName := range sortedNames(c.scales) {
		if c.scales[scaleName].Variable() == name {
			return c.scales[scaleName]
		}
	}

	return nil
}

// declareVariables splits scale variables into outputs (read by a solve step)
// and inputs (everything else). Scales sharing a variable merge their ranges.
func (c *ChaseAround) declareVariables() {
	for _, step := range c.steps {
		if step.solve != nil {
			c.outputs[step.solve.Variable()] = variableOf(step.solve, c.outputs)
		}
	}

	for _, name := range sortedNames(c.scales) {
		scale := c.scales[name]
		if _, solved := c.outputs[scale.Variable()]; solved {
			continue
		}

		c.inputs[scale.Variable()] = variableOf(scale, c.inputs)
	}
}

func variableOf(scale *chart.Scale, declared map[string]m.Variable) m.Variable {
	r := scale.Range()

	existing, ok := declared[scale.Variable()]
	if !ok {
		return m.Variable{Unit: scale.Unit(), Range: &r}
	}

	if existing.Unit != scale.Unit() {
		slog.Warn("scales disagree on unit", "variable", scale.Variable(), "unit", existing.Unit, "ignored", scale.Unit())
	}

	merged := [2]float64{min(existing.Range[0], r[0]), max(existing.Range[1], r[1])}

	return m.Variable{Unit: existing.Unit, Range: &merged}
}

// Kind implements Calculator.
func (c *ChaseAround) Kind() m.Kind { return m.KindChaseAround }

// Inputs implements Calculator.
func (c *ChaseAround) Inputs() map[string]m.Variable { return deep.MustCopy(c.inputs) }

// Outputs implements Calculator.
func (c *ChaseAround) Outputs() map[string]m.Variable { return deep.MustCopy(c.outputs) }

// Calculate runs the script for one set of inputs. Extra inputs are ignored
// and echoed back.
func (c *ChaseAround) Calculate(inputs map[string]float64) (*m.Calculation, error) {
	if missing := missingInputs(c.inputs, inputs); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrInputMismatch, strings.Join(missing, ", "))
	}

	echoed := deep.MustCopy(inputs)
	walk := newWalk(echoed)

	for i, step := range c.steps {
		next, err := c.apply(walk, step)
		if err != nil {
			slog.Debug("chase around step failed", "step", i+1, "instruction", step.String(), "error", err)
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.String(), err)
		}

		walk = next
	}

	if err := c.checkOutputs(walk.outputs); err != nil {
		return nil, err
	}

	return &m.Calculation{
		Inputs:   echoed,
		Outputs:  walk.outputs,
		Solution: paths(walk.solution),
		Scales:   paths(walk.scales),
	}, nil
}

func (c *ChaseAround) apply(walk walkContext, step chaseStep) (walkContext, error) {
	if step.solve != nil {
		return c.solve(walk, step.solve)
	}

	return c.chase(walk, step)
}

func (c *ChaseAround) chase(walk walkContext, step chaseStep) (walkContext, error) {
	name, err := step.chase.choose(walk.inputs)
	if err != nil {
		return walk, err
	}

	along, err := c.resolve(name, walk)
	if err != nil {
		return walk, err
	}

	if walk.position != nil {
		if _, along, err = along.Split(*walk.position); err != nil {
			return walk, fmt.Errorf("anchor %q at %v: %w", name, *walk.position, err)
		}
	}

	if step.Until != "" {
		limit, err := c.resolve(step.Until, walk)
		if err != nil {
			return walk, err
		}

		head, _, err := along.SplitBy(limit)
		if err != nil {
			return walk, fmt.Errorf("chase %q until %q: %w", name, step.Until, err)
		}

		reading, _, err := limit.Split(head.End())
		if err != nil {
			return walk, fmt.Errorf("read %q: %w", step.Until, err)
		}

		walk = walk.read(reading)
		along = head
	}

	if step.Advances() {
		walk = walk.traced(along).movedTo(along.End())
	}

	return walk, nil
}

func (c *ChaseAround) solve(walk walkContext, scale *chart.Scale) (walkContext, error) {
	if walk.position == nil {
		return walk, fmt.Errorf("%w: cannot solve %q", ErrNoPosition, scale.Name())
	}

	pos := *walk.position

	contour, err := scale.Through(pos)
	if err != nil {
		return walk, err
	}

	value, err := scale.Value(pos)
	if err != nil {
		return walk, err
	}

	head, _, err := contour.Split(pos)
	if err != nil {
		return walk, fmt.Errorf("solve %q at %v: %w", scale.Name(), pos, err)
	}

	return walk.traced(head).solved(scale.Variable(), value), nil
}

// resolve turns a guide or scale name into a contour. Guides follow the
// current position. Scales bound to an input are read at the input value;
// other scales follow the current position.
func (c *ChaseAround) resolve(name string, walk walkContext) (*chart.Contour, error) {
	if guide, ok := c.guides[name]; ok {
		if walk.position == nil {
			return nil, fmt.Errorf("%w: guide %q has nothing to pass through", ErrNoPosition, name)
		}

		return guide.Through(*walk.position)
	}

	scale, ok := c.scales[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGuide, name)
	}

	if _, isInput := c.inputs[scale.Variable()]; isInput {
		return scale.At(walk.inputs[scale.Variable()])
	}

	if walk.position == nil {
		return nil, fmt.Errorf("%w: scale %q has no input and nothing to pass through", ErrNoPosition, name)
	}

	return scale.Through(*walk.position)
}

func (c *ChaseAround) checkOutputs(outputs map[string]float64) error {
	var missing, extra []string

	for name := range c.outputs {
		if _, ok := outputs[name]; !ok {
			missing = append(missing, name)
		}
	}

	for name := range outputs {
		if _, ok := c.outputs[name]; !ok {
			extra = append(extra, name)
		}
	}

	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}

	slices.Sort(missing)
	slices.Sort(extra)

	return fmt.Errorf("%w: missing %v, unexpected %v", ErrOutputMismatch, missing, extra)
}
