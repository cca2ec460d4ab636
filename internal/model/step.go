package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// Condition maps a boolean predicate over the inputs to a guide or scale name.
type Condition struct {
	Predicate string
	Guide     string
}

// GuideSpec selects the curve family a chase step follows. It is either a
// literal guide/scale name, a cardinal direction, or an ordered list of
// conditions of which exactly one must hold at evaluation time.
type GuideSpec struct {
	Name       string
	Conditions []Condition
}

// IsConditional reports whether the spec is a conditional mapping.
func (g GuideSpec) IsConditional() bool {
	return len(g.Conditions) > 0
}

// Names returns every guide name the spec may resolve to.
func (g GuideSpec) Names() []string {
	if !g.IsConditional() {
		return []string{g.Name}
	}

	names := make([]string, 0, len(g.Conditions))
	for _, c := range g.Conditions {
		names = append(names, c.Guide)
	}

	return names
}

func (g GuideSpec) String() string {
	if !g.IsConditional() {
		return g.Name
	}

	parts := make([]string, 0, len(g.Conditions))
	for _, c := range g.Conditions {
		parts = append(parts, fmt.Sprintf("%s: %s", c.Predicate, c.Guide))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// UnmarshalJSON accepts either a string or an object of predicate -> name.
// Object key order is kept.
func (g *GuideSpec) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*g = GuideSpec{Name: name}
		return nil
	}

	om := orderedmap.New()
	if err := json.Unmarshal(data, om); err != nil {
		return fmt.Errorf("guide spec must be a name or a condition object: %w", err)
	}

	conditions := make([]Condition, 0, len(om.Keys()))

	for _, predicate := range om.Keys() {
		value, _ := om.Get(predicate)

		guide, ok := value.(string)
		if !ok {
			return fmt.Errorf("condition %q must map to a guide name, got %T", predicate, value)
		}

		conditions = append(conditions, Condition{Predicate: predicate, Guide: guide})
	}

	if len(conditions) == 0 {
		return errors.New("condition object is empty")
	}

	*g = GuideSpec{Conditions: conditions}

	return nil
}

// MarshalJSON writes the spec back in the same shape it was read from.
func (g GuideSpec) MarshalJSON() ([]byte, error) {
	if !g.IsConditional() {
		return json.Marshal(g.Name)
	}

	om := orderedmap.New()
	for _, c := range g.Conditions {
		om.Set(c.Predicate, c.Guide)
	}

	return json.Marshal(om)
}

// StepKind tells chase steps from solve steps.
type StepKind int

// Step kinds.
const (
	StepChase StepKind = iota
	StepSolve
)

func (k StepKind) String() string {
	if k == StepSolve {
		return "solve"
	}

	return "chase"
}

// Step is one instruction of a chase-around script.
type Step struct {
	Chase   *GuideSpec `json:"chase,omitempty"`
	Until   string     `json:"until,omitempty"`
	Advance *bool      `json:"advance,omitempty"`
	Solve   string     `json:"solve,omitempty"`
}

// Kind reports whether the step chases or solves.
func (s Step) Kind() StepKind {
	if s.Chase == nil {
		return StepSolve
	}

	return StepChase
}

// Advances reports whether a chase step moves the walk position. Defaults to true.
func (s Step) Advances() bool {
	return s.Advance == nil || *s.Advance
}

func (s Step) String() string {
	if s.Kind() == StepSolve {
		return "solve " + s.Solve
	}

	out := "chase " + s.Chase.String()
	if s.Until != "" {
		out += " until " + s.Until
	}

	return out
}

// UnmarshalJSON decodes a step and rejects shapes that are neither a chase nor a solve.
func (s *Step) UnmarshalJSON(data []byte) error {
	type rawStep Step

	var raw rawStep
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	step := Step(raw)

	switch {
	case step.Chase != nil && step.Solve != "":
		return errors.New("step cannot both chase and solve")
	case step.Chase == nil && step.Solve == "":
		return errors.New("step must either chase or solve")
	case step.Chase == nil && (step.Until != "" || step.Advance != nil):
		return errors.New("until and advance only apply to chase steps")
	}

	*s = step

	return nil
}
