package model

// Variable describes a calculator input or output. Range is nil when the
// calculator does not bound the variable.
type Variable struct {
	Unit  string      `json:"unit" yaml:"unit" msgpack:"unit"`
	Range *[2]float64 `json:"range,omitempty" yaml:"range,omitempty" msgpack:"range,omitempty"`
}

// EnvelopeSolution locates a loading point within a load envelope.
type EnvelopeSolution struct {
	Position     Point  `json:"position" yaml:"position" msgpack:"position"`
	WithinLimits bool   `json:"withinLimits" yaml:"withinLimits" msgpack:"withinLimits"`
	Category     string `json:"category,omitempty" yaml:"category,omitempty" msgpack:"category,omitempty"`
}

// Calculation is the result of running a calculator once.
type Calculation struct {
	Inputs   map[string]float64 `json:"inputs" yaml:"inputs" msgpack:"inputs"`
	Outputs  map[string]float64 `json:"outputs" yaml:"outputs" msgpack:"outputs"`
	Solution []Path             `json:"solution,omitempty" yaml:"solution,omitempty" msgpack:"solution,omitempty"`
	Scales   []Path             `json:"scales,omitempty" yaml:"scales,omitempty" msgpack:"scales,omitempty"`
	Envelope *EnvelopeSolution  `json:"envelope,omitempty" yaml:"envelope,omitempty" msgpack:"envelope,omitempty"`
}
