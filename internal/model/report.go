package model

import "time"

// FilePath is a filesystem location.
type FilePath string

// ReportFormat selects how reports are serialized.
type ReportFormat string

// Supported report formats.
const (
	FormatJSON    ReportFormat = "json"
	FormatYAML    ReportFormat = "yaml"
	FormatMsgpack ReportFormat = "msgpack"
)

// Case is one named set of inputs for a batch run.
type Case struct {
	Name   string             `yaml:"name" json:"name"`
	Inputs map[string]float64 `yaml:"inputs" json:"inputs"`
}

// Report records the outcome of running a calculator against one case.
type Report struct {
	ID          string       `json:"id" yaml:"id" msgpack:"id"`
	Definition  FilePath     `json:"definition" yaml:"definition" msgpack:"definition"`
	Kind        Kind         `json:"kind" yaml:"kind" msgpack:"kind"`
	Case        string       `json:"case,omitempty" yaml:"case,omitempty" msgpack:"case,omitempty"`
	CreatedAt   time.Time    `json:"createdAt" yaml:"createdAt" msgpack:"createdAt"`
	Calculation *Calculation `json:"calculation,omitempty" yaml:"calculation,omitempty" msgpack:"calculation,omitempty"`
	Error       string       `json:"error,omitempty" yaml:"error,omitempty" msgpack:"error,omitempty"`
}

// Failed reports whether the calculation errored.
func (r Report) Failed() bool {
	return r.Error != ""
}
