package model

// Kind identifies which calculator a definition describes.
type Kind string

// Supported calculator kinds and the definition versions they accept.
const (
	KindChaseAround  Kind = "chase around"
	KindLoadEnvelope Kind = "load-envelope"
	KindLoadArms     Kind = "load-arms"

	ChaseAroundVersion  = "1.0"
	LoadEnvelopeVersion = "1"
	LoadArmsVersion     = "1"
)

// Header holds the fields every definition file starts with.
type Header struct {
	Kind    Kind   `json:"kind"`
	Version string `json:"version"`
}

// ProjectRef points at the digitizer project holding a chart's datasets.
type ProjectRef struct {
	Src string `json:"src"`
}

// GuideDef declares a guide family by its flow direction.
type GuideDef struct {
	Flow Direction `json:"flow"`
}

// ScaleDef declares a scale family. Variable defaults to the scale name.
type ScaleDef struct {
	Flow     Direction `json:"flow"`
	Unit     string    `json:"unit"`
	Variable string    `json:"variable,omitempty"`
}

// VariableName returns the input/output name bound to the scale.
func (s ScaleDef) VariableName(scaleName string) string {
	if s.Variable == "" {
		return scaleName
	}

	return s.Variable
}

// ChaseAroundDef is a chase-around chart definition.
type ChaseAroundDef struct {
	Header
	Size    [2]float64          `json:"size"`
	Project ProjectRef          `json:"project"`
	Guides  map[string]GuideDef `json:"guides"`
	Scales  map[string]ScaleDef `json:"scales"`
	Steps   []Step              `json:"steps"`
}

// AreaDef classifies a polygon of a load envelope chart.
type AreaDef struct {
	Area         string `json:"area"`
	WithinLimits bool   `json:"withinLimits"`
	Category     string `json:"category"`
}

// LoadEnvelopeDef is a weight and balance envelope chart definition.
type LoadEnvelopeDef struct {
	Header
	Size    [2]float64          `json:"size"`
	Project ProjectRef          `json:"project"`
	Areas   []AreaDef           `json:"areas"`
	Scales  map[string]ScaleDef `json:"scales"`
}

// LoadUnits names the units of a loading table.
type LoadUnits struct {
	Arm    string `json:"arm"`
	Weight string `json:"weight"`
}

// LoadArmsDef is a loading table of station arms.
type LoadArmsDef struct {
	Header
	Units LoadUnits          `json:"units"`
	Arms  map[string]float64 `json:"arms"`
}

// WpdDatum is a single digitized point.
type WpdDatum struct {
	Value Point `json:"value"`
}

// WpdDataset is a named trace of digitized points.
type WpdDataset struct {
	Name string     `json:"name"`
	Data []WpdDatum `json:"data"`
}

// Path returns the dataset's points in digitized order.
func (d WpdDataset) Path() Path {
	path := make(Path, 0, len(d.Data))
	for _, datum := range d.Data {
		path = append(path, datum.Value)
	}

	return path
}

// WpdProject is the subset of a web plot digitizer project the calculators read.
type WpdProject struct {
	Version     []int        `json:"version"`
	DatasetColl []WpdDataset `json:"datasetColl"`
}

// Definition is a loaded calculator definition. Exactly one of ChaseAround,
// LoadEnvelope or LoadArms is set, as selected by Kind.
type Definition struct {
	Kind         Kind
	Source       FilePath
	Digest       string
	ChaseAround  *ChaseAroundDef
	LoadEnvelope *LoadEnvelopeDef
	LoadArms     *LoadArmsDef
	Project      *WpdProject
}
