package adapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

// DefinitionStore loads calculator definitions and batch case files.
type DefinitionStore interface {
	// Load reads a definition and, for chart kinds, the digitizer project it
	// references. Project paths are resolved relative to the definition.
	Load(path m.FilePath) (m.Definition, error)
	// LoadCases reads a YAML (or JSON) list of named input sets.
	LoadCases(path m.FilePath) ([]m.Case, error)
}

// LocalDefinitionStore reads definitions from the local filesystem.
type LocalDefinitionStore struct{}

// NewLocalDefinitionStore constructs a LocalDefinitionStore.
func NewLocalDefinitionStore() *LocalDefinitionStore {
	return &LocalDefinitionStore{}
}

// Load implements DefinitionStore.
func (s *LocalDefinitionStore) Load(path m.FilePath) (m.Definition, error) {
	data, err := readFile(path)
	if err != nil {
		slog.Error("failed to read definition", "path", path, "error", err)
		return m.Definition{}, fmt.Errorf("read definition: %w", err)
	}

	def, err := ParseDefinition(data)
	if err != nil {
		return m.Definition{}, fmt.Errorf("%s: %w", path, err)
	}

	def.Source = path
	def.Digest = digest(data)

	src := projectSrc(def)
	if src == "" {
		return def, nil
	}

	projectPath := m.FilePath(src)
	if !filepath.IsAbs(src) {
		projectPath = m.FilePath(filepath.Join(filepath.Dir(string(path)), src))
	}

	projectData, err := readFile(projectPath)
	if err != nil {
		slog.Error("failed to read project", "path", projectPath, "error", err)
		return m.Definition{}, fmt.Errorf("read project: %w", err)
	}

	var project m.WpdProject
	if err := json.Unmarshal(projectData, &project); err != nil {
		return m.Definition{}, fmt.Errorf("decode project %s: %w", projectPath, err)
	}

	def.Project = &project
	def.Digest = digest(append(data, projectData...))

	slog.Debug("loaded definition", "path", path, "kind", def.Kind, "project", projectPath, "datasets", len(project.DatasetColl))

	return def, nil
}

func projectSrc(def m.Definition) string {
	switch {
	case def.ChaseAround != nil:
		return def.ChaseAround.Project.Src
	case def.LoadEnvelope != nil:
		return def.LoadEnvelope.Project.Src
	default:
		return ""
	}
}

// ParseDefinition decodes a definition document by its kind and version.
// Referenced projects are not loaded.
func ParseDefinition(data []byte) (m.Definition, error) {
	var header m.Header
	if err := json.Unmarshal(data, &header); err != nil {
		return m.Definition{}, fmt.Errorf("decode definition header: %w", err)
	}

	def := m.Definition{Kind: header.Kind}

	var (
		target  any
		version string
	)

	switch header.Kind {
	case m.KindChaseAround:
		def.ChaseAround = &m.ChaseAroundDef{}
		target, version = def.ChaseAround, m.ChaseAroundVersion
	case m.KindLoadEnvelope:
		def.LoadEnvelope = &m.LoadEnvelopeDef{}
		target, version = def.LoadEnvelope, m.LoadEnvelopeVersion
	case m.KindLoadArms:
		def.LoadArms = &m.LoadArmsDef{}
		target, version = def.LoadArms, m.LoadArmsVersion
	default:
		return m.Definition{}, fmt.Errorf("unsupported definition kind %q", header.Kind)
	}

	if header.Version != version {
		return m.Definition{}, fmt.Errorf("unsupported %s version %q (want %q)", header.Kind, header.Version, version)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return m.Definition{}, fmt.Errorf("decode %s definition: %w", header.Kind, err)
	}

	return def, nil
}

// LoadCases implements DefinitionStore.
func (s *LocalDefinitionStore) LoadCases(path m.FilePath) ([]m.Case, error) {
	data, err := readFile(path)
	if err != nil {
		slog.Error("failed to read cases", "path", path, "error", err)
		return nil, fmt.Errorf("read cases: %w", err)
	}

	var cases []m.Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("decode cases %s: %w", path, err)
	}

	for i := range cases {
		if cases[i].Name == "" {
			cases[i].Name = fmt.Sprintf("case-%d", i+1)
		}
	}

	return cases, nil
}
