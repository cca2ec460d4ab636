// Package pkg exposes perfchart calculators to other Go programs.
package pkg

import (
	"encoding/json"
	"fmt"
	"time"

	"perfchart.dev/pkg/perfchart/internal/adapter"
	"perfchart.dev/pkg/perfchart/internal/domain"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

// Calculator turns named inputs into a calculation. It is safe for concurrent use.
type Calculator = domain.Calculator

// Variable describes a calculator input or output.
type Variable = m.Variable

// Calculation is the result of one Calculate call.
type Calculation = m.Calculation

const (
	cacheSize = 32
	cacheTTL  = 30 * time.Minute
)

var (
	store = adapter.NewLocalDefinitionStore()
	cache = domain.NewCalculatorCache(cacheSize, cacheTTL)
)

// Load reads a definition file, plus the digitizer project it references, and
// returns its calculator. Loading an unchanged definition again returns the
// same calculator.
func Load(path string) (Calculator, error) {
	def, err := store.Load(m.FilePath(path))
	if err != nil {
		return nil, err
	}

	return cache.Get(def)
}

// New builds a calculator from in-memory documents. project may be nil for
// kinds that do not reference a digitizer project.
func New(definition, project []byte) (Calculator, error) {
	def, err := adapter.ParseDefinition(definition)
	if err != nil {
		return nil, err
	}

	if project != nil {
		var p m.WpdProject
		if err := json.Unmarshal(project, &p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}

		def.Project = &p
	}

	return domain.NewCalculator(def)
}
