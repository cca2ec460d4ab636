// Package project reads digitizer projects and turns their named datasets into
// chart areas, guides and scales.
package project

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"

	"perfchart.dev/pkg/perfchart/internal/chart"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

// ErrDatasetNotFound is returned when a chart references a dataset family the project lacks.
var ErrDatasetNotFound = errors.New("dataset not found")

var (
	areaPattern  = regexp.MustCompile(`^area:(.+)$`)
	guidePattern = regexp.MustCompile(`^guide:([^=@]+)@(-?\d+(?:\.\d+)?)$`)
	scalePattern = regexp.MustCompile(`^scale:([^=@]+)=(-?\d+(?:\.\d+)?)$`)
)

type trace struct {
	key  float64
	path m.Path
}

// ChartProject indexes the datasets of a digitizer project by family.
type ChartProject struct {
	areas  map[string]m.Path
	guides map[string][]trace
	scales map[string][]trace
}

// New classifies the project's datasets. Names that match no family are skipped.
func New(project m.WpdProject) (*ChartProject, error) {
	p := &ChartProject{
		areas:  map[string]m.Path{},
		guides: map[string][]trace{},
		scales: map[string][]trace{},
	}

	for _, dataset := range project.DatasetColl {
		switch {
		case areaPattern.MatchString(dataset.Name):
			name := areaPattern.FindStringSubmatch(dataset.Name)[1]
			p.areas[name] = dataset.Path()
		case guidePattern.MatchString(dataset.Name):
			match := guidePattern.FindStringSubmatch(dataset.Name)

			order, err := strconv.ParseFloat(match[2], 64)
			if err != nil {
				return nil, fmt.Errorf("dataset %q: %w", dataset.Name, err)
			}

			p.guides[match[1]] = append(p.guides[match[1]], trace{key: order, path: dataset.Path()})
		case scalePattern.MatchString(dataset.Name):
			match := scalePattern.FindStringSubmatch(dataset.Name)

			value, err := strconv.ParseFloat(match[2], 64)
			if err != nil {
				return nil, fmt.Errorf("dataset %q: %w", dataset.Name, err)
			}

			p.scales[match[1]] = append(p.scales[match[1]], trace{key: value, path: dataset.Path()})
		default:
			slog.Debug("skipping unrecognised dataset", "name", dataset.Name)
		}
	}

	for _, family := range []map[string][]trace{p.guides, p.scales} {
		for _, traces := range family {
			slices.SortStableFunc(traces, func(a, b trace) int { return cmp.Compare(a.key, b.key) })
		}
	}

	return p, nil
}

// Area returns the named polygon, ordered around its centroid and closed.
func (p *ChartProject) Area(name string) (m.Path, error) {
	path, ok := p.areas[name]
	if !ok {
		return nil, fmt.Errorf("%w: area %q", ErrDatasetNotFound, name)
	}

	return chart.PolarSort(path), nil
}

// Guide builds the named guide family flowing in direction.
func (p *ChartProject) Guide(name string, direction m.Direction) (*chart.Guide, error) {
	entries, err := entries(p.guides, "guide", name, direction)
	if err != nil {
		return nil, err
	}

	return chart.NewGuide(name, entries, direction)
}

// Scale builds the named scale family flowing in direction.
func (p *ChartProject) Scale(name, variable, unit string, direction m.Direction) (*chart.Scale, error) {
	entries, err := entries(p.scales, "scale", name, direction)
	if err != nil {
		return nil, err
	}

	return chart.NewScale(name, entries, direction, variable, unit)
}

func entries(family map[string][]trace, kind, name string, direction m.Direction) ([]chart.Entry, error) {
	traces, ok := family[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s %q", ErrDatasetNotFound, kind, name)
	}

	out := make([]chart.Entry, 0, len(traces))

	for _, tr := range traces {
		contour, err := chart.NewContour(tr.path, direction)
		if err != nil {
			return nil, fmt.Errorf("%s %q at %v: %w", kind, name, tr.key, err)
		}

		out = append(out, chart.Entry{Value: tr.key, Contour: contour})
	}

	return out, nil
}

// AreaNames lists the area datasets in name order.
func (p *ChartProject) AreaNames() []string { return sortedKeys(p.areas) }

// GuideNames lists the guide families in name order.
func (p *ChartProject) GuideNames() []string { return sortedKeys(p.guides) }

// ScaleNames lists the scale families in name order.
func (p *ChartProject) ScaleNames() []string { return sortedKeys(p.scales) }

func sortedKeys[V any](set map[string]V) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
