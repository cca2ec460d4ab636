package domain

import (
	"errors"
	"fmt"
	"log/slog"

	"perfchart.dev/pkg/perfchart/internal/expr"
	m "perfchart.dev/pkg/perfchart/internal/model"
)

type condition struct {
	predicate *expr.Predicate
	name      string
}

// guideRef is a compiled GuideSpec.
type guideRef struct {
	name       string
	conditions []condition
}

func compileGuideSpec(spec m.GuideSpec) (guideRef, error) {
	if !spec.IsConditional() {
		return guideRef{name: spec.Name}, nil
	}

	ref := guideRef{conditions: make([]condition, 0, len(spec.Conditions))}

	for _, c := range spec.Conditions {
		predicate, err := expr.Parse(c.Predicate)
		if err != nil {
			return guideRef{}, err
		}

		ref.conditions = append(ref.conditions, condition{predicate: predicate, name: c.Guide})
	}

	return ref, nil
}

// choose picks the guide name for the given inputs. A conditional reference
// needs exactly one holding predicate; predicates over variables that were not
// supplied do not hold.
func (r guideRef) choose(inputs map[string]float64) (string, error) {
	if len(r.conditions) == 0 {
		return r.name, nil
	}

	var matched []string

	for _, c := range r.conditions {
		ok, err := c.predicate.Eval(inputs)
		if errors.Is(err, expr.ErrUnboundVariable) {
			slog.Debug("condition references an unknown variable", "condition", c.predicate.String(), "error", err)
			continue
		}

		if err != nil {
			return "", err
		}

		if ok {
			matched = append(matched, c.name)
		}
	}

	if len(matched) != 1 {
		return "", fmt.Errorf("%w: %d of %d conditions hold %v", ErrAmbiguousCondition, len(matched), len(r.conditions), matched)
	}

	return matched[0], nil
}
