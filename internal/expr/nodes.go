package expr

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsyntax"
)

type numNode interface {
	number(vars map[string]float64) (float64, error)
}

type boolNode interface {
	truth(vars map[string]float64) (bool, error)
}

type literal float64

func (l literal) number(map[string]float64) (float64, error) { return float64(l), nil }

type variable string

func (v variable) number(vars map[string]float64) (float64, error) {
	value, ok := vars[string(v)]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnboundVariable, string(v))
	}

	return value, nil
}

type negate struct{ operand numNode }

func (n negate) number(vars map[string]float64) (float64, error) {
	v, err := n.operand.number(vars)
	return -v, err
}

type arithmetic struct {
	op       *hclsyntax.Operation
	lhs, rhs numNode
}

func (a arithmetic) number(vars map[string]float64) (float64, error) {
	l, err := a.lhs.number(vars)
	if err != nil {
		return 0, err
	}

	r, err := a.rhs.number(vars)
	if err != nil {
		return 0, err
	}

	switch a.op {
	case hclsyntax.OpAdd:
		return l + r, nil
	case hclsyntax.OpSubtract:
		return l - r, nil
	case hclsyntax.OpMultiply:
		return l * r, nil
	default:
		return l / r, nil
	}
}

type constant bool

func (c constant) truth(map[string]float64) (bool, error) { return bool(c), nil }

type not struct{ operand boolNode }

func (n not) truth(vars map[string]float64) (bool, error) {
	v, err := n.operand.truth(vars)
	return !v, err
}

type logical struct {
	and      bool
	lhs, rhs boolNode
}

func (l logical) truth(vars map[string]float64) (bool, error) {
	left, err := l.lhs.truth(vars)
	if err != nil {
		return false, err
	}

	if left != l.and {
		// false && _ or true || _
		return left, nil
	}

	return l.rhs.truth(vars)
}

type comparison struct {
	op       *hclsyntax.Operation
	lhs, rhs numNode
}

func (c comparison) truth(vars map[string]float64) (bool, error) {
	l, err := c.lhs.number(vars)
	if err != nil {
		return false, err
	}

	r, err := c.rhs.number(vars)
	if err != nil {
		return false, err
	}

	switch c.op {
	case hclsyntax.OpEqual:
		return l == r, nil
	case hclsyntax.OpNotEqual:
		return l != r, nil
	case hclsyntax.OpGreaterThan:
		return l > r, nil
	case hclsyntax.OpGreaterThanOrEqual:
		return l >= r, nil
	case hclsyntax.OpLessThan:
		return l < r, nil
	default:
		return l <= r, nil
	}
}
