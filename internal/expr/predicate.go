// Package expr compiles the boolean conditions used by conditional guide specs.
//
// Conditions are parsed with the HCL native expression syntax and converted
// into a closed tree of numeric and boolean nodes. Only number literals,
// bare variable names, arithmetic, comparisons, logical operators and
// parentheses are accepted; everything else is rejected at parse time.
package expr

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// Errors returned by Parse and Eval.
var (
	ErrSyntax          = errors.New("invalid condition")
	ErrUnboundVariable = errors.New("unbound variable")
)

// Strict equality operators are accepted as aliases of == and !=.
var strictOperators = strings.NewReplacer("!==", "!=", "===", "==")

// HCL identifiers may contain '-', so "weight-1000" would lex as one name.
// A '-' directly after an identifier is rewritten to a spaced minus.
var identifierMinus = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)-`)

var plainIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Predicate is a compiled condition.
type Predicate struct {
	source    string
	root      boolNode
	variables []string
}

// Parse compiles a condition.
func Parse(source string) (*Predicate, error) {
	normalized := identifierMinus.ReplaceAllString(strictOperators.Replace(source), "$1 - ")

	parsed, diags := hclsyntax.ParseExpression([]byte(normalized), "condition", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w %q: %s", ErrSyntax, source, diags.Error())
	}

	root, err := toBool(parsed)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrSyntax, source, err)
	}

	var variables []string
	for _, traversal := range parsed.Variables() {
		variables = append(variables, traversal.RootName())
	}

	slices.Sort(variables)

	return &Predicate{source: source, root: root, variables: slices.Compact(variables)}, nil
}

// Eval evaluates the condition against the given variables.
func (p *Predicate) Eval(vars map[string]float64) (bool, error) {
	ok, err := p.root.truth(vars)
	if err != nil {
		return false, fmt.Errorf("condition %q: %w", p.source, err)
	}

	return ok, nil
}

// Variables returns the names the condition references, sorted.
func (p *Predicate) Variables() []string { return slices.Clone(p.variables) }

func (p *Predicate) String() string { return p.source }

func toBool(e hclsyntax.Expression) (boolNode, error) {
	switch e := e.(type) {
	case *hclsyntax.ParenthesesExpr:
		return toBool(e.Expression)
	case *hclsyntax.LiteralValueExpr:
		if e.Val.IsNull() || !e.Val.Type().Equals(cty.Bool) {
			return nil, fmt.Errorf("expected a boolean, got %s", e.Val.Type().FriendlyName())
		}

		return constant(e.Val.True()), nil
	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpLogicalNot {
			return nil, errors.New("expected a boolean, got a number")
		}

		operand, err := toBool(e.Val)
		if err != nil {
			return nil, err
		}

		return not{operand: operand}, nil
	case *hclsyntax.BinaryOpExpr:
		return binaryBool(e)
	default:
		return nil, fmt.Errorf("unsupported expression %T", e)
	}
}

func binaryBool(e *hclsyntax.BinaryOpExpr) (boolNode, error) {
	switch e.Op {
	case hclsyntax.OpLogicalAnd, hclsyntax.OpLogicalOr:
		lhs, err := toBool(e.LHS)
		if err != nil {
			return nil, err
		}

		rhs, err := toBool(e.RHS)
		if err != nil {
			return nil, err
		}

		return logical{and: e.Op == hclsyntax.OpLogicalAnd, lhs: lhs, rhs: rhs}, nil
	case hclsyntax.OpEqual, hclsyntax.OpNotEqual,
		hclsyntax.OpGreaterThan, hclsyntax.OpGreaterThanOrEqual,
		hclsyntax.OpLessThan, hclsyntax.OpLessThanOrEqual:
		lhs, err := toNumber(e.LHS)
		if err != nil {
			return nil, err
		}

		rhs, err := toNumber(e.RHS)
		if err != nil {
			return nil, err
		}

		return comparison{op: e.Op, lhs: lhs, rhs: rhs}, nil
	default:
		return nil, errors.New("expected a boolean, got a number")
	}
}

func toNumber(e hclsyntax.Expression) (numNode, error) {
	switch e := e.(type) {
	case *hclsyntax.ParenthesesExpr:
		return toNumber(e.Expression)
	case *hclsyntax.LiteralValueExpr:
		if e.Val.IsNull() || !e.Val.Type().Equals(cty.Number) {
			return nil, fmt.Errorf("expected a number, got %s", e.Val.Type().FriendlyName())
		}

		f, _ := e.Val.AsBigFloat().Float64()

		return literal(f), nil
	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) != 1 {
			return nil, fmt.Errorf("unsupported reference to %q attributes", e.Traversal.RootName())
		}

		if !plainIdentifier.MatchString(e.Traversal.RootName()) {
			return nil, fmt.Errorf("invalid variable name %q", e.Traversal.RootName())
		}

		return variable(e.Traversal.RootName()), nil
	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpNegate {
			return nil, errors.New("expected a number, got a boolean")
		}

		operand, err := toNumber(e.Val)
		if err != nil {
			return nil, err
		}

		return negate{operand: operand}, nil
	case *hclsyntax.BinaryOpExpr:
		switch e.Op {
		case hclsyntax.OpAdd, hclsyntax.OpSubtract, hclsyntax.OpMultiply, hclsyntax.OpDivide:
		default:
			return nil, errors.New("expected a number, got a boolean")
		}

		lhs, err := toNumber(e.LHS)
		if err != nil {
			return nil, err
		}

		rhs, err := toNumber(e.RHS)
		if err != nil {
			return nil, err
		}

		return arithmetic{op: e.Op, lhs: lhs, rhs: rhs}, nil
	default:
		return nil, fmt.Errorf("unsupported expression %T", e)
	}
}
