package schema

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/shapely-lang/shapely/ir"
)

// Predicate is a decidable refinement: a pure function from a value to a
// boolean. The algebra never inspects predicates beyond invoking them.
type Predicate func(*ir.Value) bool

// Choice is a disambiguation outcome for an Alt node.
type Choice int

const (
	PreferLeft Choice = iota
	PreferRight
	Neither
)

func (c Choice) String() string {
	switch c {
	case PreferLeft:
		return "PreferLeft"
	case PreferRight:
		return "PreferRight"
	case Neither:
		return "Neither"
	}
	return "<unknown choice>"
}

// ChoiceMaker decides, given a value, whether an Alt's left branch, right
// branch, or neither is intended. Makers are synthesized externally per
// Alt node during schema checking; the core only invokes them.
type ChoiceMaker func(*ir.Value) Choice

// CompilePredicate compiles an expr-lang expression into a Predicate. The
// candidate value is exposed to the expression as `value`, converted to
// plain Go data:
//
//	p, err := schema.CompilePredicate("value > 3")
//
// Runtime errors and non-boolean results read as false.
func CompilePredicate(src string) (Predicate, error) {
	prg, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile predicate %q: %w", src, err)
	}
	return func(v *ir.Value) bool {
		out, err := expr.Run(prg, map[string]any{"value": v.ToGo()})
		if err != nil {
			return false
		}
		b, ok := out.(bool)
		return ok && b
	}, nil
}
