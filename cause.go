package shapely

import (
	"strconv"

	"github.com/shapely-lang/shapely/ir"
	"github.com/shapely-lang/shapely/schema"
)

// Reason is the atomic ground on which a comparison failed.
type Reason int

const (
	TypeMismatch Reason = iota
	ConstMismatch
	LengthMismatch
	ExtraField
	MissingField
	PredicateFailed
	NoAlternative
	UnknownRef
)

func (r Reason) String() string {
	s, ok := map[Reason]string{
		TypeMismatch:    "type-mismatch",
		ConstMismatch:   "const-mismatch",
		LengthMismatch:  "length-mismatch",
		ExtraField:      "extra-field",
		MissingField:    "missing-field",
		PredicateFailed: "predicate-failed",
		NoAlternative:   "no-alternative",
		UnknownRef:      "unknown-ref",
	}[r]
	if ok {
		return s
	}
	return "<unknown reason>"
}

// StepKind tags which kind of child access a traversal step took.
type StepKind int

const (
	TupleFieldStep StepKind = iota
	NamedTupleFieldStep
	ArrayElemStep
	TextMapElemStep
	RefinedShapeStep
	AltLeftStep
	AltRightStep
	RefDefStep
)

// Step is one link in the path from the top-level comparison down to the
// direct cause. Index is meaningful for tuple and array steps, Key for
// named-tuple and map steps and for reference names.
type Step struct {
	Kind  StepKind
	Index int
	Key   string
}

func TupleField(i int) Step {
	return Step{Kind: TupleFieldStep, Index: i}
}

func NamedTupleField(key string) Step {
	return Step{Kind: NamedTupleFieldStep, Key: key}
}

func ArrayElem(i int) Step {
	return Step{Kind: ArrayElemStep, Index: i}
}

func TextMapElem(key string) Step {
	return Step{Kind: TextMapElemStep, Key: key}
}

func RefinedShape() Step {
	return Step{Kind: RefinedShapeStep}
}

func AltLeft() Step {
	return Step{Kind: AltLeftStep}
}

func AltRight() Step {
	return Step{Kind: AltRightStep}
}

func RefDef(name string) Step {
	return Step{Kind: RefDefStep, Key: name}
}

// SpecPath renders the step in schema-navigation syntax. Every step kind
// has a defined rendering.
func (s Step) SpecPath() string {
	switch s.Kind {
	case TupleFieldStep:
		return "(" + strconv.Itoa(s.Index) + ")"
	case NamedTupleFieldStep:
		return "(" + s.Key + ")"
	case ArrayElemStep:
		return "[" + strconv.Itoa(s.Index) + "]"
	case TextMapElemStep:
		return "[" + s.Key + "]"
	case RefinedShapeStep:
		return "<refined>"
	case AltLeftStep:
		return "<left>"
	case AltRightStep:
		return "<right>"
	case RefDefStep:
		return "{" + s.Key + "}"
	default:
		panic("shapely: spec path on unknown step kind")
	}
}

// DataPath renders the step in value-navigation syntax. Step kinds that do
// not index into the value render as the empty string, never undefined.
func (s Step) DataPath() string {
	switch s.Kind {
	case TupleFieldStep:
		return "[" + strconv.Itoa(s.Index) + "]"
	case ArrayElemStep:
		return "[" + strconv.Itoa(s.Index) + "]"
	case NamedTupleFieldStep, TextMapElemStep:
		if ir.IsIdent(s.Key) {
			return "." + s.Key
		}
		return "[" + strconv.Quote(s.Key) + "]"
	case RefinedShapeStep, AltLeftStep, AltRightStep, RefDefStep:
		return ""
	default:
		panic("shapely: data path on unknown step kind")
	}
}

// Cause explains one UnMatched result: the step path from the top-level
// comparison, outer to inner, down to the direct cause — the atomic
// Reason plus the schema node and value node at the failure point.
//
// Causes are built by the matching traversal as it unwinds and are never
// mutated afterwards.
type Cause struct {
	Steps  []Step
	Reason Reason
	Spec   *schema.Checked
	Value  *ir.Value
}

// NewCause builds a direct cause with no steps.
func NewCause(reason Reason, spec *schema.Checked, value *ir.Value) *Cause {
	return &Cause{Reason: reason, Spec: spec, Value: value}
}

// Under records that the failure was found one traversal step below s,
// returning the extended cause. The matcher calls it as it unwinds, so
// steps end up in outer-to-inner order.
func (c *Cause) Under(s Step) *Cause {
	res := &Cause{
		Steps:  make([]Step, 0, len(c.Steps)+1),
		Reason: c.Reason,
		Spec:   c.Spec,
		Value:  c.Value,
	}
	res.Steps = append(append(res.Steps, s), c.Steps...)
	return res
}
