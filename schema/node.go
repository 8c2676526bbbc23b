package schema

import "fmt"

type NodeKind int

const (
	AnythingNode NodeKind = iota
	NumberNode
	TextNode
	BoolNode
	NullNode
	ConstNumberNode
	ConstTextNode
	ConstBoolNode
	TupleNode
	ArrayNode
	NamedTupleNode
	TextMapNode
	RefNode
	RefinedNode
	AltNode
)

func (k NodeKind) String() string {
	s, ok := map[NodeKind]string{
		AnythingNode:    "Anything",
		NumberNode:      "Number",
		TextNode:        "Text",
		BoolNode:        "Bool",
		NullNode:        "Null",
		ConstNumberNode: "ConstNumber",
		ConstTextNode:   "ConstText",
		ConstBoolNode:   "ConstBool",
		TupleNode:       "Tuple",
		ArrayNode:       "Array",
		NamedTupleNode:  "NamedTuple",
		TextMapNode:     "TextMap",
		RefNode:         "Ref",
		RefinedNode:     "Refined",
		AltNode:         "Alt",
	}[k]
	if ok {
		return s
	}
	return "<unknown node kind>"
}

// IsPrimitive reports whether k is a leaf kind whose match needs no
// structural recursion. Used to short-circuit structural comparisons.
func (k NodeKind) IsPrimitive() bool {
	switch k {
	case AnythingNode, NumberNode, TextNode, BoolNode, NullNode,
		ConstNumberNode, ConstTextNode, ConstBoolNode:
		return true
	default:
		return false
	}
}

// Strictness says whether a tuple or named tuple rejects or ignores
// trailing extra fields.
type Strictness int

const (
	Strict Strictness = iota
	Tolerant
)

func (s Strictness) String() string {
	if s == Strict {
		return "Strict"
	}
	return "Tolerant"
}

// Node is one constructor of the recursive schema algebra. It is generic
// over the three phase axes: R is the representation of a named reference,
// P of a refinement predicate, C of an alternative's disambiguation
// payload. The recursive slots (Fields, Elem, Left, Right) always hold
// complete trees of the same phase.
//
// Which payload fields are meaningful depends on Kind:
//
//   - ConstNumberNode/ConstTextNode/ConstBoolNode: Num / Text / Bool
//   - TupleNode: Fields, Strictness
//   - ArrayNode: Elem
//   - NamedTupleNode: FieldNames + Fields (parallel, in order), Strictness
//   - TextMapNode: Elem (the value schema)
//   - RefNode: Ref
//   - RefinedNode: Elem (the base schema), Pred
//   - AltNode: Left, Right, Choice
type Node[R, P, C any] struct {
	Kind       NodeKind
	Strictness Strictness

	Num  float64
	Text string
	Bool bool

	FieldNames []string
	Fields     []*Node[R, P, C]
	Elem       *Node[R, P, C]
	Left       *Node[R, P, C]
	Right      *Node[R, P, C]

	Ref    R
	Pred   P
	Choice C
}

// Unit is the erased marker for a phase axis that carries no payload.
type Unit struct{}

// The three phases of the algebra.
//
// Spec is a schema as authored: raw reference names, real predicates, no
// disambiguation attached. Checked is a Spec whose every Alt node carries
// a synthesized ChoiceMaker. Shape is the structural view: references
// resolved or truncated, refinements stripped, disambiguation erased. A
// Shape never contains a RefNode or a RefinedNode; DeriveShape enforces
// that by construction.
type (
	Spec    = Node[string, Predicate, Unit]
	Checked = Node[string, Predicate, ChoiceMaker]
	Shape   = Node[Unit, Unit, Unit]
)

// Env is the universe of named definitions raw references resolve
// against. The core only reads it.
type Env map[string]*Spec

// CheckedEnv is Env after disambiguation checking.
type CheckedEnv map[string]*Checked

func Anything() *Spec { return &Spec{Kind: AnythingNode} }
func Number() *Spec   { return &Spec{Kind: NumberNode} }
func Text() *Spec     { return &Spec{Kind: TextNode} }
func Bool() *Spec     { return &Spec{Kind: BoolNode} }
func Null() *Spec     { return &Spec{Kind: NullNode} }

func ConstNumber(n float64) *Spec {
	return &Spec{Kind: ConstNumberNode, Num: n}
}

func ConstText(s string) *Spec {
	return &Spec{Kind: ConstTextNode, Text: s}
}

func ConstBool(b bool) *Spec {
	return &Spec{Kind: ConstBoolNode, Bool: b}
}

func Tuple(s Strictness, fields ...*Spec) *Spec {
	return &Spec{Kind: TupleNode, Strictness: s, Fields: fields}
}

func Array(elem *Spec) *Spec {
	return &Spec{Kind: ArrayNode, Elem: elem}
}

// Field is one named-tuple member.
type Field struct {
	Name string
	Spec *Spec
}

func NamedTuple(s Strictness, fields ...Field) *Spec {
	res := &Spec{Kind: NamedTupleNode, Strictness: s}
	res.FieldNames = make([]string, len(fields))
	res.Fields = make([]*Spec, len(fields))
	for i := range fields {
		res.FieldNames[i] = fields[i].Name
		res.Fields[i] = fields[i].Spec
	}
	return res
}

func TextMap(val *Spec) *Spec {
	return &Spec{Kind: TextMapNode, Elem: val}
}

func Ref(name string) *Spec {
	return &Spec{Kind: RefNode, Ref: name}
}

func Refined(base *Spec, pred Predicate) *Spec {
	return &Spec{Kind: RefinedNode, Elem: base, Pred: pred}
}

func Alt(left, right *Spec) *Spec {
	return &Spec{Kind: AltNode, Left: left, Right: right}
}

// ShapeEq reports structural equality of two shapes. Primitive kinds
// short-circuit on Kind and constant payload alone.
func ShapeEq(a, b *Shape) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind.IsPrimitive() {
		switch a.Kind {
		case ConstNumberNode:
			return a.Num == b.Num
		case ConstTextNode:
			return a.Text == b.Text
		case ConstBoolNode:
			return a.Bool == b.Bool
		default:
			return true
		}
	}
	switch a.Kind {
	case TupleNode, NamedTupleNode:
		if a.Strictness != b.Strictness || len(a.Fields) != len(b.Fields) {
			return false
		}
		if len(a.FieldNames) != len(b.FieldNames) {
			return false
		}
		for i := range a.FieldNames {
			if a.FieldNames[i] != b.FieldNames[i] {
				return false
			}
		}
		for i := range a.Fields {
			if !ShapeEq(a.Fields[i], b.Fields[i]) {
				return false
			}
		}
		return true
	case ArrayNode, TextMapNode:
		return ShapeEq(a.Elem, b.Elem)
	case AltNode:
		return ShapeEq(a.Left, b.Left) && ShapeEq(a.Right, b.Right)
	default:
		panic(fmt.Sprintf("schema: %s node in shape", a.Kind))
	}
}
