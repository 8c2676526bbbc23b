package schema

import (
	"testing"

	"github.com/shapely-lang/shapely/ir"
)

func mustShape(t *testing.T, s *Spec) *Shape {
	t.Helper()
	shape, err := DeriveShape(nil, s)
	if err != nil {
		t.Fatalf("DeriveShape: %v", err)
	}
	return shape
}

func TestExample(t *testing.T) {
	tests := []struct {
		name string
		in   *Spec
		want string
	}{
		{"anything", Anything(), "null"},
		{"null", Null(), "null"},
		{"number", Number(), "0"},
		{"const number", ConstNumber(7), "7"},
		{"text", Text(), `""`},
		{"const text", ConstText("x"), `"x"`},
		{"bool", Bool(), "true"},
		{"const bool", ConstBool(false), "false"},
		{"tuple", Tuple(Strict, Number(), Text()), `[0, ""]`},
		{"array", Array(Bool()), "[true]"},
		{
			"named tuple in field order",
			NamedTuple(Tolerant,
				Field{Name: "z", Spec: Number()},
				Field{Name: "a", Spec: Text()},
			),
			`{z: 0, a: ""}`,
		},
		{"text map", TextMap(Number()), "{key: 0}"},
		{"alternative prefers left", Alt(ConstNumber(1), ConstText("x")), "1"},
		{"swapped alternative", Alt(ConstText("x"), ConstNumber(1)), `"x"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Example(mustShape(t, tc.in))
			if got.Render() != tc.want {
				t.Errorf("Example = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestExampleTupleElements(t *testing.T) {
	got := Example(mustShape(t, Tuple(Strict, Number(), Text())))
	if got.Kind != ir.ArrayKind || len(got.Values) != 2 {
		t.Fatalf("Example = %s, want two-element array", got)
	}
	if got.Values[0].Kind != ir.NumberKind {
		t.Errorf("element 0 = %s, want a number", got.Values[0])
	}
	if got.Values[1].Kind != ir.TextKind {
		t.Errorf("element 1 = %s, want a text", got.Values[1])
	}
}

func TestExamplePanicsOnIllFormedShape(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   *Shape
	}{
		{"ref", &Shape{Kind: RefNode}},
		{"refined", &Shape{Kind: RefinedNode, Elem: &Shape{Kind: NumberNode}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Example(%s): no panic", tc.in.Kind)
				}
			}()
			Example(tc.in)
		})
	}
}
