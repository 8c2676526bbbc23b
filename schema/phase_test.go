package schema

import (
	"testing"

	"github.com/shapely-lang/shapely/ir"
)

// leftSynth prefers the left branch unconditionally.
func leftSynth(left, right *Shape) (ChoiceMaker, error) {
	return func(*ir.Value) Choice { return PreferLeft }, nil
}

func TestCheckWithAttachesMakers(t *testing.T) {
	spec := Tuple(Strict,
		Alt(Number(), Text()),
		Array(Alt(Null(), Bool())),
	)
	checked, err := CheckWith(nil, spec, leftSynth)
	if err != nil {
		t.Fatalf("CheckWith: %v", err)
	}
	var assertMakers func(*Checked)
	assertMakers = func(n *Checked) {
		if n.Kind == AltNode && n.Choice == nil {
			t.Errorf("alternative %s has no choice maker", n)
		}
		FoldChildren(n, struct{}{}, func(a struct{}, c *Checked) struct{} {
			assertMakers(c)
			return a
		})
	}
	assertMakers(checked)
	if got := checked.Fields[0].Choice(ir.FromFloat(1)); got != PreferLeft {
		t.Errorf("choice = %s, want PreferLeft", got)
	}
}

func TestCheckWithSeesBranchShapes(t *testing.T) {
	env := Env{"num": Number()}
	var left, right *Shape
	_, err := CheckWith(env, Alt(Ref("num"), Text()),
		func(l, r *Shape) (ChoiceMaker, error) {
			left, right = l, r
			return func(*ir.Value) Choice { return Neither }, nil
		})
	if err != nil {
		t.Fatalf("CheckWith: %v", err)
	}
	// the synthesizer gets derived shapes, reference-free
	if left == nil || left.Kind != NumberNode {
		t.Errorf("left shape = %v, want number", left)
	}
	if right == nil || right.Kind != TextNode {
		t.Errorf("right shape = %v, want text", right)
	}
}

func TestEraseRoundTrip(t *testing.T) {
	spec := NamedTuple(Tolerant,
		Field{Name: "n", Spec: Alt(Number(), Null())},
		Field{Name: "xs", Spec: Array(Text())},
	)
	checked, err := CheckWith(nil, spec, leftSynth)
	if err != nil {
		t.Fatalf("CheckWith: %v", err)
	}
	erased := Erase(checked)
	if erased.Render() != spec.Render() {
		t.Errorf("Erase(CheckWith(s)) = %s, want %s", erased, spec)
	}
}

func TestCheckEnv(t *testing.T) {
	env := Env{
		"opt-num": Alt(Null(), Number()),
		"rec":     Alt(Null(), Ref("rec")),
	}
	checked, err := CheckEnv(env, leftSynth)
	if err != nil {
		t.Fatalf("CheckEnv: %v", err)
	}
	if len(checked) != 2 {
		t.Fatalf("CheckEnv: %d definitions, want 2", len(checked))
	}
	for name, def := range checked {
		if def.Kind != AltNode || def.Choice == nil {
			t.Errorf("definition %q not checked: %s", name, def)
		}
	}
}
