package schema

import (
	"fmt"

	"github.com/shapely-lang/shapely/debug"
)

// Erase drops the synthesized choice makers from a checked spec, giving
// back the raw spec the checking layer started from.
func Erase(c *Checked) *Spec {
	return MapNode(c,
		func(r string) string { return r },
		func(p Predicate) Predicate { return p },
		func(ChoiceMaker) Unit { return Unit{} },
		Erase)
}

// ChoiceSynth synthesizes a decision function for one Alt node from the
// derived shapes of its branches. The disambiguation algorithm itself
// lives outside this package; CheckWith only gives it the shapes to look
// at and a slot to fill.
type ChoiceSynth func(left, right *Shape) (ChoiceMaker, error)

// CheckWith rebuilds a raw spec as a checked spec, attaching a decision
// function to every Alt node. Branch shapes are derived against env, so
// the synthesizer sees reference-free, predicate-free structure.
func CheckWith(env Env, s *Spec, synth ChoiceSynth) (*Checked, error) {
	var check func(*Spec) (*Checked, error)
	check = func(n *Spec) (*Checked, error) {
		var cerr error
		res := MapNode(n,
			func(r string) string { return r },
			func(p Predicate) Predicate { return p },
			func(Unit) ChoiceMaker { return nil },
			func(child *Spec) *Checked {
				c, err := check(child)
				if err != nil && cerr == nil {
					cerr = err
				}
				return c
			})
		if cerr != nil {
			return nil, cerr
		}
		if n.Kind != AltNode {
			return res, nil
		}
		left, err := DeriveShape(env, n.Left)
		if err != nil {
			return nil, err
		}
		right, err := DeriveShape(env, n.Right)
		if err != nil {
			return nil, err
		}
		if debug.Check() {
			debug.Logf("check: synthesizing choice for %s | %s\n",
				n.Left.Render(), n.Right.Render())
		}
		maker, err := synth(left, right)
		if err != nil {
			return nil, fmt.Errorf("synthesize choice: %w", err)
		}
		res.Choice = maker
		return res, nil
	}
	return check(s)
}

// CheckEnv checks every definition of an environment with the same
// synthesizer.
func CheckEnv(env Env, synth ChoiceSynth) (CheckedEnv, error) {
	res := make(CheckedEnv, len(env))
	for name, def := range env {
		checked, err := CheckWith(env, def, synth)
		if err != nil {
			return nil, fmt.Errorf("check %q: %w", name, err)
		}
		res[name] = checked
	}
	return res, nil
}
