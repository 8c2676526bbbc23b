package schema

import (
	"fmt"

	"github.com/shapely-lang/shapely/debug"
)

// DeriveShape reduces a spec to its structural shape: references are
// resolved against env (truncating cycles to Anything), refinements are
// stripped, and alternative disambiguation is erased. The result contains
// no RefNode and no RefinedNode anywhere.
//
// A reference name that is already being expanded resolves to Anything, so
// recursive and mutually recursive definitions terminate; each name is
// visited at most once per derivation path. A name missing from env is an
// error.
func DeriveShape(env Env, s *Spec) (*Shape, error) {
	return derive(env, s, map[string]bool{})
}

// DeriveCheckedShape is DeriveShape over a checked spec.
func DeriveCheckedShape(env CheckedEnv, s *Checked) (*Shape, error) {
	return derive(env, s, map[string]bool{})
}

func derive[P, C any](
	env map[string]*Node[string, P, C],
	n *Node[string, P, C],
	expanding map[string]bool,
) (*Shape, error) {
	switch n.Kind {
	case RefNode:
		if expanding[n.Ref] {
			if debug.Derive() {
				debug.Logf("derive: truncating cycle at %q\n", n.Ref)
			}
			return &Shape{Kind: AnythingNode}, nil
		}
		def, ok := env[n.Ref]
		if !ok {
			return nil, fmt.Errorf("no definition for reference %q", n.Ref)
		}
		expanding[n.Ref] = true
		res, err := derive(env, def, expanding)
		delete(expanding, n.Ref)
		return res, err
	case RefinedNode:
		// refinement is a runtime-only constraint, invisible to shape
		return derive(env, n.Elem, expanding)
	default:
		var derr error
		res := MapNode(n,
			func(string) Unit { return Unit{} },
			func(P) Unit { return Unit{} },
			func(C) Unit { return Unit{} },
			func(child *Node[string, P, C]) *Shape {
				s, err := derive(env, child, expanding)
				if err != nil && derr == nil {
					derr = err
				}
				return s
			})
		if derr != nil {
			return nil, derr
		}
		return res, nil
	}
}

// MatchNull reports whether a null value can satisfy the shape: true for
// Null and Anything, and for an Alt either of whose branches can, checking
// the left branch first. Used to decide whether an optional or nullable
// position is satisfiable.
func MatchNull(s *Shape) bool {
	switch s.Kind {
	case NullNode, AnythingNode:
		return true
	case AltNode:
		return MatchNull(s.Left) || MatchNull(s.Right)
	default:
		return false
	}
}
