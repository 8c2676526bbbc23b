package schema

import (
	"fmt"

	"github.com/shapely-lang/shapely/ir"
)

// exampleMapKey is the placeholder key used in text-map examples.
const exampleMapKey = "key"

// Example synthesizes a deterministic sample value conforming to a shape.
// Alternatives always take the left branch; swapping the branches swaps
// the example. Callers rely on that tie-break, do not change it.
//
// The shape must be well formed: a RefNode or RefinedNode anywhere is an
// upstream invariant violation and panics.
func Example(s *Shape) *ir.Value {
	switch s.Kind {
	case AnythingNode, NullNode:
		return ir.Null()
	case NumberNode:
		return ir.FromFloat(0)
	case ConstNumberNode:
		return ir.FromFloat(s.Num)
	case TextNode:
		return ir.FromText("")
	case ConstTextNode:
		return ir.FromText(s.Text)
	case BoolNode:
		return ir.FromBool(true)
	case ConstBoolNode:
		return ir.FromBool(s.Bool)
	case TupleNode:
		vs := make([]*ir.Value, len(s.Fields))
		for i, f := range s.Fields {
			vs[i] = Example(f)
		}
		return ir.FromSlice(vs)
	case ArrayNode:
		return ir.FromSlice([]*ir.Value{Example(s.Elem)})
	case NamedTupleNode:
		kvs := make([]ir.KeyVal, len(s.Fields))
		for i, f := range s.Fields {
			kvs[i] = ir.KeyVal{Key: s.FieldNames[i], Val: Example(f)}
		}
		return ir.FromKeyVals(kvs)
	case TextMapNode:
		return ir.FromKeyVals([]ir.KeyVal{
			{Key: exampleMapKey, Val: Example(s.Elem)},
		})
	case AltNode:
		return Example(s.Left)
	default:
		panic(fmt.Sprintf("schema: example on %s node", s.Kind))
	}
}
