package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shapely-lang/shapely/ir"
)

// Render returns the literal text of a schema node, in any phase. It is
// part of the diagnostic surface: explanation messages embed it verbatim.
//
//	number, text, bool, null, any    primitive kinds
//	1, "x", true                     constants
//	[number, text]                   strict tuple ([number, text, *] tolerant)
//	[number*]                        array
//	{a: number}                      strict named tuple ({a: number, *} tolerant)
//	{*: number}                      text map
//	.[name]                          reference
//	!refine(number)                  refinement
//	number | text                    alternative
func (n *Node[R, P, C]) Render() string {
	var sb strings.Builder
	renderNode(n, &sb)
	return sb.String()
}

func (n *Node[R, P, C]) String() string {
	return n.Render()
}

func renderNode[R, P, C any](n *Node[R, P, C], sb *strings.Builder) {
	switch n.Kind {
	case AnythingNode:
		sb.WriteString("any")
	case NumberNode:
		sb.WriteString("number")
	case TextNode:
		sb.WriteString("text")
	case BoolNode:
		sb.WriteString("bool")
	case NullNode:
		sb.WriteString("null")
	case ConstNumberNode:
		sb.WriteString(strconv.FormatFloat(n.Num, 'g', -1, 64))
	case ConstTextNode:
		sb.WriteString(strconv.Quote(n.Text))
	case ConstBoolNode:
		sb.WriteString(strconv.FormatBool(n.Bool))
	case TupleNode:
		sb.WriteByte('[')
		for i, f := range n.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			renderNode(f, sb)
		}
		if n.Strictness == Tolerant {
			if len(n.Fields) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('*')
		}
		sb.WriteByte(']')
	case ArrayNode:
		sb.WriteByte('[')
		renderNode(n.Elem, sb)
		sb.WriteString("*]")
	case NamedTupleNode:
		sb.WriteByte('{')
		for i, f := range n.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(ir.RenderKey(n.FieldNames[i]))
			sb.WriteString(": ")
			renderNode(f, sb)
		}
		if n.Strictness == Tolerant {
			if len(n.Fields) > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('*')
		}
		sb.WriteByte('}')
	case TextMapNode:
		sb.WriteString("{*: ")
		renderNode(n.Elem, sb)
		sb.WriteByte('}')
	case RefNode:
		fmt.Fprintf(sb, ".[%v]", n.Ref)
	case RefinedNode:
		sb.WriteString("!refine(")
		renderNode(n.Elem, sb)
		sb.WriteByte(')')
	case AltNode:
		renderNode(n.Left, sb)
		sb.WriteString(" | ")
		renderNode(n.Right, sb)
	default:
		panic("schema: render on unknown node kind")
	}
}
