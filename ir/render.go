package ir

import (
	"strconv"
	"strings"
)

// Render returns the canonical literal text of a value. Arrays render as
// [e1, e2, ...], objects as {k1: v1, k2: v2, ...} in pair order, with keys
// bare when they are identifiers and quoted otherwise. Rendering the same
// value twice yields identical text.
func (v *Value) Render() string {
	var sb strings.Builder
	render(v, &sb)
	return sb.String()
}

func (v *Value) String() string {
	return v.Render()
}

func render(v *Value, sb *strings.Builder) {
	switch v.Kind {
	case NullKind:
		sb.WriteString("null")
	case NumberKind:
		sb.WriteString(strconv.FormatFloat(v.Num, 'g', -1, 64))
	case TextKind:
		sb.WriteString(strconv.Quote(v.Text))
	case BoolKind:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case ArrayKind:
		sb.WriteByte('[')
		for i, e := range v.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			render(e, sb)
		}
		sb.WriteByte(']')
	case ObjectKind:
		sb.WriteByte('{')
		for i, k := range v.Keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(RenderKey(k))
			sb.WriteString(": ")
			render(v.Values[i], sb)
		}
		sb.WriteByte('}')
	default:
		panic("ir: render on unknown kind")
	}
}

// RenderKey renders an object key, bare when it is a valid identifier.
func RenderKey(k string) string {
	if IsIdent(k) {
		return k
	}
	return strconv.Quote(k)
}

// IsIdent reports whether s is bare-identifier syntax: a letter or
// underscore followed by letters, digits or underscores.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
