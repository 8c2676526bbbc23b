package ir

// ToGo converts a value tree to plain Go data (nil, bool, float64, string,
// []any, map[string]any). Object pair order is lost; duplicate keys resolve
// last-write-wins, consistent with Lookup.
func (v *Value) ToGo() any {
	switch v.Kind {
	case NullKind:
		return nil
	case NumberKind:
		return v.Num
	case TextKind:
		return v.Text
	case BoolKind:
		return v.Bool
	case ArrayKind:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = e.ToGo()
		}
		return res
	case ObjectKind:
		res := make(map[string]any, len(v.Keys))
		for i, k := range v.Keys {
			res[k] = v.Values[i].ToGo()
		}
		return res
	default:
		panic("ir: ToGo on unknown kind")
	}
}
