package ir

import "fmt"

// Value is one node of a JSON-like document tree. The Kind field selects
// which payload fields are meaningful: Num, Text and Bool for leaves,
// Values for arrays, Keys+Values (parallel, in pair order) for objects.
//
// Object keys are not deduplicated at construction. Lookup operations
// resolve duplicates with last-write-wins, so a pair sequence and the map
// built from it can never disagree.
type Value struct {
	Kind Kind

	Num  float64
	Text string
	Bool bool

	Keys   []string
	Values []*Value
}

func Null() *Value {
	return &Value{Kind: NullKind}
}

func FromFloat(f float64) *Value {
	return &Value{Kind: NumberKind, Num: f}
}

func FromText(s string) *Value {
	return &Value{Kind: TextKind, Text: s}
}

func FromBool(b bool) *Value {
	return &Value{Kind: BoolKind, Bool: b}
}

func FromSlice(vs []*Value) *Value {
	return &Value{Kind: ArrayKind, Values: vs}
}

type KeyVal struct {
	Key string
	Val *Value
}

func FromKeyVals(kvs []KeyVal) *Value {
	res := &Value{
		Kind:   ObjectKind,
		Keys:   make([]string, len(kvs)),
		Values: make([]*Value, len(kvs)),
	}
	for i := range kvs {
		res.Keys[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

func (v *Value) Clone() *Value {
	res := &Value{
		Kind: v.Kind,
		Num:  v.Num,
		Text: v.Text,
		Bool: v.Bool,
	}
	if v.Keys != nil {
		res.Keys = make([]string, len(v.Keys))
		copy(res.Keys, v.Keys)
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			res.Values[i] = vv.Clone()
		}
	}
	return res
}

// Extend concatenates o's pair sequence onto v's, returning a new object.
// Both arguments must be objects.
func (v *Value) Extend(o *Value) *Value {
	v.mustObject("Extend")
	o.mustObject("Extend")
	res := &Value{
		Kind:   ObjectKind,
		Keys:   make([]string, 0, len(v.Keys)+len(o.Keys)),
		Values: make([]*Value, 0, len(v.Values)+len(o.Values)),
	}
	res.Keys = append(append(res.Keys, v.Keys...), o.Keys...)
	res.Values = append(append(res.Values, v.Values...), o.Values...)
	return res
}

// Lookup resolves key in an object, distinguishing an absent key from a
// key bound to null. Duplicate keys resolve to the last binding.
func (v *Value) Lookup(key string) (*Value, bool) {
	v.mustObject("Lookup")
	for i := len(v.Keys) - 1; i >= 0; i-- {
		if v.Keys[i] == key {
			return v.Values[i], true
		}
	}
	return nil, false
}

// Get resolves key in an object, returning null when the key is absent.
// Call sites that must distinguish absence from null use Lookup.
func (v *Value) Get(key string) *Value {
	res, ok := v.Lookup(key)
	if !ok {
		return Null()
	}
	return res
}

func (v *Value) mustObject(op string) {
	if v.Kind != ObjectKind {
		panic(fmt.Sprintf("ir: %s on %s value", op, v.Kind))
	}
}
