package ir

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	NumberKind
	TextKind
	BoolKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		NumberKind: "Number",
		TextKind:   "Text",
		BoolKind:   "Bool",
		ArrayKind:  "Array",
		ObjectKind: "Object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":   NullKind,
		"Number": NumberKind,
		"Text":   TextKind,
		"Bool":   BoolKind,
		"Array":  ArrayKind,
		"Object": ObjectKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		NumberKind,
		TextKind,
		BoolKind,
		ArrayKind,
		ObjectKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ArrayKind, ObjectKind:
		return false
	default:
		return true
	}
}
