package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Kind)
	rankB := rank(b.Kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch a.Kind {
	case NumberKind:
		return cmp.Compare(a.Num, b.Num)
	case TextKind:
		return strings.Compare(a.Text, b.Text)
	case BoolKind:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayKind:
		return compareSeqs(a.Values, b.Values)
	case ObjectKind:
		return compareObjects(a, b)
	case NullKind:
		return 0
	}
	return 0
}

// Equal reports structural equality.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// rank orders kinds: Null < Bool < Number < Text < Array < Object.
func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case BoolKind:
		return 1
	case NumberKind:
		return 2
	case TextKind:
		return 3
	case ArrayKind:
		return 4
	case ObjectKind:
		return 5
	}
	return 100
}

func compareSeqs(a, b []*Value) int {
	if d := cmp.Compare(len(a), len(b)); d != 0 {
		return d
	}
	for i := range a {
		if d := Compare(a[i], b[i]); d != 0 {
			return d
		}
	}
	return 0
}

func compareObjects(a, b *Value) int {
	if d := cmp.Compare(len(a.Keys), len(b.Keys)); d != 0 {
		return d
	}
	for i := range a.Keys {
		if d := strings.Compare(a.Keys[i], b.Keys[i]); d != 0 {
			return d
		}
	}
	return compareSeqs(a.Values, b.Values)
}
