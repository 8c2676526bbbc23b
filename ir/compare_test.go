package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want int
	}{
		// kind ranking: Null < Bool < Number < Text < Array < Object
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromFloat(1), -1},
		{"Number < Text", FromFloat(1), FromText("a"), -1},
		{"Text < Array", FromText("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},
		{"1 < 2", FromFloat(1), FromFloat(2), -1},
		{"a < b", FromText("a"), FromText("b"), -1},
		{"null == null", Null(), Null(), 0},

		{"empty arrays equal", FromSlice(nil), FromSlice(nil), 0},
		{
			"short array < long array",
			FromSlice([]*Value{FromFloat(1)}),
			FromSlice([]*Value{FromFloat(1), FromFloat(2)}),
			-1,
		},
		{
			"array element comparison",
			FromSlice([]*Value{FromFloat(1)}),
			FromSlice([]*Value{FromFloat(2)}),
			-1,
		},
		{
			"object key comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromFloat(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromFloat(1)}}),
			-1,
		},
		{
			"object value comparison",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromFloat(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromFloat(2)}}),
			-1,
		},
		{
			"objects equal",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromFloat(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromFloat(1)}}),
			0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if tc.want != 0 {
				if got := Compare(tc.b, tc.a); got != -tc.want {
					t.Errorf("Compare(%s, %s) = %d, want %d", tc.b, tc.a, got, -tc.want)
				}
			}
		})
	}
}
