package shapely

import (
	"testing"

	"github.com/shapely-lang/shapely/ir"
	"github.com/shapely-lang/shapely/schema"
)

func TestCombine(t *testing.T) {
	c1 := NewCause(TypeMismatch, &schema.Checked{Kind: schema.NumberNode}, ir.FromText("x"))
	c2 := NewCause(ConstMismatch, &schema.Checked{Kind: schema.ConstNumberNode, Num: 1}, ir.FromFloat(2))

	tests := []struct {
		name string
		in   []Result
		want *Cause
	}{
		{"empty", nil, nil},
		{"all matched", []Result{Matched(), Matched(), Matched()}, nil},
		{
			"first failure wins",
			[]Result{Matched(), UnMatchedBecause(c1), UnMatchedBecause(c2)},
			c1,
		},
		{
			"later failures discarded",
			[]Result{UnMatchedBecause(c2), UnMatchedBecause(c1)},
			c2,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Combine(tc.in...)
			if tc.want == nil {
				if !got.IsMatch() {
					t.Errorf("Combine = UnMatched(%v), want Matched", got.Cause())
				}
				return
			}
			if got.Cause() != tc.want {
				t.Errorf("Combine cause = %v, want %v", got.Cause(), tc.want)
			}
		})
	}
}

func TestResultEqualIsCoarse(t *testing.T) {
	c1 := NewCause(TypeMismatch, &schema.Checked{Kind: schema.NumberNode}, ir.FromText("x"))
	c2 := NewCause(MissingField, &schema.Checked{Kind: schema.NamedTupleNode}, ir.FromKeyVals(nil))
	if !UnMatchedBecause(c1).Equal(UnMatchedBecause(c2)) {
		t.Errorf("UnMatched results with different causes compare unequal")
	}
	if Matched().Equal(UnMatchedBecause(c1)) {
		t.Errorf("Matched equals UnMatched")
	}
	if !Matched().Equal(Matched()) {
		t.Errorf("Matched not equal to itself")
	}
}
