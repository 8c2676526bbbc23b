package schema

import (
	"testing"

	"github.com/shapely-lang/shapely/ir"
)

func TestCompilePredicate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		in   *ir.Value
		want bool
	}{
		{"greater than accepts", "value > 3", ir.FromFloat(4), true},
		{"greater than rejects", "value > 3", ir.FromFloat(2), false},
		{"text length", "len(value) == 2", ir.FromText("ab"), true},
		{
			"object field",
			`value.kind == "user"`,
			ir.FromKeyVals([]ir.KeyVal{{Key: "kind", Val: ir.FromText("user")}}),
			true,
		},
		{"runtime error reads false", "value.missing.deeper == 1", ir.Null(), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := CompilePredicate(tc.src)
			if err != nil {
				t.Fatalf("CompilePredicate(%q): %v", tc.src, err)
			}
			if got := p(tc.in); got != tc.want {
				t.Errorf("predicate %q on %s = %v, want %v", tc.src, tc.in, got, tc.want)
			}
		})
	}
}

func TestCompilePredicateBadSource(t *testing.T) {
	if _, err := CompilePredicate("value >"); err == nil {
		t.Errorf("CompilePredicate: no error for malformed source")
	}
}
