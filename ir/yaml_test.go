package ir

import "testing"

func TestFromYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"scalar", `1`, "1"},
		{"text", `hello`, `"hello"`},
		{"array", "- 1\n- two\n", `[1, "two"]`},
		{
			"object order preserved",
			"z: 1\na: true\n",
			"{z: 1, a: true}",
		},
		{
			"nested",
			"xs:\n  - k: null\n",
			"{xs: [{k: null}]}",
		},
		{"json input", `{"a": [1, 2]}`, "{a: [1, 2]}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromYAML([]byte(tc.in))
			if err != nil {
				t.Fatalf("FromYAML: %v", err)
			}
			if got.Render() != tc.want {
				t.Errorf("FromYAML(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestFromGoUnsupported(t *testing.T) {
	if _, err := FromGo(struct{}{}); err == nil {
		t.Errorf("FromGo(struct{}{}): no error")
	}
}
