package shapely

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/shapely-lang/shapely/schema"
)

// Hint renders a character diff from the failing value to an example
// value conforming to the failing schema node, for appending to an
// explanation. Deletions are what the value has in excess, insertions
// what the schema expects instead. Returns "" when no example can be
// derived (e.g. the node references a name missing from env).
func (e *Explanation) Hint(env schema.CheckedEnv) string {
	shape, err := schema.DeriveCheckedShape(env, e.Spec)
	if err != nil {
		return ""
	}
	want := schema.Example(shape).Render()
	got := e.Value.Render()
	if want == got {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(got, want, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return "for example: " + dmp.DiffPrettyText(diffs)
}
