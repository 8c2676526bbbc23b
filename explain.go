package shapely

import (
	"strings"

	"github.com/shapely-lang/shapely/ir"
	"github.com/shapely-lang/shapely/schema"
)

// Explanation is the structural decomposition of a failure cause: the
// direct reason, the schema node and value node at the failure point, and
// the two independently rendered access paths. Message renderers consume
// it without redoing any path reconstruction.
type Explanation struct {
	Reason Reason
	Spec   *schema.Checked
	Value  *ir.Value

	// SpecPath navigates the schema: (field), [elem], <refined>,
	// <left>/<right>, {ref}.
	SpecPath string

	// DataPath navigates the value: [i] and .key / ["key"]; steps that do
	// not index into the value contribute nothing.
	DataPath string
}

// Explain collects a cause's step tags in outer-to-inner order and
// renders both paths. It never fails: every step kind has a defined
// rendering in both styles.
func Explain(c *Cause) *Explanation {
	var specPath, dataPath strings.Builder
	for _, s := range c.Steps {
		specPath.WriteString(s.SpecPath())
		dataPath.WriteString(s.DataPath())
	}
	return &Explanation{
		Reason:   c.Reason,
		Spec:     c.Spec,
		Value:    c.Value,
		SpecPath: specPath.String(),
		DataPath: dataPath.String(),
	}
}
