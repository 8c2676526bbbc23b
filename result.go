package shapely

// Result is the outcome of comparing a value against a checked spec:
// Matched, or UnMatched wrapping a failure cause.
type Result struct {
	cause *Cause
}

func Matched() Result {
	return Result{}
}

func UnMatchedBecause(c *Cause) Result {
	return Result{cause: c}
}

func (r Result) IsMatch() bool {
	return r.cause == nil
}

// Cause returns the failure cause, nil when matched.
func (r Result) Cause() *Cause {
	return r.cause
}

// Equal is the coarse comparison: same tag, cause contents ignored. Use
// Explain for diagnostics.
func (r Result) Equal(o Result) bool {
	return r.IsMatch() == o.IsMatch()
}

// Combine folds a sequence of sub-match results into one: Matched is the
// identity, and the first UnMatched wins, so callers learn the earliest
// failure of a field sequence without inspecting the rest.
func Combine(rs ...Result) Result {
	for _, r := range rs {
		if !r.IsMatch() {
			return r
		}
	}
	return Matched()
}
