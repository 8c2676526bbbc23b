// Package debug provides env-gated trace logging for the shapely core.
// Set SHAPELY_DEBUG_DERIVE, SHAPELY_DEBUG_MATCH or SHAPELY_DEBUG_CHECK
// to a true-ish value to enable the corresponding traces on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Derive bool
	Match  bool
	Check  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Derive = boolEnv("SHAPELY_DEBUG_DERIVE")
	d.Match = boolEnv("SHAPELY_DEBUG_MATCH")
	d.Check = boolEnv("SHAPELY_DEBUG_CHECK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Derive() bool {
	return d.Derive
}
func Match() bool {
	return d.Match
}
func Check() bool {
	return d.Check
}

func Logf(msg string, args ...any) {
	for i := range args {
		if s, ok := args[i].(fmt.Stringer); ok {
			args[i] = s.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
