package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Match bool
	Patch bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TBUF_DEBUG_PARSE")
	d.Match = boolEnv("TBUF_DEBUG_MATCH")
	d.Patch = boolEnv("TBUF_DEBUG_PATCH")
	d.Diff = boolEnv("TBUF_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Match() bool {
	return d.Match
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
