package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Diff     bool
	Annotate bool
	Parse    bool
	RPC      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Diff = boolEnv("CONFDIFF_DEBUG_DIFF")
	d.Annotate = boolEnv("CONFDIFF_DEBUG_ANNOTATE")
	d.Parse = boolEnv("CONFDIFF_DEBUG_PARSE")
	d.RPC = boolEnv("CONFDIFF_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Diff() bool {
	return d.Diff
}
func Annotate() bool {
	return d.Annotate
}
func Parse() bool {
	return d.Parse
}
func RPC() bool {
	return d.RPC
}
