package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Link bool
	Walk bool
}

var d *debug

func init() {
	d = &debug{}
	d.Link = boolEnv("ARBOR_DEBUG_LINK")
	d.Walk = boolEnv("ARBOR_DEBUG_WALK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Link() bool {
	return d.Link
}
func Walk() bool {
	return d.Walk
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
