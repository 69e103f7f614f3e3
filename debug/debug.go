// Package debug gates diagnostic logging behind environment variables so a
// misbehaving save can be traced without changing any command line.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan    bool
	Extract bool
	Write   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("MMSAVEFIX_DEBUG_SCAN")
	d.Extract = boolEnv("MMSAVEFIX_DEBUG_EXTRACT")
	d.Write = boolEnv("MMSAVEFIX_DEBUG_WRITE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Extract() bool {
	return d.Extract
}
func Write() bool {
	return d.Write
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
