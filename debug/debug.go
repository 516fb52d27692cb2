package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Diff   bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SX_DEBUG_PARSE")
	d.Encode = boolEnv("SX_DEBUG_ENCODE")
	d.Diff = boolEnv("SX_DEBUG_DIFF")
	d.LSP = boolEnv("SX_DEBUG_LSP")
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
func Encode() bool {
	return d.Encode
}
func Diff() bool {
	return d.Diff
}
func LSP() bool {
	return d.LSP
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
