package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/signadot/tony-format/go-jdoc/ir"
)

type debug struct {
	Parse bool
	Path  bool
	GLTF  bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JDOC_DEBUG_PARSE")
	d.Path = boolEnv("JDOC_DEBUG_PATH")
	d.GLTF = boolEnv("JDOC_DEBUG_GLTF")
	d.Patch = boolEnv("JDOC_DEBUG_PATCH")
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
func Path() bool {
	return d.Path
}
func GLTF() bool {
	return d.GLTF
}
func Patch() bool {
	return d.Patch
}

// Logf writes to stderr. Nodes are passed wrapped in Doc so that %s
// formats them as compact JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = sketch(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
