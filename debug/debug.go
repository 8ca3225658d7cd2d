// Package debug provides env-gated tracing for the settings pipeline.
// Set SETTML_DEBUG_PARSE, SETTML_DEBUG_IMPORTS, SETTML_DEBUG_TRANSLATE
// or SETTML_DEBUG_CODEGEN to a truthy value to enable a stream.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse     bool
	Imports   bool
	Translate bool
	Codegen   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SETTML_DEBUG_PARSE")
	d.Imports = boolEnv("SETTML_DEBUG_IMPORTS")
	d.Translate = boolEnv("SETTML_DEBUG_TRANSLATE")
	d.Codegen = boolEnv("SETTML_DEBUG_CODEGEN")
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
func Imports() bool {
	return d.Imports
}
func Translate() bool {
	return d.Translate
}
func Codegen() bool {
	return d.Codegen
}
