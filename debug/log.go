package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSON wraps a value so it renders as indented JSON in a trace line.
type JSON struct{ V any }

func (j JSON) String() string {
	d, err := json.MarshalIndent(j.V, "", "  ")
	if err != nil {
		return fmt.Sprintf("<unjsonable: %v>", err)
	}
	return string(d)
}

func logf(on bool, format string, args ...any) {
	if !on {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func Parsef(format string, args ...any) {
	logf(d.Parse, format, args...)
}
func Importsf(format string, args ...any) {
	logf(d.Imports, format, args...)
}
func Translatef(format string, args ...any) {
	logf(d.Translate, format, args...)
}
func Codegenf(format string, args ...any) {
	logf(d.Codegen, format, args...)
}
