package encode

import (
	"strings"

	"github.com/fatih/color"
)

type Colors struct {
	Group func(string, ...any) string
	Entry func(string, ...any) string
	Type  func(string, ...any) string
	Value func(string, ...any) string
	Meta  func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Group: escaped(color.RGB(128, 168, 196).SprintfFunc()),
		Entry: escaped(color.RGB(196, 96, 16).SprintfFunc()),
		Type:  escaped(color.CyanString),
		Value: escaped(color.RGB(128, 216, 236).SprintfFunc()),
		Meta:  escaped(color.BlueString),
	}
}

// escaped guards against '%' in rendered values being treated as verbs.
func escaped(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func noColors() *Colors {
	return &Colors{
		Group: colorDefault,
		Entry: colorDefault,
		Type:  colorDefault,
		Value: colorDefault,
		Meta:  colorDefault,
	}
}
