package encode

import (
	"bytes"
	"testing"

	"github.com/settml/go-settml/ir"
	"github.com/settml/go-settml/schema"
)

func TestEncode(t *testing.T) {
	size := ir.Entry("size", "size")
	size.Default = "image.Pt(800, 600)"
	size.IsCode = true
	title := ir.Entry("title", "string")
	title.Default = "Hello"
	title.Tr = true
	title.TrCtx = "Main"
	doc := &schema.Document{
		Name:   "AppSettings",
		Prefix: "app",
		Types:  schema.TypeMap{"size": "image.Point", "variant": "any"},
		Includes: []schema.Include{
			{Path: "image"},
			{Local: true, Path: "example.com/app/units"},
		},
		Backend: &schema.Backend{Name: "access.NewMapAccessor"},
		Content: ir.Content(
			ir.Group("ui",
				ir.Content(ir.Entry("theme", "string").WithDefault("dark")),
				size,
			),
			title,
		),
	}

	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf); err != nil {
		t.Fatal(err)
	}
	want := `settings AppSettings prefix=app
include image
include(local) example.com/app/units
backend access.NewMapAccessor
typemap size -> image.Point
typemap variant -> any
ui:
  theme string = dark
  size size = {image.Pt(800, 600)}
title string = Hello tr(Main)
`
	if got := buf.String(); got != want {
		t.Errorf("rendering:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	doc := &schema.Document{Name: "Empty", Types: schema.TypeMap{}, Content: ir.Content()}
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "settings Empty\n" {
		t.Errorf("rendering = %q", got)
	}
}
