package encode

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/settml/go-settml/ir"
	"github.com/settml/go-settml/schema"
)

// Encode writes a textual rendering of doc to w.
func Encode(doc *schema.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{colors: noColors()}
	for _, f := range opts {
		f(es)
	}
	es.w = w

	if err := es.meta(doc); err != nil {
		return err
	}
	return es.nodes(doc.Content, 0)
}

type EncState struct {
	w      io.Writer
	colors *Colors
}

func (es *EncState) meta(doc *schema.Document) error {
	if err := es.printf("%s %s", es.colors.Meta("settings"), doc.Name); err != nil {
		return err
	}
	if doc.Prefix != "" {
		if err := es.printf(" %s=%s", es.colors.Meta("prefix"), doc.Prefix); err != nil {
			return err
		}
	}
	if err := es.printf("\n"); err != nil {
		return err
	}
	for _, inc := range doc.Includes {
		kind := "include"
		if inc.Local {
			kind = "include(local)"
		}
		if err := es.printf("%s %s\n", es.colors.Meta(kind), inc.Path); err != nil {
			return err
		}
	}
	if doc.Backend != nil {
		if err := es.printf("%s %s\n", es.colors.Meta("backend"), doc.Backend.Name); err != nil {
			return err
		}
	}
	for _, k := range slices.Sorted(maps.Keys(doc.Types)) {
		if err := es.printf("%s %s -> %s\n", es.colors.Meta("typemap"), k, doc.Types[k]); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) nodes(node *ir.Node, depth int) error {
	for _, c := range node.Children {
		switch c.Kind {
		case ir.ContentKind:
			// spliced content renders inline
			if err := es.nodes(c, depth); err != nil {
				return err
			}
		case ir.GroupKind:
			if err := es.printf("%s%s:\n", indent(depth), es.colors.Group(c.Key)); err != nil {
				return err
			}
			if err := es.nodes(c, depth+1); err != nil {
				return err
			}
		case ir.EntryKind:
			if err := es.entry(c, depth); err != nil {
				return err
			}
		}
	}
	return nil
}

func (es *EncState) entry(e *ir.Node, depth int) error {
	line := indent(depth) + es.colors.Entry(e.Key)
	if e.Type != "" {
		line += " " + es.colors.Type(e.Type)
	}
	if e.Default != "" {
		val := e.Default
		if e.IsCode {
			val = "{" + val + "}"
		}
		line += " = " + es.colors.Value(val)
	}
	if e.Tr {
		ctx := e.TrCtx
		if ctx == "" {
			ctx = "-"
		}
		line += " " + es.colors.Meta("tr("+ctx+")")
	}
	if err := es.printf("%s\n", line); err != nil {
		return err
	}
	return es.nodes(e, depth+1)
}

func (es *EncState) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(es.w, format, args...)
	return err
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
