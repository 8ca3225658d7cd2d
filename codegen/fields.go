package codegen

import (
	"strconv"
	"strings"

	"github.com/settml/go-settml/ir"
	"github.com/settml/go-settml/schema"
)

// generator accumulates the struct body and the constructor body in one
// walk each over the resolved tree. Content nodes are transparent in
// both walks, so spliced imports emit exactly like inlined content.
type generator struct {
	types     schema.TypeMap
	structBuf strings.Builder
	initBuf   strings.Builder
}

func (g *generator) structBody(node *ir.Node, depth int) {
	for _, c := range node.Children {
		switch c.Kind {
		case ir.ContentKind:
			g.structBody(c, depth)
		case ir.GroupKind:
			g.line(depth, exportName(c.Key)+" struct {")
			g.structBody(c, depth+1)
			g.line(depth, "}")
		case ir.EntryKind:
			typ := g.goType(c)
			if len(c.Children) == 0 {
				g.line(depth, exportName(c.Key)+" access.Entry["+typ+"]")
				continue
			}
			g.line(depth, exportName(c.Key)+" struct {")
			g.line(depth+1, "access.Entry["+typ+"]")
			g.structBody(c, depth+1)
			g.line(depth, "}")
		}
	}
}

func (g *generator) initBody(node *ir.Node, selector, path string) {
	for _, c := range node.Children {
		switch c.Kind {
		case ir.ContentKind:
			g.initBody(c, selector, path)
		case ir.GroupKind:
			g.initBody(c, selector+"."+exportName(c.Key), keyJoin(path, c.Key))
		case ir.EntryKind:
			sel := selector + "." + exportName(c.Key)
			key := keyJoin(path, c.Key)
			target := sel
			if len(c.Children) > 0 {
				target = sel + ".Entry"
			}
			g.initBuf.WriteString("\t" + target + " = " + g.entryExpr(c, key) + "\n")
			g.initBody(c, sel, key)
		}
	}
}

// goType resolves an entry's declared type through the document's type
// mapping, falling back to string for untyped declarations.
func (g *generator) goType(e *ir.Node) string {
	t := g.types.Resolve(e.Type)
	if t == "" {
		return "string"
	}
	return t
}

// entryExpr renders the binding expression for one entry.
func (g *generator) entryExpr(e *ir.Node, key string) string {
	typ := g.goType(e)
	if e.Default == "" && !e.IsCode {
		return "access.NewZeroEntry[" + typ + "](acc, " + strconv.Quote(key) + ")"
	}
	var def string
	switch {
	case e.IsCode:
		def = e.Default
	case e.Tr:
		def = "access.Tr(" + strconv.Quote(e.TrCtx) + ", " + strconv.Quote(e.Default) + ")"
	case typ == "string":
		def = strconv.Quote(e.Default)
	default:
		def = e.Default
	}
	return "access.NewEntry[" + typ + "](acc, " + strconv.Quote(key) + ", " + def + ")"
}

func (g *generator) line(depth int, s string) {
	g.structBuf.WriteString(strings.Repeat("\t", depth) + s + "\n")
}

func keyJoin(path, key string) string {
	if path == "" {
		return key
	}
	return path + "/" + key
}
