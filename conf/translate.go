package conf

import (
	"fmt"

	"github.com/settml/go-settml/debug"
	"github.com/settml/go-settml/ir"
)

// Translate converts a flat-dialect document into a fresh ir tree.
func Translate(doc *ConfigDocument) (*ir.Node, error) {
	root := ir.Content()
	if err := TranslateInto(doc, root); err != nil {
		return nil, err
	}
	return root, nil
}

// TranslateInto inserts every entry of doc into root, in document
// order. It is used directly when flat-dialect content is spliced into
// an existing tree by an import.
func TranslateInto(doc *ConfigDocument, root *ir.Node) error {
	for _, el := range doc.Content {
		if err := translateElement(el, root); err != nil {
			return err
		}
	}
	return nil
}

func translateElement(el *Element, root *ir.Node) error {
	if el.Layer == EntryLayer {
		return insert(root, el.Entry)
	}
	for _, c := range el.Children {
		if c.Layer <= el.Layer {
			return el.hostError(c)
		}
		if err := translateElement(c, root); err != nil {
			return err
		}
	}
	return nil
}

// insert places one entry at the path its key implies. Intermediate
// segments locate or create groups; an intermediate segment that
// matches an existing entry descends into it, since entries may host
// sub-entries. At the final segment a fresh entry is created, an
// existing group is promoted, and an existing entry is a duplicate.
func insert(root *ir.Node, e *Entry) error {
	segs, final := ir.SplitKey(e.Key)
	if final == "" {
		return fmt.Errorf("%w: entry with empty key %q", ErrStructure, e.Key)
	}

	grp := root
	for _, seg := range segs {
		next := ir.Locate(grp, seg)
		if next == nil {
			next = ir.Group(seg)
			grp.Append(next)
		}
		grp = next
	}

	node := ir.Locate(grp, final)
	switch {
	case node == nil:
		node = ir.Entry(final, "")
		grp.Append(node)
	case node.Kind == ir.GroupKind:
		debug.Translatef("promoting group at %q to entry", e.Key)
		node = ir.Promote(grp, node, ir.Entry(final, ""))
		if node == nil {
			return fmt.Errorf("%w: promotion target for %q not reachable", errInternal, e.Key)
		}
	default:
		return fmt.Errorf("%w: found duplicated entry with key %q", ErrStructure, e.Key)
	}

	node.Type = e.Type
	node.Default = e.Default
	node.IsCode = e.IsCode
	node.Tr = e.Tr
	node.TrCtx = e.TrCtx
	return nil
}
