package parse

import (
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/settml/go-settml/debug"
	"github.com/settml/go-settml/ir"
	"github.com/settml/go-settml/schema"
)

// readImportDecl reads an <Import required="..." rootNode="..."> element
// whose text content is the target path.
func readImportDecl(dec *xml.Decoder, start xml.StartElement) (*schema.Import, error) {
	required, err := boolAttr(start, "required")
	if err != nil {
		return nil, err
	}
	path, err := text(dec)
	if err != nil {
		return nil, err
	}
	imp := &schema.Import{
		Path:     strings.TrimSpace(path),
		Required: required,
		RootNode: attr(start, "rootNode"),
	}
	if imp.Path == "" {
		return nil, fmt.Errorf("%w: import without path", ErrStructure)
	}
	return imp, nil
}

// resolveImport loads, parses and selects the imported content. The
// result is an anonymous content node holding the selection's children,
// ready to graft at the import's position, or nil when the import
// contributes nothing: an unresolved rootNode segment, or any failure on
// an import that was not declared required.
func resolveImport(imp *schema.Import, o *opts) (*ir.Node, error) {
	path := imp.Path
	if !filepath.IsAbs(path) && o.dir != "" {
		path = filepath.Join(o.dir, path)
	}

	sub, err := parseFileAt(path, o.at(filepath.Dir(path)))
	if err != nil {
		if imp.Required {
			return nil, err
		}
		o.warn(fmt.Errorf("skipping optional import %q: %w", imp.Path, err))
		return nil, nil
	}

	// Imported metadata (includes, backend, type mappings) is dropped;
	// only tree content crosses the import boundary.
	grp := sub.Content
	if imp.RootNode != "" {
		for _, seg := range ir.Segments(imp.RootNode) {
			next := ir.Locate(grp, seg)
			if next == nil {
				debug.Importsf("import %q: rootNode %q not found, nothing grafted", imp.Path, imp.RootNode)
				return nil, nil
			}
			grp = next
		}
	}
	debug.Importsf("import %q: grafting %d nodes", imp.Path, len(grp.Children))
	return ir.Content(grp.Children...), nil
}
