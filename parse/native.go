package parse

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/settml/go-settml/ir"
	"github.com/settml/go-settml/schema"
)

// readSettings reads a native-dialect document body. Document metadata
// elements (Include, Backend, TypeMapping) are only recognized at the
// top level; everything below is tree content.
func readSettings(dec *xml.Decoder, start xml.StartElement, o *opts) (*schema.Document, error) {
	doc := &schema.Document{
		Name:    attr(start, "name"),
		Prefix:  attr(start, "prefix"),
		Types:   schema.TypeMap{},
		Content: ir.Content(),
	}
	if doc.Name == "" {
		doc.Name = o.name
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStructure, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "Include":
				local, err := boolAttr(t, "local")
				if err != nil {
					return nil, err
				}
				path, err := text(dec)
				if err != nil {
					return nil, err
				}
				doc.Includes = append(doc.Includes, schema.Include{
					Local: local,
					Path:  strings.TrimSpace(path),
				})
			case "Backend":
				backend, err := readBackend(dec, t)
				if err != nil {
					return nil, err
				}
				doc.Backend = backend
			case "TypeMapping":
				doc.Types.Set(attr(t, "key"), attr(t, "type"))
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %w", ErrStructure, err)
				}
			default:
				if err := readContentElement(dec, t, doc.Content, o); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			return doc, nil
		}
	}
}

// readContentElement handles one child of a content position: a Node, an
// Entry or an Import.
func readContentElement(dec *xml.Decoder, start xml.StartElement, parent *ir.Node, o *opts) error {
	switch start.Name.Local {
	case "Node":
		key := attr(start, "key")
		if key == "" {
			return fmt.Errorf("%w: node without key", ErrStructure)
		}
		node := ir.Group(key)
		parent.Append(node)
		return readContent(dec, node, o)
	case "Entry":
		return readEntry(dec, start, parent, o)
	case "Import":
		imp, err := readImportDecl(dec, start)
		if err != nil {
			return err
		}
		grafted, err := resolveImport(imp, o)
		if err != nil {
			return err
		}
		if grafted != nil {
			parent.Append(grafted)
		}
		return nil
	default:
		return fmt.Errorf("%w: unexpected element <%s> in settings content", ErrStructure, start.Name.Local)
	}
}

func readContent(dec *xml.Decoder, parent *ir.Node, o *opts) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStructure, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := readContentElement(dec, t, parent, o); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func readEntry(dec *xml.Decoder, start xml.StartElement, parent *ir.Node, o *opts) error {
	key := attr(start, "key")
	if key == "" {
		return fmt.Errorf("%w: entry without key", ErrStructure)
	}
	tr, err := boolAttr(start, "tr")
	if err != nil {
		return err
	}
	entry := ir.Entry(key, attr(start, "type"))
	entry.Default = attr(start, "default")
	entry.Tr = tr
	entry.TrCtx = attr(start, "trContext")
	parent.Append(entry)
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStructure, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "Code" {
				code, err := text(dec)
				if err != nil {
					return err
				}
				entry.Default = strings.TrimSpace(code)
				entry.IsCode = true
				continue
			}
			if err := readContentElement(dec, t, entry, o); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func readBackend(dec *xml.Decoder, start xml.StartElement) (*schema.Backend, error) {
	backend := &schema.Backend{Name: attr(start, "name")}
	if backend.Name == "" {
		return nil, fmt.Errorf("%w: backend without name", ErrStructure)
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStructure, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "Param" {
				return nil, fmt.Errorf("%w: unexpected element <%s> in backend", ErrStructure, t.Name.Local)
			}
			asStr, err := boolAttr(t, "asString")
			if err != nil {
				return nil, err
			}
			value, err := text(dec)
			if err != nil {
				return nil, err
			}
			backend.Params = append(backend.Params, schema.Param{
				Type:     attr(t, "type"),
				Value:    strings.TrimSpace(value),
				AsString: asStr,
			})
		case xml.EndElement:
			return backend, nil
		}
	}
}

func attr(start xml.StartElement, name string) string {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func boolAttr(start xml.StartElement, name string) (bool, error) {
	v := attr(start, name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: bad %s value %q on <%s>", ErrStructure, name, v, start.Name.Local)
	}
	return b, nil
}

func text(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrStructure, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			return sb.String(), nil
		case xml.StartElement:
			return "", fmt.Errorf("%w: unexpected element <%s> in text content", ErrStructure, t.Name.Local)
		}
	}
}
