package conf

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// Read consumes a SettingsConfig element from dec, whose start tag has
// already been read into start, and returns the parsed document. Strict
// layering is enforced here: a hosting layer rejects anything but
// strictly deeper layers, and an entry rejects anything but a Code
// child.
func Read(dec *xml.Decoder, start xml.StartElement) (*ConfigDocument, error) {
	if start.Name.Local != "SettingsConfig" {
		return nil, fmt.Errorf("%w: expected <SettingsConfig>, got <%s>", ErrStructure, start.Name.Local)
	}
	doc := &ConfigDocument{}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStructure, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el, err := readElement(dec, t)
			if err != nil {
				return nil, err
			}
			doc.Content = append(doc.Content, el)
		case xml.EndElement:
			return doc, nil
		}
	}
}

func readElement(dec *xml.Decoder, start xml.StartElement) (*Element, error) {
	layer, ok := layerOf(start.Name.Local)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected element <%s> in SettingsConfig", ErrStructure, start.Name.Local)
	}
	if layer == EntryLayer {
		return readEntry(dec, start)
	}
	el := &Element{Layer: layer, Name: attr(start, "name")}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStructure, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := readElement(dec, t)
			if err != nil {
				return nil, err
			}
			if child.Layer <= el.Layer {
				return nil, el.hostError(child)
			}
			el.Children = append(el.Children, child)
		case xml.EndElement:
			return el, nil
		}
	}
}

func readEntry(dec *xml.Decoder, start xml.StartElement) (*Element, error) {
	entry := &Entry{
		Key:     attr(start, "key"),
		Type:    attr(start, "type"),
		Default: attr(start, "default"),
		TrCtx:   attr(start, "trContext"),
	}
	if v := attr(start, "tr"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: bad tr value %q on entry %q", ErrStructure, v, entry.Key)
		}
		entry.Tr = b
	}
	if entry.Key == "" {
		return nil, fmt.Errorf("%w: entry without key", ErrStructure)
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStructure, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "Code" {
				return nil, fmt.Errorf("%w: unexpected element <%s> in entry %q", ErrStructure, t.Name.Local, entry.Key)
			}
			code, err := text(dec)
			if err != nil {
				return nil, err
			}
			entry.Default = strings.TrimSpace(code)
			entry.IsCode = true
		case xml.EndElement:
			return &Element{Layer: EntryLayer, Entry: entry}, nil
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

// text collects character data until the current element closes.
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
