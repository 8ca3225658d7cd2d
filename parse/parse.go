package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/settml/go-settml/conf"
	"github.com/settml/go-settml/debug"
	"github.com/settml/go-settml/schema"
)

type opts struct {
	warn func(error)
	name string
	dir  string
}

type Option func(*opts)

// WithWarnFunc sets the sink for non-fatal warnings, such as a failing
// optional import. The default prints to stderr.
func WithWarnFunc(f func(error)) Option {
	return func(o *opts) { o.warn = f }
}

// WithName sets the document name used when the document itself
// declares none, typically the output file's base name.
func WithName(name string) Option {
	return func(o *opts) { o.name = name }
}

func newOpts(popts []Option) *opts {
	o := &opts{
		warn: func(err error) {
			fmt.Fprintln(os.Stderr, color.YellowString("warning:"), err)
		},
	}
	for _, f := range popts {
		f(o)
	}
	return o
}

func (o *opts) at(dir string) *opts {
	res := *o
	res.dir = dir
	return &res
}

// Parse assembles a settings document from data. Relative import paths
// resolve against the process working directory; prefer ParseFile when
// the document came from a file.
func Parse(data []byte, popts ...Option) (*schema.Document, error) {
	return parseDoc(xml.NewDecoder(bytes.NewReader(data)), newOpts(popts))
}

// ParseFile assembles the settings document at path, resolving relative
// imports against the document's own directory.
func ParseFile(path string, popts ...Option) (*schema.Document, error) {
	return parseFileAt(path, newOpts(popts).at(filepath.Dir(path)))
}

func parseFileAt(path string, o *opts) (*schema.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open %q: %w", ErrResource, path, err)
	}
	defer f.Close()
	return parseDoc(xml.NewDecoder(f), o)
}

// parseDoc dispatches on the root element to the dialect reader.
func parseDoc(dec *xml.Decoder, o *opts) (*schema.Document, error) {
	start, err := rootElement(dec)
	if err != nil {
		return nil, err
	}
	debug.Parsef("root element <%s>", start.Name.Local)
	switch start.Name.Local {
	case "Settings":
		return readSettings(dec, *start, o)
	case "SettingsConfig":
		cdoc, err := conf.Read(dec, *start)
		if err != nil {
			return nil, err
		}
		content, err := conf.Translate(cdoc)
		if err != nil {
			return nil, err
		}
		return &schema.Document{
			Name:    o.name,
			Types:   schema.TypeMap{},
			Content: content,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected root element <%s>", ErrStructure, start.Name.Local)
	}
}

func rootElement(dec *xml.Decoder) (*xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: no root element", ErrStructure)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStructure, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return &start, nil
		}
	}
}
