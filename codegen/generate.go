package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/settml/go-settml/debug"
	"github.com/settml/go-settml/schema"
)

const runtimeImport = "github.com/settml/go-settml/access"

type genOpts struct {
	pkg      string
	noFormat bool
}

type Option func(*genOpts)

// WithPackage sets the generated file's package clause. The default is
// "settings".
func WithPackage(pkg string) Option {
	return func(o *genOpts) { o.pkg = pkg }
}

// NoFormat skips the goimports pass, keeping the raw template output.
func NoFormat() Option {
	return func(o *genOpts) { o.noFormat = true }
}

var fileTemplate = template.Must(template.New("file").Parse(
	`// Code generated by settml-gen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// {{.TypeName}} is the generated settings schema.
type {{.TypeName}} struct {
{{.StructBody}}}

// New{{.TypeName}} binds the schema's entries to acc.
func New{{.TypeName}}(acc access.Accessor) *{{.TypeName}} {
	s := &{{.TypeName}}{}
{{.InitBody}}	return s
}
{{- if .BackendExpr}}

// New{{.TypeName}}Default constructs the settings on the document's
// declared backend accessor.
func New{{.TypeName}}Default() *{{.TypeName}} {
	return New{{.TypeName}}({{.BackendExpr}})
}
{{- end}}
`))

type fileData struct {
	Package     string
	Imports     []string
	TypeName    string
	StructBody  string
	InitBody    string
	BackendExpr string
}

// Generate emits the Go source for doc.
func Generate(doc *schema.Document, opts ...Option) ([]byte, error) {
	o := &genOpts{pkg: "settings"}
	for _, f := range opts {
		f(o)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("document has no name")
	}
	typeName := exportName(doc.Prefix + doc.Name)

	g := &generator{types: doc.Types}
	g.structBody(doc.Content, 1)
	g.initBody(doc.Content, "s", "")

	data := &fileData{
		Package:    o.pkg,
		TypeName:   typeName,
		StructBody: g.structBuf.String(),
		InitBody:   g.initBuf.String(),
	}
	data.Imports = append(data.Imports, runtimeImport)
	for _, inc := range doc.Includes {
		data.Imports = append(data.Imports, inc.Path)
	}
	if doc.Backend != nil {
		data.BackendExpr = backendExpr(doc.Backend)
	}

	buf := bytes.NewBuffer(nil)
	if err := fileTemplate.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("could not render template: %w", err)
	}
	if o.noFormat {
		return buf.Bytes(), nil
	}
	debug.Codegenf("formatting %d bytes of generated source", buf.Len())
	src, err := imports.Process(strings.ToLower(typeName)+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("generated source does not format: %w", err)
	}
	return src, nil
}

func backendExpr(b *schema.Backend) string {
	args := make([]string, len(b.Params))
	for i, p := range b.Params {
		switch {
		case p.AsString:
			args[i] = strconv.Quote(p.Value)
		case p.Type != "":
			args[i] = p.Type + "(" + p.Value + ")"
		default:
			args[i] = p.Value
		}
	}
	return b.Name + "(" + strings.Join(args, ", ") + ")"
}

// exportName turns a settings key into an exported Go identifier.
func exportName(key string) string {
	var sb strings.Builder
	up := true
	for _, r := range key {
		if !isIdentRune(r) {
			up = true
			continue
		}
		if up {
			sb.WriteString(strings.ToUpper(string(r)))
			up = false
			continue
		}
		sb.WriteRune(r)
	}
	res := sb.String()
	if res == "" || res[0] >= '0' && res[0] <= '9' {
		res = "X" + res
	}
	return res
}

func isIdentRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	}
	return false
}
