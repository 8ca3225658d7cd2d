package schema

import "github.com/settml/go-settml/ir"

// Document is one fully resolved settings schema.
type Document struct {
	// Name is the settings class name. When the document declares none,
	// the assembler fills it from the output file's base name.
	Name string
	// Prefix is an optional export prefix placed before the generated
	// type name.
	Prefix string

	Includes []Include
	Backend  *Backend
	Types    TypeMap

	// Content is the root content node. Ownership transfers to the
	// emitter once parsing completes.
	Content *ir.Node
}

// Include is an extra import carried into the generated source.
type Include struct {
	Local bool
	Path  string
}

// Backend names a settings-accessor factory plus its construction
// parameters, used for the generated convenience constructor.
type Backend struct {
	Name   string
	Params []Param
}

// Param is one backend construction argument. AsString parameters are
// emitted as quoted string literals, others verbatim.
type Param struct {
	Type     string
	Value    string
	AsString bool
}

// Import declares a cross-file import. Relative paths resolve against
// the importing document's own location. RootNode optionally selects a
// sub-tree of the imported document instead of its root.
type Import struct {
	Path     string
	Required bool
	RootNode string
}
