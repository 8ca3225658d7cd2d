// Package codegen emits Go source from a resolved settings document.
//
// The generated file contains one struct type mirroring the document's
// tree: groups become nested anonymous structs, entries become typed
// access.Entry fields, and composite entries become structs embedding
// their own entry. A constructor binds every entry to its full
// slash-delimited key on an explicitly supplied access.Accessor; when
// the document declares a backend, a second constructor invokes the
// named backend factory with its declared parameters.
//
// Virtual type names are resolved through the document's type mapping
// at emission time only. Output is formatted with
// golang.org/x/tools/imports, which also prunes declared includes the
// generated code does not use.
package codegen
