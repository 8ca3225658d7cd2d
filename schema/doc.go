// Package schema defines the document model shared by the settings
// parsers and the code generator.
//
// A Document is the result of one top-level parse run: the resolved
// content tree plus the document-level metadata that emission needs
// (class name, export prefix, includes, backend descriptor and the
// virtual-to-concrete type mapping). The parse package builds Documents,
// the codegen package consumes them; after the handoff a Document is
// never mutated.
package schema
