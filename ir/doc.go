// Package ir provides the intermediate representation for settings schemas.
//
// # Overview
//
// All settings documents, whether written in the native nested dialect or
// the flat config dialect, are represented as a tree of ir.Node values.
// The tree is built once per document run, mutated in place while imports
// are spliced and flat entries are translated, and then handed whole to
// code generation.
//
// # Node Structure
//
// A Node is a tagged union over three kinds:
//
//   - ContentKind: an anonymous, ordered sequence of children. The document
//     root is a content node, and content spliced from an import is kept
//     under a content node so it stays addressable as if written inline.
//   - GroupKind: a named namespace with children and no value.
//   - EntryKind: a named, value-bearing entry with a declared type, a
//     default value and translation metadata. An entry may itself have
//     children, since a settings entry can be a composite with sub-fields.
//
// Child order within a node is declaration order and is never re-sorted.
// Within one content sequence, no two group/entry children share a key;
// this is maintained by the locate-or-create insertion path in the
// translation layer, not by an index.
//
// # Keys and Paths
//
// Keys are slash-delimited: "ui/theme/accent". SplitKey resolves a key into
// its intermediate segments and final segment, discarding empty segments.
// EntryPaths derives the full key of every entry in a tree.
//
// # Promotion
//
// A group may later turn out to carry a value (a declaration at the exact
// path that earlier entries used as a namespace). Promote replaces the
// group with an entry in the same child slot, preserving its children.
// The reverse transition never occurs.
//
// # Related Packages
//
//   - github.com/settml/go-settml/parse - parses settings documents into trees
//   - github.com/settml/go-settml/conf - translates the flat dialect into trees
//   - github.com/settml/go-settml/codegen - emits Go source from trees
package ir
