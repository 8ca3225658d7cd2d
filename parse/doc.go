// Package parse assembles settings documents into schema.Documents.
//
// Parse and ParseFile accept either dialect; the document's root element
// decides which reader runs. Native "Settings" documents parse directly
// into an ir tree together with their document-level metadata (name,
// prefix, includes, backend, type mappings). Flat "SettingsConfig"
// documents are read by the conf package and translated into an
// equivalent tree.
//
// Import declarations are resolved eagerly, depth first: the referenced
// document is loaded and parsed in full (again in either dialect), an
// optional rootNode path selects a sub-tree, and the selection's
// children are grafted at the import's position under an anonymous
// content node. A missing rootNode segment is not an error; the import
// simply contributes nothing. A document that imports itself recurses
// until the stack is exhausted; there is no cycle guard.
//
// All fatal errors unwind to the top-level Parse/ParseFile call and no
// partial document is ever returned.
package parse
