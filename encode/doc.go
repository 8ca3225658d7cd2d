// Package encode renders resolved settings documents as indented text
// for inspection, optionally in color.
//
// The rendering is a view, not a serialization: it shows the merged
// tree after imports were spliced and the flat dialect was translated,
// which is exactly what code generation will see.
package encode
