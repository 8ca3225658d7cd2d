// Package conf reads the flat settings dialect and translates it into
// the ir node tree.
//
// The flat dialect ("SettingsConfig" documents) arranges declarations in
// four ordered layers: category, section, group and entry. The upper
// three layers carry no data of their own; they exist to host ordered
// sequences of the layers below them. Layering is strict: a layer may
// host any strictly deeper layer or a leaf entry, and nothing else.
//
// Entries carry slash-delimited keys. Translate inserts each entry into
// an ir tree at the path its key implies, creating groups on demand and
// promoting a group to an entry when a value is declared at a path that
// earlier entries used as a namespace. Declaring the same entry key
// twice is a structural error.
package conf
