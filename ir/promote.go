package ir

// Promote replaces grp, a group child of parent, with entry in the same
// child slot. The group's children are carried over onto entry before the
// slot is overwritten, so promotion preserves both the subtree and the
// node's position in its parent's sequence. The group is found by pointer
// identity, not by key, and the search recurses through content children
// the same way Locate does.
//
// Returns the installed entry, or nil when grp is not reachable from
// parent. A nil return signals an internal consistency fault in the
// caller, not a user-facing condition.
func Promote(parent, grp, entry *Node) *Node {
	for i, c := range parent.Children {
		switch c.Kind {
		case GroupKind:
			if c == grp {
				entry.Children = append(entry.Children, grp.Children...)
				parent.Children[i] = entry
				return entry
			}
		case ContentKind:
			if res := Promote(c, grp, entry); res != nil {
				return res
			}
		}
	}
	return nil
}
