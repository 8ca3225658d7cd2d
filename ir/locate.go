package ir

// Locate finds the child of grp whose key equals key, scanning the child
// sequence in order. Matching is exact and case sensitive, and only group
// and entry children match by key; content children are searched through
// transparently in scan order, which keeps spliced import content
// addressable as if it were written inline. Locate does not recurse into
// matched groups; callers drive the walk one segment at a time.
//
// Returns nil when no child matches. The caller distinguishes a group
// match from an entry match via the returned node's Kind.
func Locate(grp *Node, key string) *Node {
	for _, c := range grp.Children {
		switch c.Kind {
		case GroupKind, EntryKind:
			if c.Key == key {
				return c
			}
		case ContentKind:
			if res := Locate(c, key); res != nil {
				return res
			}
		}
	}
	return nil
}
