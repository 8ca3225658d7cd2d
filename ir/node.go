package ir

type Node struct {
	Kind Kind
	Key  string `json:",omitempty"`

	// Entry data, meaningful for EntryKind only.
	Type    string `json:",omitempty"`
	Default string `json:",omitempty"`
	IsCode  bool   `json:",omitempty"`
	Tr      bool   `json:",omitempty"`
	TrCtx   string `json:",omitempty"`

	Children []*Node `json:",omitempty"`
}

func Content(children ...*Node) *Node {
	return &Node{Kind: ContentKind, Children: children}
}

func Group(key string, children ...*Node) *Node {
	return &Node{Kind: GroupKind, Key: key, Children: children}
}

func Entry(key, typ string, children ...*Node) *Node {
	return &Node{Kind: EntryKind, Key: key, Type: typ, Children: children}
}

func (n *Node) WithDefault(v string) *Node {
	n.Default = v
	return n
}

func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Key = n.Key
	dst.Type = n.Type
	dst.Default = n.Default
	dst.IsCode = n.IsCode
	dst.Tr = n.Tr
	dst.TrCtx = n.TrCtx
	dst.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		dst.Children[i] = c.Clone()
	}
	return dst
}

// Visit walks the tree depth first, calling f twice per node, once before
// descending (isPost false) and once after (isPost true). Returning false
// from the pre call skips the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// EntryPaths returns the full slash-delimited key of every entry in the
// tree, in document order. Content nodes contribute no path segment, so
// spliced import content yields the same paths as inlined declarations.
func EntryPaths(root *Node) []string {
	var res []string
	entryPaths(root, "", &res)
	return res
}

func entryPaths(n *Node, prefix string, res *[]string) {
	for _, c := range n.Children {
		switch c.Kind {
		case ContentKind:
			entryPaths(c, prefix, res)
		case GroupKind:
			entryPaths(c, join(prefix, c.Key), res)
		case EntryKind:
			p := join(prefix, c.Key)
			*res = append(*res, p)
			entryPaths(c, p, res)
		}
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
