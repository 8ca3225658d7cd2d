package ir

import "fmt"

type Kind int

const (
	ContentKind Kind = iota
	GroupKind
	EntryKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ContentKind: "Content",
		GroupKind:   "Group",
		EntryKind:   "Entry",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Content": ContentKind,
		"Group":   GroupKind,
		"Entry":   EntryKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ContentKind,
		GroupKind,
		EntryKind,
	}
}

// Named reports whether nodes of this kind participate in key matching.
func (k Kind) Named() bool {
	return k != ContentKind
}
