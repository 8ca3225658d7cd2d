// Package access is the small runtime that generated settings code
// links against: a storage-agnostic Accessor and typed Entry handles.
//
// Generated constructors take an Accessor explicitly; there is no
// package-level instance.
package access

// Accessor reads and writes raw settings values by their full
// slash-delimited key.
type Accessor interface {
	Get(key string) (any, bool)
	Set(key string, value any) error
}

// Entry is a typed handle on one settings entry. The zero Entry is not
// usable; generated constructors produce bound entries.
type Entry[T any] struct {
	acc Accessor
	key string
	def T
}

func NewEntry[T any](acc Accessor, key string, def T) Entry[T] {
	return Entry[T]{acc: acc, key: key, def: def}
}

// NewZeroEntry binds an entry whose default is the zero value of T,
// used for declarations that carry no default.
func NewZeroEntry[T any](acc Accessor, key string) Entry[T] {
	return Entry[T]{acc: acc, key: key}
}

func (e Entry[T]) Key() string {
	return e.key
}

func (e Entry[T]) Default() T {
	return e.def
}

// Get returns the stored value, or the entry's default when the store
// has no value of the right type under the key.
func (e Entry[T]) Get() T {
	v, ok := e.acc.Get(e.key)
	if !ok {
		return e.def
	}
	t, ok := v.(T)
	if !ok {
		return e.def
	}
	return t
}

func (e Entry[T]) Set(v T) error {
	return e.acc.Set(e.key, v)
}

// Reset restores the entry to its default.
func (e Entry[T]) Reset() error {
	return e.acc.Set(e.key, e.def)
}

// Tr translates a default value. The default implementation is the
// identity; applications plug in their own translator.
var Tr = func(context, source string) string {
	return source
}
