package access

// MapAccessor is an in-memory Accessor, useful in tests and as a
// placeholder backend.
type MapAccessor struct {
	m map[string]any
}

func NewMapAccessor() *MapAccessor {
	return &MapAccessor{m: map[string]any{}}
}

func (a *MapAccessor) Get(key string) (any, bool) {
	v, ok := a.m[key]
	return v, ok
}

func (a *MapAccessor) Set(key string, value any) error {
	a.m[key] = value
	return nil
}
