package access

import "testing"

func TestEntryDefault(t *testing.T) {
	acc := NewMapAccessor()
	e := NewEntry(acc, "ui/theme", "dark")
	if got := e.Get(); got != "dark" {
		t.Errorf("Get on empty store = %q, want default", got)
	}
	if err := e.Set("light"); err != nil {
		t.Fatal(err)
	}
	if got := e.Get(); got != "light" {
		t.Errorf("Get after Set = %q", got)
	}
	if err := e.Reset(); err != nil {
		t.Fatal(err)
	}
	if got := e.Get(); got != "dark" {
		t.Errorf("Get after Reset = %q", got)
	}
}

func TestEntryWrongStoredType(t *testing.T) {
	acc := NewMapAccessor()
	if err := acc.Set("n", "not an int"); err != nil {
		t.Fatal(err)
	}
	e := NewEntry(acc, "n", 42)
	if got := e.Get(); got != 42 {
		t.Errorf("Get with mistyped store = %d, want default", got)
	}
}

func TestEntryKey(t *testing.T) {
	e := NewEntry[int](NewMapAccessor(), "a/b", 0)
	if e.Key() != "a/b" {
		t.Errorf("Key = %q", e.Key())
	}
}
