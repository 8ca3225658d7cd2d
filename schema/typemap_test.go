package schema

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTypeMapLastWriteWins(t *testing.T) {
	m := TypeMap{}
	m.Set("variant", "interface{}")
	m.Set("variant", "any")
	if got := m.Resolve("variant"); got != "any" {
		t.Errorf("Resolve(variant) = %q, want %q", got, "any")
	}
}

func TestTypeMapResolveFallthrough(t *testing.T) {
	m := TypeMap{"size": "image.Point"}
	if got := m.Resolve("string"); got != "string" {
		t.Errorf("Resolve(string) = %q, want identity", got)
	}
	if got := m.Resolve("size"); got != "image.Point" {
		t.Errorf("Resolve(size) = %q", got)
	}
}

func TestTypeMapMerge(t *testing.T) {
	m := TypeMap{"a": "x", "b": "y"}
	m.Merge(TypeMap{"b": "z", "c": "w"})
	want := TypeMap{"a": "x", "b": "z", "c": "w"}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("m[%q] = %q, want %q", k, m[k], v)
		}
	}
}

func TestLoadTypeMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	if err := os.WriteFile(path, []byte("variant: any\nsize: image.Point\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadTypeMap(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Resolve("variant") != "any" || m.Resolve("size") != "image.Point" {
		t.Errorf("unexpected map: %v", m)
	}
}

func TestLoadTypeMapMissing(t *testing.T) {
	_, err := LoadTypeMap(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
