package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPromote(t *testing.T) {
	grp := Group("y", Entry("z", "int"))
	root := Content(Entry("a", "bool"), grp, Group("tail"))

	entry := Entry("y", "string")
	got := Promote(root, grp, entry)
	if got != entry {
		t.Fatalf("Promote returned %v, want the new entry", got)
	}
	// slot position and children preserved
	if root.Children[1] != entry {
		t.Errorf("entry not installed in the group's slot")
	}
	want := Content(
		Entry("a", "bool"),
		Entry("y", "string", Entry("z", "int")),
		Group("tail"),
	)
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("tree after promotion (-want +got):\n%s", diff)
	}
}

func TestPromoteThroughContent(t *testing.T) {
	grp := Group("y")
	root := Content(Content(grp))

	entry := Entry("y", "int")
	if got := Promote(root, grp, entry); got != entry {
		t.Fatalf("Promote through content returned %v", got)
	}
	if root.Children[0].Children[0] != entry {
		t.Errorf("entry not installed inside the content child")
	}
}

func TestPromoteIdentityMiss(t *testing.T) {
	root := Content(Group("y"))
	other := Group("y")
	if got := Promote(root, other, Entry("y", "int")); got != nil {
		t.Errorf("Promote matched by key, not identity: %v", got)
	}
}
