package parse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/settml/go-settml/ir"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestImportSplice(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.xml": `
<Settings name="Main">
	<Node key="ui">
		<Import>common.xml</Import>
	</Node>
</Settings>`,
		"common.xml": `
<Settings>
	<Entry key="theme" type="string" default="dark"/>
	<Node key="fonts">
		<Entry key="size" type="int" default="12"/>
	</Node>
</Settings>`,
	})
	doc, err := ParseFile(filepath.Join(dir, "main.xml"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"ui/theme", "ui/fonts/size"}
	if got := ir.EntryPaths(doc.Content); !cmp.Equal(want, got) {
		t.Errorf("EntryPaths = %v, want %v", got, want)
	}
	// spliced content stays reachable through the anonymous content node
	ui := ir.Locate(doc.Content, "ui")
	if ui == nil || ir.Locate(ui, "theme") == nil {
		t.Errorf("spliced entry not locatable")
	}
}

func TestImportRootNode(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.xml": `
<Settings>
	<Import rootNode="a/b">sub.xml</Import>
</Settings>`,
		"sub.xml": `
<Settings>
	<Node key="a">
		<Node key="b">
			<Entry key="deep" type="int"/>
		</Node>
	</Node>
	<Entry key="outside" type="int"/>
</Settings>`,
	})
	doc, err := ParseFile(filepath.Join(dir, "main.xml"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"deep"}
	if got := ir.EntryPaths(doc.Content); !cmp.Equal(want, got) {
		t.Errorf("EntryPaths = %v, want %v", got, want)
	}
}

func TestImportRootNodeMissing(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.xml": `
<Settings>
	<Entry key="kept" type="int"/>
	<Import rootNode="a/missing">sub.xml</Import>
</Settings>`,
		"sub.xml": `
<Settings>
	<Node key="a">
		<Entry key="present" type="int"/>
	</Node>
</Settings>`,
	})
	doc, err := ParseFile(filepath.Join(dir, "main.xml"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"kept"}
	if got := ir.EntryPaths(doc.Content); !cmp.Equal(want, got) {
		t.Errorf("EntryPaths = %v, want %v", got, want)
	}
}

func TestImportOptionalMissingFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.xml": `
<Settings>
	<Entry key="kept" type="int"/>
	<Import>nope.xml</Import>
</Settings>`,
	})
	var warned []error
	doc, err := ParseFile(filepath.Join(dir, "main.xml"),
		WithWarnFunc(func(err error) { warned = append(warned, err) }))
	if err != nil {
		t.Fatal(err)
	}
	if len(warned) != 1 {
		t.Errorf("warnings = %v, want exactly one", warned)
	}
	want := []string{"kept"}
	if got := ir.EntryPaths(doc.Content); !cmp.Equal(want, got) {
		t.Errorf("EntryPaths = %v, want %v", got, want)
	}
}

func TestImportRequiredMissingFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.xml": `
<Settings>
	<Import required="true">nope.xml</Import>
</Settings>`,
	})
	_, err := ParseFile(filepath.Join(dir, "main.xml"))
	if !errors.Is(err, ErrResource) {
		t.Fatalf("err = %v, want ErrResource", err)
	}
}

func TestImportFlatDialect(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.xml": `
<Settings>
	<Node key="app">
		<Import>flat.xml</Import>
	</Node>
</Settings>`,
		"flat.xml": `
<SettingsConfig>
	<Section name="general">
		<Entry key="lang" type="string" default="en"/>
		<Entry key="net/proxy" type="string"/>
	</Section>
</SettingsConfig>`,
	})
	doc, err := ParseFile(filepath.Join(dir, "main.xml"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"app/lang", "app/net/proxy"}
	if got := ir.EntryPaths(doc.Content); !cmp.Equal(want, got) {
		t.Errorf("EntryPaths = %v, want %v", got, want)
	}
}

func TestImportRelativeToImporter(t *testing.T) {
	// sub/inner.xml imports peer.xml relative to its own directory
	dir := writeFiles(t, map[string]string{
		"main.xml": `
<Settings>
	<Import>sub/inner.xml</Import>
</Settings>`,
		"sub/inner.xml": `
<Settings>
	<Import>peer.xml</Import>
</Settings>`,
		"sub/peer.xml": `
<Settings>
	<Entry key="nested" type="int"/>
</Settings>`,
	})
	doc, err := ParseFile(filepath.Join(dir, "main.xml"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"nested"}
	if got := ir.EntryPaths(doc.Content); !cmp.Equal(want, got) {
		t.Errorf("EntryPaths = %v, want %v", got, want)
	}
}

func TestImportOptionalBadDocument(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.xml": `
<Settings>
	<Import>bad.xml</Import>
</Settings>`,
		"bad.xml": `<Settings><Widget/></Settings>`,
	})
	var warned []error
	doc, err := ParseFile(filepath.Join(dir, "main.xml"),
		WithWarnFunc(func(err error) { warned = append(warned, err) }))
	if err != nil {
		t.Fatal(err)
	}
	if len(warned) != 1 || !errors.Is(warned[0], ErrStructure) {
		t.Errorf("warnings = %v, want one structure warning", warned)
	}
	if got := ir.EntryPaths(doc.Content); len(got) != 0 {
		t.Errorf("EntryPaths = %v, want none", got)
	}
}

func TestImportRequiredBadDocument(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.xml": `
<Settings>
	<Import required="true">bad.xml</Import>
</Settings>`,
		"bad.xml": `<Settings><Widget/></Settings>`,
	})
	_, err := ParseFile(filepath.Join(dir, "main.xml"))
	if !errors.Is(err, ErrStructure) {
		t.Fatalf("err = %v, want ErrStructure", err)
	}
}
