package conf

import "fmt"

// Layer identifies the nesting level of a flat-dialect element. Deeper
// layers have larger values; an element may only host elements of
// strictly deeper layers.
type Layer int

const (
	CategoryLayer Layer = iota
	SectionLayer
	GroupLayer
	EntryLayer
)

func (l Layer) String() string {
	s, ok := map[Layer]string{
		CategoryLayer: "Category",
		SectionLayer:  "Section",
		GroupLayer:    "Group",
		EntryLayer:    "Entry",
	}[l]
	if ok {
		return s
	}
	return "<unknown layer>"
}

func layerOf(element string) (Layer, bool) {
	l, ok := map[string]Layer{
		"Category": CategoryLayer,
		"Section":  SectionLayer,
		"Group":    GroupLayer,
		"Entry":    EntryLayer,
	}[element]
	return l, ok
}

// Element is one flat-dialect declaration. Entry is set for EntryLayer
// elements, Children for the hosting layers.
type Element struct {
	Layer    Layer
	Name     string
	Entry    *Entry
	Children []*Element
}

// Entry is a flat-dialect leaf declaration.
type Entry struct {
	Key     string
	Type    string
	Default string
	IsCode  bool
	Tr      bool
	TrCtx   string
}

// ConfigDocument is a parsed flat-dialect document.
type ConfigDocument struct {
	Content []*Element
}

func Category(name string, children ...*Element) *Element {
	return &Element{Layer: CategoryLayer, Name: name, Children: children}
}

func Section(name string, children ...*Element) *Element {
	return &Element{Layer: SectionLayer, Name: name, Children: children}
}

func Group(name string, children ...*Element) *Element {
	return &Element{Layer: GroupLayer, Name: name, Children: children}
}

func EntryOf(e Entry) *Element {
	return &Element{Layer: EntryLayer, Entry: &e}
}

func (e *Element) hostError(c *Element) error {
	return fmt.Errorf("%w: unexpected %s under %s %q", ErrStructure, c.Layer, e.Layer, e.Name)
}
