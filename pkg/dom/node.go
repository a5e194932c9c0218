package dom

import (
	"sort"
	"strings"
)

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <div>, <a>, etc.
	KindText                    // Plain text node
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Element is a node of the host document tree.
type Element struct {
	Kind NodeKind
	Tag  string // Element tag name (e.g., "div")
	Text string // For KindText

	attrs   map[string]string
	classes []string
	style   *Style

	box   Box
	sized bool

	parent   *Element
	children []*Element

	listeners []*registration

	doc *Document
}

func newElement(doc *Document, kind NodeKind, tag string) *Element {
	return &Element{
		Kind:  kind,
		Tag:   strings.ToLower(tag),
		attrs: make(map[string]string),
		style: newStyle(),
		doc:   doc,
	}
}

// Document returns the document that created the element.
func (e *Element) Document() *Document {
	return e.doc
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.attrs["id"]
}

// Attr returns the value of an attribute and whether it is present.
// The class attribute is derived from the class list.
func (e *Element) Attr(name string) (string, bool) {
	if name == "class" {
		if len(e.classes) == 0 {
			return "", false
		}
		return e.ClassName(), true
	}
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets an attribute. Setting class replaces the class list.
func (e *Element) SetAttr(name, value string) {
	switch name {
	case "class":
		e.SetClassName(value)
	case "style":
		e.style.SetCSSText(value)
	default:
		e.attrs[name] = value
	}
}

// RemoveAttr removes an attribute.
func (e *Element) RemoveAttr(name string) {
	if name == "class" {
		e.classes = nil
		return
	}
	delete(e.attrs, name)
}

// AttrNames returns the names of all plain attributes, sorted.
// class and style are not included.
func (e *Element) AttrNames() []string {
	names := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Class list

// ClassName returns the class list joined with spaces.
func (e *Element) ClassName() string {
	return strings.Join(e.classes, " ")
}

// SetClassName replaces the class list with the space-separated classes.
func (e *Element) SetClassName(s string) {
	e.classes = nil
	e.AddClass(strings.Fields(s)...)
}

// Classes returns a copy of the class list.
func (e *Element) Classes() []string {
	return append([]string(nil), e.classes...)
}

// HasClass reports whether the class list contains c.
func (e *Element) HasClass(c string) bool {
	if c == "" {
		return false
	}
	for _, have := range e.classes {
		if have == c {
			return true
		}
	}
	return false
}

// AddClass appends classes that are not already present.
func (e *Element) AddClass(classes ...string) {
	for _, c := range classes {
		if c != "" && !e.HasClass(c) {
			e.classes = append(e.classes, c)
		}
	}
}

// RemoveClass removes classes from the class list.
func (e *Element) RemoveClass(classes ...string) {
	for _, c := range classes {
		for i, have := range e.classes {
			if have == c {
				e.classes = append(e.classes[:i], e.classes[i+1:]...)
				break
			}
		}
	}
}

// Style returns the element's inline style.
func (e *Element) Style() *Style {
	return e.style
}

// Tree structure

// Parent returns the parent element, or nil.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return append([]*Element(nil), e.children...)
}

// FirstChild returns the first child, or nil.
func (e *Element) FirstChild() *Element {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// NextSibling returns the element after e in its parent, or nil.
func (e *Element) NextSibling() *Element {
	if e.parent == nil {
		return nil
	}
	i := e.parent.indexOf(e)
	if i < 0 || i+1 >= len(e.parent.children) {
		return nil
	}
	return e.parent.children[i+1]
}

func (e *Element) indexOf(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// AppendChild appends child, detaching it from its previous parent first.
func (e *Element) AppendChild(child *Element) *Element {
	return e.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref. A nil ref, or a ref that is not a
// child of e, appends.
func (e *Element) InsertBefore(child, ref *Element) *Element {
	if child == nil || child == e {
		return child
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	i := -1
	if ref != nil {
		i = e.indexOf(ref)
	}
	if i < 0 {
		e.children = append(e.children, child)
	} else {
		e.children = append(e.children, nil)
		copy(e.children[i+1:], e.children[i:])
		e.children[i] = child
	}
	child.parent = e
	return child
}

// RemoveChild detaches child from e. It reports whether child was a child of e.
func (e *Element) RemoveChild(child *Element) bool {
	i := e.indexOf(child)
	if i < 0 {
		return false
	}
	e.children = append(e.children[:i], e.children[i+1:]...)
	child.parent = nil
	if e.doc != nil && child.Contains(e.doc.active) {
		e.doc.active = nil
	}
	return true
}

// Remove detaches e from its parent. It is a no-op for detached elements.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// Contains reports whether other is e or a descendant of e.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// IsConnected reports whether e is attached to its document's root.
func (e *Element) IsConnected() bool {
	return e.doc != nil && e.doc.root.Contains(e)
}

// TextContent returns the concatenated text of e and its descendants.
func (e *Element) TextContent() string {
	if e.Kind == KindText {
		return e.Text
	}
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Walk visits e and its descendants in document order until fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children() {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// ChildrenWithClass returns the element children of e carrying class c.
func (e *Element) ChildrenWithClass(c string) []*Element {
	var out []*Element
	for _, child := range e.children {
		if child.Kind == KindElement && child.HasClass(c) {
			out = append(out, child)
		}
	}
	return out
}

// String returns a short selector-like description for logs.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind == KindText {
		return "#text"
	}
	var b strings.Builder
	b.WriteString(e.Tag)
	if id := e.ID(); id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	for _, c := range e.classes {
		b.WriteString(".")
		b.WriteString(c)
	}
	return b.String()
}
