package dom

// Window holds the viewport metrics the document is displayed in.
type Window struct {
	InnerWidth  float64
	PageXOffset float64
}

// Document is a host document tree.
type Document struct {
	Window Window

	root     *Element
	body     *Element
	measurer Measurer
	active   *Element
}

// Option configures a Document.
type Option func(*Document)

// WithViewport sets the viewport width and horizontal scroll offset.
func WithViewport(width, scrollX float64) Option {
	return func(d *Document) {
		d.Window = Window{InnerWidth: width, PageXOffset: scrollX}
	}
}

// WithMeasurer sets the measurer for elements without an explicit box.
func WithMeasurer(m Measurer) Option {
	return func(d *Document) {
		d.measurer = m
	}
}

// NewDocument creates a document with an html root and an empty body.
// The default viewport is 1024px wide and unscrolled.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		Window:   Window{InnerWidth: 1024},
		measurer: DefaultTextMeasurer,
	}
	d.root = newElement(d, KindElement, "html")
	d.body = newElement(d, KindElement, "body")
	d.root.AppendChild(d.body)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Root returns the html element.
func (d *Document) Root() *Element {
	return d.root
}

// Body returns the body element.
func (d *Document) Body() *Element {
	return d.body
}

// SetMeasurer replaces the measurer.
func (d *Document) SetMeasurer(m Measurer) {
	d.measurer = m
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) *Element {
	return newElement(d, KindElement, tag)
}

// CreateText creates a detached text node.
func (d *Document) CreateText(text string) *Element {
	n := newElement(d, KindText, "")
	n.Text = text
	return n
}

// Walk visits every connected node in document order until fn returns false.
func (d *Document) Walk(fn func(*Element) bool) {
	d.root.Walk(fn)
}

// GetElementByID returns the first connected element with the given id.
func (d *Document) GetElementByID(id string) *Element {
	var found *Element
	d.Walk(func(e *Element) bool {
		if e.Kind == KindElement && e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// QueryAttr returns connected elements carrying the attribute, in document
// order. It is the equivalent of querySelectorAll("[name]").
func (d *Document) QueryAttr(name string) []*Element {
	var out []*Element
	d.Walk(func(e *Element) bool {
		if e.Kind == KindElement && e.HasAttr(name) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// QueryClass returns connected elements carrying the class, in document order.
func (d *Document) QueryClass(class string) []*Element {
	var out []*Element
	d.Walk(func(e *Element) bool {
		if e.Kind == KindElement && e.HasClass(class) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Element {
	return d.active
}

// Focus moves focus to el: blur fires on the previously focused element,
// then focus fires on el. Focusing the active element again does nothing.
func (d *Document) Focus(el *Element) {
	if el == nil || el == d.active || !el.IsConnected() {
		return
	}
	prev := d.active
	d.active = el
	if prev != nil {
		prev.DispatchEvent(EventBlur)
	}
	// A blur handler may have moved focus elsewhere.
	if d.active == el {
		el.DispatchEvent(EventFocus)
	}
}

// Blur removes focus from the active element.
func (d *Document) Blur() {
	prev := d.active
	if prev == nil {
		return
	}
	d.active = nil
	prev.DispatchEvent(EventBlur)
}
