package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/vango-dev/tooltip/pkg/dom"
)

// BoxAttribute carries an element's layout box in rendered output.
const BoxAttribute = "data-box"

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output, one element per line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// Boxes writes the box of explicitly sized elements as BoxAttribute.
	Boxes bool
}

// Renderer writes dom trees as HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders el and its descendants to a string.
func (r *Renderer) RenderToString(el *dom.Element) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, el); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams el and its descendants to w.
func (r *Renderer) RenderToWriter(w io.Writer, el *dom.Element) error {
	ew := &errWriter{w: w}
	r.renderNode(ew, el, 0)
	return ew.err
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) WriteString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

func (ew *errWriter) Printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (r *Renderer) renderNode(w *errWriter, el *dom.Element, depth int) {
	if el == nil {
		return
	}
	switch el.Kind {
	case dom.KindText:
		r.renderText(w, el, depth)
	case dom.KindElement:
		r.renderElement(w, el, depth)
	default:
		if w.err == nil {
			w.err = fmt.Errorf("render: unknown node kind %s", el.Kind)
		}
	}
}

func (r *Renderer) renderText(w *errWriter, el *dom.Element, depth int) {
	if r.config.Pretty {
		r.writeIndent(w, depth)
	}
	w.WriteString(escapeHTML(el.Text))
	if r.config.Pretty {
		w.WriteString("\n")
	}
}

func (r *Renderer) renderElement(w *errWriter, el *dom.Element, depth int) {
	if r.config.Pretty {
		r.writeIndent(w, depth)
	}
	w.WriteString("<" + el.Tag)
	r.renderAttributes(w, el)
	w.WriteString(">")

	if isVoidElement(el.Tag) {
		if r.config.Pretty {
			w.WriteString("\n")
		}
		return
	}

	children := el.Children()
	// Text-only content stays on the tag's line.
	if !r.config.Pretty || textOnly(children) {
		for _, c := range children {
			r.renderInline(w, c, depth+1)
		}
	} else {
		w.WriteString("\n")
		for _, c := range children {
			r.renderNode(w, c, depth+1)
		}
		r.writeIndent(w, depth)
	}

	w.WriteString("</" + el.Tag + ">")
	if r.config.Pretty {
		w.WriteString("\n")
	}
}

func (r *Renderer) renderInline(w *errWriter, el *dom.Element, depth int) {
	if el.Kind == dom.KindText {
		w.WriteString(escapeHTML(el.Text))
		return
	}
	r.renderNode(w, el, depth)
}

func textOnly(children []*dom.Element) bool {
	for _, c := range children {
		if c.Kind != dom.KindText {
			return false
		}
	}
	return true
}

type attr struct {
	name, value string
}

// attributes lists el's attributes sorted by name.
func (r *Renderer) attributes(el *dom.Element) []attr {
	boxed := r.config.Boxes && el.Sized()
	var attrs []attr
	for _, name := range el.AttrNames() {
		if boxed && name == BoxAttribute {
			continue
		}
		v, _ := el.Attr(name)
		attrs = append(attrs, attr{name, v})
	}
	if class := el.ClassName(); class != "" {
		attrs = append(attrs, attr{"class", class})
	}
	if css := el.Style().CSSText(); css != "" {
		attrs = append(attrs, attr{"style", css})
	}
	if boxed {
		attrs = append(attrs, attr{BoxAttribute, el.Box().String()})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].name < attrs[j].name })
	return attrs
}

func (r *Renderer) renderAttributes(w *errWriter, el *dom.Element) {
	for _, a := range r.attributes(el) {
		if a.value == "" && isBooleanAttr(a.name) {
			w.WriteString(" " + a.name)
			continue
		}
		w.Printf(` %s="%s"`, a.name, escapeAttr(a.value))
	}
}

func (r *Renderer) writeIndent(w *errWriter, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString(r.config.Indent)
	}
}
