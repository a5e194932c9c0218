package fixture

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/dom"
)

// Page is a structured page description.
type Page struct {
	Viewport Viewport `json:"viewport" yaml:"viewport"`
	Body     []Node   `json:"body" yaml:"body"`
	Events   []Event  `json:"events,omitempty" yaml:"events,omitempty"`
}

// Viewport describes the window. A zero width keeps the document default.
type Viewport struct {
	Width   float64 `json:"width" yaml:"width"`
	ScrollX float64 `json:"scrollX,omitempty" yaml:"scrollX,omitempty"`
}

// Node is one element of the body tree. Text, when set, is added before
// the children.
type Node struct {
	Tag      string            `json:"tag" yaml:"tag"`
	ID       string            `json:"id,omitempty" yaml:"id,omitempty"`
	Class    string            `json:"class,omitempty" yaml:"class,omitempty"`
	Style    string            `json:"style,omitempty" yaml:"style,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text     string            `json:"text,omitempty" yaml:"text,omitempty"`
	Box      *Box              `json:"box,omitempty" yaml:"box,omitempty"`
	Children []Node            `json:"children,omitempty" yaml:"children,omitempty"`
}

// Box is a node's layout box.
type Box struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Event is a scripted event sent to the element with the given id.
type Event struct {
	Target string `json:"target" yaml:"target"`
	Type   string `json:"type" yaml:"type"`
}

// Fixture is a built document and the events still to apply to it.
type Fixture struct {
	Doc    *dom.Document
	Events []Event
}

// Load reads a fixture file, choosing the format by extension: .html and
// .htm are markup, .json is JSON, anything else is YAML.
func Load(path string, opts ...dom.Option) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("T040").WithDetailf("reading %s.", path).Wrap(err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		f, err := ParseHTML(bytes.NewReader(data), opts...)
		return f, withPath(err, path)
	case ".json":
		var p Page
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, errors.New("T040").WithDetailf("decoding %s as JSON.", path).Wrap(err)
		}
		f, err := p.Build(opts...)
		return f, withPath(err, path)
	default:
		p, err := Parse(data)
		if err != nil {
			return nil, withPath(err, path)
		}
		f, err := p.Build(opts...)
		return f, withPath(err, path)
	}
}

func withPath(err error, path string) error {
	if err == nil {
		return nil
	}
	te := errors.FromError(err, "T040")
	return te.WithDetailf("%s: %s", path, te.Detail)
}

// Parse decodes a YAML page description. JSON input is accepted too.
func Parse(data []byte) (*Page, error) {
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.New("T040").Wrap(err)
	}
	return &p, nil
}

// Build creates the document. The page's viewport is applied after opts.
func (p *Page) Build(opts ...dom.Option) (*Fixture, error) {
	if p.Viewport.Width > 0 {
		opts = append(opts, dom.WithViewport(p.Viewport.Width, p.Viewport.ScrollX))
	}
	doc := dom.NewDocument(opts...)
	for i := range p.Body {
		el, err := buildNode(doc, &p.Body[i])
		if err != nil {
			return nil, err
		}
		doc.Body().AppendChild(el)
	}
	return &Fixture{Doc: doc, Events: p.Events}, nil
}

func buildNode(doc *dom.Document, n *Node) (*dom.Element, error) {
	if n.Tag == "" {
		return nil, errors.New("T040").WithDetailf("node %q has no tag.", n.ID)
	}
	el := doc.CreateElement(n.Tag)
	for name, v := range n.Attrs {
		el.SetAttr(name, v)
	}
	if n.ID != "" {
		el.SetAttr("id", n.ID)
	}
	if n.Class != "" {
		el.SetClassName(n.Class)
	}
	if n.Style != "" {
		el.Style().SetCSSText(n.Style)
	}
	if n.Box != nil {
		if n.Box.Width < 0 || n.Box.Height < 0 {
			return nil, errors.New("T042").WithDetailf("%s has a negative size.", el)
		}
		el.SetBox(dom.Box{Left: n.Box.Left, Top: n.Box.Top, Width: n.Box.Width, Height: n.Box.Height})
	}
	if n.Text != "" {
		el.AppendChild(doc.CreateText(n.Text))
	}
	for i := range n.Children {
		child, err := buildNode(doc, &n.Children[i])
		if err != nil {
			return nil, err
		}
		el.AppendChild(child)
	}
	return el, nil
}

// Apply dispatches the scripted events in order. Focus and blur go through
// the document so the active element is tracked.
func (f *Fixture) Apply() error {
	for _, ev := range f.Events {
		target := f.Doc.GetElementByID(ev.Target)
		if target == nil {
			return errors.New("T041").WithDetailf("no element with id %q for %s.", ev.Target, ev.Type)
		}
		switch ev.Type {
		case dom.EventFocus:
			f.Doc.Focus(target)
		case dom.EventBlur:
			if f.Doc.ActiveElement() == target {
				f.Doc.Blur()
			} else {
				target.DispatchEvent(dom.EventBlur)
			}
		default:
			dom.Dispatch(target, dom.NewEvent(ev.Type))
		}
	}
	f.Events = nil
	return nil
}
