package fixture

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/dom"
)

// BoxAttribute holds an element's geometry in HTML fixtures.
const BoxAttribute = "data-box"

// EventsAttribute on an element lists scripted events for it, separated by
// spaces, e.g. data-events="focus click". Events run in document order.
const EventsAttribute = "data-events"

// ParseHTML builds a fixture from markup. The viewport meta width, when
// present, is applied after opts.
func ParseHTML(r io.Reader, opts ...dom.Option) (*Fixture, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.New("T040").Wrap(err)
	}

	if width, ok := viewportWidth(root); ok {
		opts = append(opts, dom.WithViewport(width, 0))
	}
	doc := dom.NewDocument(opts...)
	f := &Fixture{Doc: doc}

	body := findAtom(root, atom.Body)
	if body == nil {
		return f, nil
	}
	if err := copyAttrs(f, doc.Body(), body); err != nil {
		return nil, err
	}
	if err := convertChildren(f, doc.Body(), body); err != nil {
		return nil, err
	}
	return f, nil
}

func convertChildren(f *Fixture, parent *dom.Element, n *html.Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) == "" {
				continue
			}
			parent.AppendChild(f.Doc.CreateText(c.Data))
		case html.ElementNode:
			el := f.Doc.CreateElement(c.Data)
			if err := copyAttrs(f, el, c); err != nil {
				return err
			}
			parent.AppendChild(el)
			if err := convertChildren(f, el, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyAttrs(f *Fixture, el *dom.Element, n *html.Node) error {
	var events string
	for _, a := range n.Attr {
		switch a.Key {
		case BoxAttribute:
			b, err := dom.ParseBox(a.Val)
			if err != nil {
				return errors.New("T042").WithDetailf("<%s %s=%q>.", n.Data, a.Key, a.Val).Wrap(err)
			}
			el.SetBox(b)
		case EventsAttribute:
			events = a.Val
		default:
			el.SetAttr(a.Key, a.Val)
		}
	}
	if events == "" {
		return nil
	}
	id := el.ID()
	if id == "" {
		return errors.New("T041").WithDetailf("<%s> has %s but no id.", n.Data, EventsAttribute)
	}
	for _, typ := range strings.Fields(events) {
		f.Events = append(f.Events, Event{Target: id, Type: typ})
	}
	return nil
}

// viewportWidth reads width=N from <meta name="viewport">.
func viewportWidth(root *html.Node) (float64, bool) {
	var width float64
	var found bool
	walk(root, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.DataAtom != atom.Meta || attr(n, "name") != "viewport" {
			return true
		}
		for _, part := range strings.Split(attr(n, "content"), ",") {
			key, val, ok := strings.Cut(strings.TrimSpace(part), "=")
			if !ok || strings.TrimSpace(key) != "width" {
				continue
			}
			if w, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil && w > 0 {
				width, found = w, true
			}
		}
		return false
	})
	return width, found
}

func findAtom(root *html.Node, a atom.Atom) *html.Node {
	var out *html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == a {
			out = n
			return false
		}
		return true
	})
	return out
}

// walk visits nodes depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
