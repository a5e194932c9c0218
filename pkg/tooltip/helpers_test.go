package tooltip

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/vango-dev/tooltip/pkg/dom"
)

// popupMeasurer gives popups a fixed natural size. Text wraps into extra
// lines when the popup is narrower than its natural width.
func popupMeasurer(w, h float64) dom.Measurer {
	return dom.MeasureFunc(func(el *dom.Element, maxWidth float64) dom.Size {
		if !el.HasClass(ClassTooltip) {
			return dom.Size{}
		}
		if maxWidth > 0 && maxWidth < w {
			return dom.Size{Width: maxWidth, Height: h * math.Ceil(w/maxWidth)}
		}
		return dom.Size{Width: w, Height: h}
	})
}

type page struct {
	doc    *dom.Document
	wrap   *dom.Element
	anchor *dom.Element
}

// newPage builds body > div > button with the button at {100,50,40,20} and
// popups measuring 80x30.
func newPage(t *testing.T) *page {
	t.Helper()
	doc := dom.NewDocument(dom.WithViewport(1024, 0), dom.WithMeasurer(popupMeasurer(80, 30)))
	wrap := doc.CreateElement("div")
	doc.Body().AppendChild(wrap)
	anchor := doc.CreateElement("button")
	anchor.SetAttr("id", "save")
	anchor.SetBox(dom.Box{Left: 100, Top: 50, Width: 40, Height: 20})
	wrap.AppendChild(anchor)
	return &page{doc: doc, wrap: wrap, anchor: anchor}
}

func (p *page) addAnchor(id string, box dom.Box) *dom.Element {
	el := p.doc.CreateElement("span")
	el.SetAttr("id", id)
	el.SetBox(box)
	p.wrap.AppendChild(el)
	return el
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func newTestRegistry(opts ...RegistryOption) *Registry {
	return NewRegistry(append([]RegistryOption{WithLogger(quietLogger())}, opts...)...)
}

func mustCreate(t *testing.T, r *Registry, anchor *dom.Element, opts *Options) *Tooltip {
	t.Helper()
	tt, err := r.Create(anchor, opts)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	return tt
}

func styleOf(el *dom.Element, prop string) string {
	return el.Style().Get(prop)
}
