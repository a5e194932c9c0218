package fixture

import (
	"strings"
	"testing"

	"github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/dom"
)

const formHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=640, initial-scale=1">
</head>
<body class="page">
  <div id="wrap" style="position: relative">
    <button id="save" title="Save the draft" data-tooltip='{"orientation":"bottom"}'
            data-box="100,50,40,20" data-events="mouseenter">Save</button>
    <span id="info" class="hint">Details &amp; more</span>
  </div>
</body>
</html>`

func TestParseHTML(t *testing.T) {
	f, err := ParseHTML(strings.NewReader(formHTML))
	if err != nil {
		t.Fatalf("ParseHTML() error: %v", err)
	}
	doc := f.Doc

	if doc.Window.InnerWidth != 640 {
		t.Errorf("InnerWidth = %v, want 640", doc.Window.InnerWidth)
	}
	if !doc.Body().HasClass("page") {
		t.Error("body attributes should be copied")
	}

	save := doc.GetElementByID("save")
	if save == nil || save.Parent().ID() != "wrap" {
		t.Fatal("button not nested under #wrap")
	}
	if save.Box() != (dom.Box{Left: 100, Top: 50, Width: 40, Height: 20}) || !save.Sized() {
		t.Errorf("box = %+v", save.Box())
	}
	if save.HasAttr(BoxAttribute) || save.HasAttr(EventsAttribute) {
		t.Error("fixture attributes should not be copied")
	}
	if v, _ := save.Attr("data-tooltip"); v != `{"orientation":"bottom"}` {
		t.Errorf("data-tooltip = %q", v)
	}
	if got := doc.GetElementByID("info").TextContent(); got != "Details & more" {
		t.Errorf("text = %q", got)
	}
	if doc.GetElementByID("wrap").Style().Get("position") != "relative" {
		t.Error("inline style not parsed")
	}

	if len(f.Events) != 1 || f.Events[0] != (Event{Target: "save", Type: "mouseenter"}) {
		t.Errorf("events = %+v", f.Events)
	}
}

func TestParseHTML_DropsWhitespaceText(t *testing.T) {
	f, _ := ParseHTML(strings.NewReader(formHTML))
	for _, c := range f.Doc.GetElementByID("wrap").Children() {
		if c.Kind == dom.KindText {
			t.Errorf("unexpected text node %q", c.Text)
		}
	}
}

func TestParseHTML_Errors(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		code   string
	}{
		{"bad box", `<div data-box="1,2,3">x</div>`, "T042"},
		{"events without id", `<div data-events="click">x</div>`, "T041"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseHTML(strings.NewReader(tt.markup)); errors.CodeOf(err) != tt.code {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestParseHTML_NoViewport(t *testing.T) {
	f, err := ParseHTML(strings.NewReader(`<p>plain</p>`), dom.WithViewport(500, 0))
	if err != nil {
		t.Fatal(err)
	}
	if f.Doc.Window.InnerWidth != 500 {
		t.Errorf("InnerWidth = %v, want 500 from options", f.Doc.Window.InnerWidth)
	}
}
