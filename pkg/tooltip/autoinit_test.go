package tooltip

import (
	"context"
	"testing"

	"github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/dom"
)

func TestAutoInit(t *testing.T) {
	p := newPage(t)
	p.anchor.SetAttr(DataAttribute, "")
	p.anchor.SetAttr("title", "Save")

	info := p.addAnchor("info", dom.Box{Left: 300, Top: 50, Width: 40, Height: 20})
	info.SetAttr(DataAttribute, `{"orientation":"bottom","showOn":"click"}`)

	hidden := p.addAnchor("hidden", dom.Box{})
	hidden.SetAttr(DataAttribute, "")

	p.addAnchor("plain", dom.Box{Left: 500, Top: 50, Width: 40, Height: 20})

	r := newTestRegistry()
	created, err := AutoInit(context.Background(), r, p.doc)
	if err != nil {
		t.Fatalf("AutoInit() error: %v", err)
	}
	if len(created) != 2 || r.Len() != 2 {
		t.Fatalf("created %d (registry %d), want 2", len(created), r.Len())
	}
	if created[0].Anchor() != p.anchor || created[1].Anchor() != info {
		t.Error("tooltips should be created in document order")
	}
	if created[1].Config().Orientation != OrientationBottom || created[1].Config().ShowOn != ShowOnClick {
		t.Errorf("options not applied: %+v", created[1].Config())
	}
}

func TestAutoInit_SiblingAnchors(t *testing.T) {
	doc := dom.NewDocument(dom.WithMeasurer(popupMeasurer(80, 30)))
	para := doc.CreateElement("p")
	doc.Body().AppendChild(para)

	var links []*dom.Element
	for i, title := range []string{"First", "Second", "Third"} {
		a := doc.CreateElement("a")
		a.SetAttr("title", title)
		a.SetAttr(DataAttribute, "")
		a.SetBox(dom.Box{Left: float64(100 + 200*i), Top: 50, Width: 40, Height: 20})
		para.AppendChild(a)
		links = append(links, a)
	}

	r := newTestRegistry()
	created, err := AutoInit(context.Background(), r, doc)
	if err != nil {
		t.Fatalf("AutoInit() error: %v", err)
	}
	if len(created) != 3 || r.Len() != 3 {
		t.Fatalf("created %d (registry %d), want 3", len(created), r.Len())
	}
	for i, tt := range created {
		if tt.State() == StateDestroyed {
			t.Errorf("created[%d] is destroyed", i)
		}
		if tt.Anchor() != links[i] || links[i].NextSibling() != tt.Popup() {
			t.Errorf("created[%d] not attached after its own anchor", i)
		}
	}
}

func TestLiveOnly(t *testing.T) {
	p := newPage(t)
	r := newTestRegistry()
	kept := mustCreate(t, r, p.anchor, nil)
	gone := mustCreate(t, r, p.addAnchor("other", dom.Box{Left: 300, Top: 50, Width: 40, Height: 20}), nil)
	gone.Destroy()

	got := liveOnly([]*Tooltip{kept, gone})
	if len(got) != 1 || got[0] != kept {
		t.Errorf("liveOnly kept %d tooltips, want only the live one", len(got))
	}
}

func TestAutoInit_MalformedOptions(t *testing.T) {
	p := newPage(t)
	p.anchor.SetAttr(DataAttribute, "")

	bad := p.addAnchor("bad", dom.Box{Left: 300, Top: 50, Width: 40, Height: 20})
	bad.SetAttr(DataAttribute, `{"showOn":`)

	after := p.addAnchor("after", dom.Box{Left: 500, Top: 50, Width: 40, Height: 20})
	after.SetAttr(DataAttribute, "")

	r := newTestRegistry()
	created, err := AutoInit(context.Background(), r, p.doc)
	if errors.CodeOf(err) != "T020" {
		t.Fatalf("err = %v, want T020", err)
	}
	if len(created) != 1 || r.Len() != 1 {
		t.Errorf("created %d, want 1 (scan stops at the bad element)", len(created))
	}
}

func TestAutoInit_Empty(t *testing.T) {
	created, err := AutoInit(context.Background(), newTestRegistry(), dom.NewDocument())
	if err != nil || len(created) != 0 {
		t.Errorf("AutoInit() = %v, %v", created, err)
	}
}

func TestEncodeOptions(t *testing.T) {
	in := &Options{Orientation: OrientationLeft, ShowOn: ShowOnClick, CloseIcon: Bool(false)}
	raw, err := EncodeOptions(in)
	if err != nil {
		t.Fatal(err)
	}
	if raw != `{"orientation":"left","showOn":"click","closeIcon":false}` {
		t.Errorf("EncodeOptions = %s", raw)
	}

	out, err := ParseOptions(raw)
	if err != nil {
		t.Fatal(err)
	}
	if DefaultConfig().Merge(out) != DefaultConfig().Merge(in) {
		t.Error("decoded options merge differently")
	}

	if raw, _ := EncodeOptions(nil); raw != "" {
		t.Errorf("EncodeOptions(nil) = %q", raw)
	}
}
