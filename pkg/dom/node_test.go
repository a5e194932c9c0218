package dom

import "testing"

func TestNodeKind_String(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{NodeKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("NodeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestInsertBeforeAndSiblings(t *testing.T) {
	d := NewDocument()
	a := d.CreateElement("span")
	b := d.CreateElement("span")
	c := d.CreateElement("span")

	d.Body().AppendChild(a)
	d.Body().AppendChild(c)
	d.Body().InsertBefore(b, c)

	kids := d.Body().Children()
	if len(kids) != 3 || kids[0] != a || kids[1] != b || kids[2] != c {
		t.Fatalf("unexpected order: %v", kids)
	}
	if a.NextSibling() != b || b.NextSibling() != c || c.NextSibling() != nil {
		t.Error("NextSibling chain broken")
	}

	// InsertBefore with nil ref appends.
	d.Body().InsertBefore(a, nil)
	if d.Body().Children()[2] != a {
		t.Error("InsertBefore(nil) should append")
	}
}

func TestAppendChildMovesNode(t *testing.T) {
	d := NewDocument()
	p1 := d.CreateElement("div")
	p2 := d.CreateElement("div")
	child := d.CreateElement("p")
	p1.AppendChild(child)
	p2.AppendChild(child)

	if len(p1.Children()) != 0 {
		t.Error("child should be detached from the old parent")
	}
	if child.Parent() != p2 {
		t.Error("child should belong to the new parent")
	}
}

func TestRemove(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")
	d.Body().AppendChild(el)

	if !el.IsConnected() {
		t.Fatal("expected element to be connected")
	}
	el.Remove()
	if el.IsConnected() || el.Parent() != nil {
		t.Error("Remove should detach the element")
	}
	el.Remove() // no-op
	if d.Body().RemoveChild(el) {
		t.Error("RemoveChild of a non-child should report false")
	}
}

func TestClassList(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")
	el.SetClassName("top  tooltip darkgrey")

	if el.ClassName() != "top tooltip darkgrey" {
		t.Errorf("ClassName() = %q", el.ClassName())
	}
	el.AddClass("tooltip", "error")
	el.RemoveClass("top")
	if el.ClassName() != "tooltip darkgrey error" {
		t.Errorf("ClassName() = %q", el.ClassName())
	}
	if !el.HasClass("error") || el.HasClass("top") || el.HasClass("") {
		t.Error("HasClass mismatch")
	}
	if v, ok := el.Attr("class"); !ok || v != "tooltip darkgrey error" {
		t.Errorf("Attr(class) = %q, %v", v, ok)
	}
}

func TestAttributes(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("A")
	el.SetAttr("href", "#")
	el.SetAttr("id", "close")
	el.SetAttr("style", "left: 10px; visibility: hidden")

	if el.Tag != "a" {
		t.Errorf("Tag = %q, want lowercased", el.Tag)
	}
	if el.ID() != "close" {
		t.Errorf("ID() = %q", el.ID())
	}
	if got := el.AttrNames(); len(got) != 2 || got[0] != "href" || got[1] != "id" {
		t.Errorf("AttrNames() = %v", got)
	}
	if el.Style().Get("visibility") != "hidden" {
		t.Error("style attribute should populate Style")
	}
	el.RemoveAttr("href")
	if el.HasAttr("href") {
		t.Error("RemoveAttr failed")
	}
}

func TestQueries(t *testing.T) {
	d := NewDocument()
	wrap := d.CreateElement("div")
	a := d.CreateElement("button")
	a.SetAttr("id", "a")
	a.SetAttr("data-tooltip", "")
	b := d.CreateElement("input")
	b.SetAttr("data-tooltip", `{"showOn":"focus"}`)
	b.AddClass("field")
	wrap.AppendChild(a)
	wrap.AppendChild(b)
	d.Body().AppendChild(wrap)

	if got := d.QueryAttr("data-tooltip"); len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("QueryAttr() = %v", got)
	}
	if d.GetElementByID("a") != a {
		t.Error("GetElementByID failed")
	}
	if d.GetElementByID("missing") != nil {
		t.Error("GetElementByID should return nil for missing ids")
	}
	if got := d.QueryClass("field"); len(got) != 1 || got[0] != b {
		t.Errorf("QueryClass() = %v", got)
	}
	if got := wrap.ChildrenWithClass("field"); len(got) != 1 {
		t.Errorf("ChildrenWithClass() = %v", got)
	}
}

func TestTextContentAndString(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")
	el.SetAttr("id", "tip")
	el.AddClass("tooltip")
	el.AppendChild(d.CreateText("Hello "))
	inner := d.CreateElement("b")
	inner.AppendChild(d.CreateText("world"))
	el.AppendChild(inner)

	if el.TextContent() != "Hello world" {
		t.Errorf("TextContent() = %q", el.TextContent())
	}
	if el.String() != "div#tip.tooltip" {
		t.Errorf("String() = %q", el.String())
	}
	var nilEl *Element
	if nilEl.String() != "<nil>" {
		t.Error("nil String() mismatch")
	}
}
