// Package render serializes dom trees to HTML.
//
// It is used to snapshot a page after tooltips have been created and
// events applied, so the popup markup and its inline placement can be
// inspected or diffed.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(doc.Body())
//
// A full document with head and viewport meta:
//
//	err := renderer.RenderPage(w, doc, render.PageData{Title: "Form"})
//
// # Output
//
// Attributes are written in name order, with class and style included, so
// output is deterministic. Text is always escaped. With RendererConfig.Boxes
// set, explicitly sized elements carry a data-box attribute in the format
// the fixture loader reads back.
package render
