package render

import (
	"io"
	"strconv"

	"github.com/vango-dev/tooltip/pkg/dom"
)

// PageData describes the head of a rendered document.
type PageData struct {
	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS blocks.
	Styles []string
}

// RenderPage renders doc as a complete HTML document. The viewport meta
// records the document's window width so the output can be loaded back as
// a fixture with the same geometry.
func (r *Renderer) RenderPage(w io.Writer, doc *dom.Document, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	ew := &errWriter{w: w}
	ew.WriteString("<!DOCTYPE html>\n")
	ew.Printf(`<html lang="%s">`+"\n", escapeAttr(lang))
	r.renderHead(ew, doc, page)
	if ew.err != nil {
		return ew.err
	}

	if err := r.RenderToWriter(w, doc.Body()); err != nil {
		return err
	}
	if !r.config.Pretty {
		ew.WriteString("\n")
	}
	ew.WriteString("</html>\n")
	return ew.err
}

func (r *Renderer) renderHead(w *errWriter, doc *dom.Document, page PageData) {
	w.WriteString("<head>\n")
	w.WriteString(`<meta charset="utf-8">` + "\n")

	width := strconv.FormatFloat(doc.Window.InnerWidth, 'f', -1, 64)
	w.Printf(`<meta name="viewport" content="width=%s">`+"\n", width)

	if page.Title != "" {
		w.Printf("<title>%s</title>\n", escapeHTML(page.Title))
	}
	for _, href := range page.StyleSheets {
		w.Printf(`<link rel="stylesheet" href="%s">`+"\n", escapeAttr(href))
	}
	for _, css := range page.Styles {
		w.Printf("<style>%s</style>\n", css)
	}
	w.WriteString("</head>\n")
}
