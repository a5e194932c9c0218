package errors

import (
	"fmt"
	"io"
	"strings"
)

// ANSI escape sequences.
const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiCyan  = "\033[36m"
	ansiGray  = "\033[90m"
	ansiBold  = "\033[1m"
)

// detailWidth is the wrap column for Detail in Format.
const detailWidth = 70

var colorEnabled = true

// DisableColors turns off ANSI sequences in Format and PrintError, for
// logs and non-terminal output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors turns ANSI sequences back on.
func EnableColors() {
	colorEnabled = true
}

func paint(text string, codes ...string) string {
	if !colorEnabled || len(codes) == 0 {
		return text
	}
	return strings.Join(codes, "") + text + ansiReset
}

// Format renders the error as an indented terminal block: a header line,
// the wrapped detail, then cause and hint lines when present.
func (e *TooltipError) Format() string {
	var b strings.Builder

	header := "ERROR: "
	if e.Code != "" {
		header = "ERROR " + e.Code + ": "
	}
	fmt.Fprintf(&b, "\n%s%s\n\n", paint(header, ansiRed, ansiBold), paint(e.Message, ansiBold))

	if lines := wrapText(e.Detail, detailWidth); len(lines) > 0 {
		for _, line := range lines {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n\n", paint("Cause: ", ansiGray), e.Wrapped)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", paint("Hint: ", ansiCyan), e.Suggestion)
	}
	return b.String()
}

// FormatCompact renders "CODE: Message (Detail)" on one line.
func (e *TooltipError) FormatCompact() string {
	s := e.Message
	if e.Code != "" {
		s = e.Code + ": " + s
	}
	if e.Detail != "" {
		s += " (" + e.Detail + ")"
	}
	return s
}

// wrapText breaks text on spaces into lines of at most width bytes. A word
// longer than width gets a line of its own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	lines := []string{words[0]}
	for _, w := range words[1:] {
		last := &lines[len(lines)-1]
		if len(*last)+1+len(w) > width {
			lines = append(lines, w)
			continue
		}
		*last += " " + w
	}
	return lines
}

// PrintError writes err to w, using Format for coded errors.
func PrintError(w io.Writer, err error) {
	if te := FromError(err, ""); te != nil && te.Code != "" {
		io.WriteString(w, te.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", paint("ERROR:", ansiRed, ansiBold), err)
}
