// Package renderer converts combined markdown text into a single
// self-contained HTML document.
//
// Rendering is a single forward pass over lines. Block structure is
// recognized with prefix rules (first match wins), fenced code is handled
// by a small state machine, and inline markup is translated after HTML
// escaping. Malformed markdown never fails a render; it degrades to
// literal escaped text.
package renderer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Config holds renderer configuration.
type Config struct {
	// Title is placed in the head of the produced document.
	// Defaults to "Markdown Report".
	Title string
}

func (c Config) applyDefaults() Config {
	if c.Title == "" {
		c.Title = "Markdown Report"
	}
	return c
}

// Renderer converts combined markdown text to HTML.
type Renderer struct {
	config Config
}

// New creates a new Renderer with the given config.
func New(config Config) *Renderer {
	return &Renderer{config: config.applyDefaults()}
}

// Render takes combined markdown text and returns a complete HTML5
// document. It fails only when the input is not representable as text;
// content-shape anomalies degrade gracefully and at most produce warnings.
func (r *Renderer) Render(combined string) (Result, error) {
	if !utf8.ValidString(combined) {
		return Result{}, fmt.Errorf("input is not valid UTF-8 text")
	}

	s := &state{}
	for i, raw := range strings.Split(combined, "\n") {
		s.feed(i+1, strings.TrimSuffix(raw, "\r"))
	}
	s.finish()

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + escapeHTML(r.config.Title) + "</title>\n")
	sb.WriteString("</head>\n")
	sb.WriteString("<body>\n")
	sb.WriteString(s.body.String())
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return Result{
		HTML:     sb.String(),
		Warnings: s.warnings,
	}, nil
}

// scanState tags the position of the scan relative to multi-line
// structures. Exactly one state is active per line.
type scanState int

const (
	stateOutside scanState = iota
	stateInsideFence
	stateInsideList
)

type state struct {
	body     strings.Builder
	scan     scanState
	listKind blockKind // valid only while scan == stateInsideList
	para     []string  // pending paragraph lines, joined on flush
	code     []string  // pending fenced lines, emitted verbatim-escaped
	fenceAt  int       // line number of the opening fence
	warnings []Warning
}

// feed dispatches one line through the state machine.
func (s *state) feed(lineNo int, raw string) {
	if s.scan == stateInsideFence {
		if isFenceLine(raw) {
			s.closeFence()
			return
		}
		s.code = append(s.code, raw)
		return
	}

	ln := classifyLine(raw)
	switch ln.kind {
	case blockBlank:
		s.closeParagraph()
		s.closeList()

	case blockHeading:
		s.closeParagraph()
		s.closeList()
		fmt.Fprintf(&s.body, "<h%d>%s</h%d>\n", ln.level, renderInline(ln.text), ln.level)

	case blockFenceMarker:
		s.closeParagraph()
		s.closeList()
		s.scan = stateInsideFence
		s.fenceAt = lineNo

	case blockUnorderedItem, blockOrderedItem:
		s.closeParagraph()
		if s.scan == stateInsideList && s.listKind != ln.kind {
			s.closeList()
		}
		if s.scan != stateInsideList {
			s.body.WriteString(listOpenTag(ln.kind) + "\n")
			s.scan = stateInsideList
			s.listKind = ln.kind
		}
		s.body.WriteString("<li>" + renderInline(ln.text) + "</li>\n")

	case blockParagraph:
		// A non-item line ends the current list before the paragraph
		// starts; the two never merge into one element.
		s.closeList()
		s.para = append(s.para, ln.text)
	}
}

// finish closes whatever structure is still open at end of input. An
// unterminated fence closes implicitly and is reported as a warning, not an
// error.
func (s *state) finish() {
	if s.scan == stateInsideFence {
		s.warnings = append(s.warnings, Warning{
			Type:    WarningUnterminatedFence,
			Line:    s.fenceAt,
			Message: "code fence not closed before end of input",
		})
		s.closeFence()
	}
	s.closeParagraph()
	s.closeList()
}

func (s *state) closeParagraph() {
	if len(s.para) == 0 {
		return
	}
	rendered := make([]string, len(s.para))
	for i, l := range s.para {
		rendered[i] = renderInline(l)
	}
	s.body.WriteString("<p>" + strings.Join(rendered, "\n") + "</p>\n")
	s.para = nil
}

func (s *state) closeList() {
	if s.scan != stateInsideList {
		return
	}
	s.body.WriteString(listCloseTag(s.listKind) + "\n")
	s.scan = stateOutside
}

func (s *state) closeFence() {
	s.body.WriteString("<pre><code>")
	for _, l := range s.code {
		s.body.WriteString(escapeHTML(l))
		s.body.WriteString("\n")
	}
	s.body.WriteString("</code></pre>\n")
	s.code = nil
	s.scan = stateOutside
}

func listOpenTag(kind blockKind) string {
	if kind == blockOrderedItem {
		return "<ol>"
	}
	return "<ul>"
}

func listCloseTag(kind blockKind) string {
	if kind == blockOrderedItem {
		return "</ol>"
	}
	return "</ul>"
}
