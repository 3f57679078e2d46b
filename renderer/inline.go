package renderer

import (
	"regexp"
	"strings"
)

var (
	codeSpanRe = regexp.MustCompile("`([^`]+)`")

	// Emphasis patterns run on already-escaped text, after inserted tags
	// may be present, so their content classes exclude '<' and '>' to keep
	// a span from swallowing markup.
	strongRe       = regexp.MustCompile(`\*\*([^<>]+?)\*\*`)
	emStarRe       = regexp.MustCompile(`\*([^*<>]+)\*`)
	emUnderscoreRe = regexp.MustCompile(`_([^_<>]+)_`)
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// escapeHTML escapes the HTML-significant characters so document text can
// never become live markup.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// renderInline translates the inline spans of one block line. Code spans
// are recognized on the raw text first and protected from emphasis
// substitution; everything is HTML-escaped before any tag is inserted, so
// inserted markup is never double-escaped. Unbalanced or unrecognized
// syntax stays behind as literal escaped text.
func renderInline(text string) string {
	var sb strings.Builder
	last := 0
	for _, m := range codeSpanRe.FindAllStringSubmatchIndex(text, -1) {
		sb.WriteString(renderEmphasis(text[last:m[0]]))
		sb.WriteString("<code>")
		sb.WriteString(escapeHTML(text[m[2]:m[3]]))
		sb.WriteString("</code>")
		last = m[1]
	}
	sb.WriteString(renderEmphasis(text[last:]))
	return sb.String()
}

// renderEmphasis escapes a code-free segment and applies emphasis markers,
// strong before em so "**" is never consumed as two "*" spans.
func renderEmphasis(text string) string {
	escaped := escapeHTML(text)
	escaped = strongRe.ReplaceAllString(escaped, "<strong>$1</strong>")
	escaped = emStarRe.ReplaceAllString(escaped, "<em>$1</em>")
	escaped = emUnderscoreRe.ReplaceAllString(escaped, "<em>$1</em>")
	return escaped
}
