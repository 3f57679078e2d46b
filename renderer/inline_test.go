package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderInline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "hello world",
			expected: "hello world",
		},
		{
			name:     "bold",
			input:    "Hello **world**",
			expected: "Hello <strong>world</strong>",
		},
		{
			name:     "italic with star",
			input:    "Hello *world*",
			expected: "Hello <em>world</em>",
		},
		{
			name:     "italic with underscore",
			input:    "Hello _world_",
			expected: "Hello <em>world</em>",
		},
		{
			name:     "bold and italic in one line",
			input:    "**bold** and *italic*",
			expected: "<strong>bold</strong> and <em>italic</em>",
		},
		{
			name:     "inline code",
			input:    "run `go vet` first",
			expected: "run <code>go vet</code> first",
		},
		{
			name:     "code span protects emphasis markers",
			input:    "literal `**not bold**` here",
			expected: "literal <code>**not bold**</code> here",
		},
		{
			name:     "code span content is escaped",
			input:    "compare `a < b && b > c`",
			expected: "compare <code>a &lt; b &amp;&amp; b &gt; c</code>",
		},
		{
			name:     "escaping happens before markup insertion",
			input:    "1 < 2 & **2 > 1**",
			expected: "1 &lt; 2 &amp; <strong>2 &gt; 1</strong>",
		},
		{
			name:     "script tag becomes literal text",
			input:    "<script>alert(1)</script>",
			expected: "&lt;script&gt;alert(1)&lt;/script&gt;",
		},
		{
			name:     "unclosed bold stays literal",
			input:    "**never closed",
			expected: "**never closed",
		},
		{
			name:     "unclosed italic stays literal",
			input:    "*never closed",
			expected: "*never closed",
		},
		{
			name:     "unclosed backtick stays literal",
			input:    "a `b c",
			expected: "a `b c",
		},
		{
			name:     "lone markers stay literal",
			input:    "a * b _ c",
			expected: "a * b _ c",
		},
		{
			name:     "two code spans",
			input:    "`one` and `two`",
			expected: "<code>one</code> and <code>two</code>",
		},
		{
			name:     "emphasis between code spans",
			input:    "`a` *x* `b`",
			expected: "<code>a</code> <em>x</em> <code>b</code>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderInline(tt.input))
		})
	}
}
