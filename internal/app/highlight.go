package app

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// diffHighlighter colorizes unified diff output for the status pager.
type diffHighlighter struct {
	style *chroma.Style
	lexer chroma.Lexer
}

func newDiffHighlighter() *diffHighlighter {
	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	return &diffHighlighter{
		style: style,
		lexer: lexers.Get("diff"),
	}
}

// Highlight returns src with ANSI styling applied. On any tokenizer
// problem the input passes through unchanged.
func (h *diffHighlighter) Highlight(src string) string {
	if h == nil || h.lexer == nil || src == "" {
		return src
	}
	iterator, err := h.lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var result strings.Builder
	for _, token := range iterator.Tokens() {
		result.WriteString(h.styleToken(token))
	}
	out := result.String()
	// The diff lexer appends a newline to unterminated input.
	if !strings.HasSuffix(src, "\n") {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

// styleToken applies lipgloss styling to a chroma token.
func (h *diffHighlighter) styleToken(token chroma.Token) string {
	content := token.Value
	entry := h.style.Get(token.Type)
	if entry == (chroma.StyleEntry{}) {
		return content
	}

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		colour := entry.Colour.String()
		if strings.HasPrefix(colour, "#") {
			style = style.Foreground(lipgloss.Color(colour))
		}
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style.Render(content)
}
