package tui

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlighter colors response bodies for the terminal
type highlighter struct {
	enabled   bool
	style     *chroma.Style
	formatter chroma.Formatter
}

func newHighlighter(enabled bool, theme string) *highlighter {
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}
	return &highlighter{
		enabled:   enabled,
		style:     styles.Get(theme),
		formatter: formatter,
	}
}

// Highlight returns text with terminal color codes, or text unchanged when
// highlighting is disabled or fails
func (h *highlighter) Highlight(text string) string {
	if !h.enabled || text == "" {
		return text
	}

	lexer := detectLexer(text)
	if lexer == nil {
		return text
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		return text
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return text
	}
	return buf.String()
}

// detectLexer picks a lexer for a response body, or nil when none fits
func detectLexer(text string) chroma.Lexer {
	trimmed := strings.TrimSpace(text)
	switch {
	case json.Valid([]byte(trimmed)):
		return lexers.Get("json")
	case strings.HasPrefix(trimmed, "<?xml"):
		return lexers.Get("xml")
	case strings.HasPrefix(trimmed, "<"):
		return lexers.Get("html")
	}
	return lexers.Analyse(text)
}

// prettyJSON indents a JSON body, leaving anything else unchanged
func prettyJSON(text string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return text
	}
	return buf.String()
}
