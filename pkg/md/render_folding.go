// render_folding.go renders :::folding collapsible panels.
package md

import (
	"regexp"
	"strings"
)

// DefaultFoldingTitle is used when the first body line is empty.
const DefaultFoldingTitle = "折叠框"

var hexColorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ValidHexColor reports whether s is a 3- or 6-digit hex color such as #abc or #AABBCC.
func ValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// FoldingOptions are the bare-word arguments of a folding opener,
// e.g. ":::folding open #409EFF".
type FoldingOptions struct {
	Open  bool
	Color string // validated hex color, or ""
}

// ParseFoldingOptions reads whitespace-separated flags. "open" sets Open; a
// valid hex color sets Color (the last one wins). Anything else is ignored.
func ParseFoldingOptions(raw string) FoldingOptions {
	var opts FoldingOptions
	for _, part := range strings.Fields(raw) {
		switch {
		case part == "open":
			opts.Open = true
		case ValidHexColor(part):
			opts.Color = part
		}
	}
	return opts
}

// SplitFoldingContent takes the first content line as the panel title and
// returns the remaining lines as the Markdown body.
func SplitFoldingContent(content ContentSlice) (title, body string) {
	if len(content) > 0 {
		title = strings.TrimSpace(content[0].Text)
	}
	if title == "" {
		title = DefaultFoldingTitle
	}
	if len(content) > 1 {
		body = trimBlankLines(content[1:].String())
	}
	return title, body
}

// RenderFolding renders a collapsible panel. innerHTML is the already
// rendered body. Interaction (summary background on hover and toggle) is
// driven by data-color through the client script, never inline handlers.
func RenderFolding(opts FoldingOptions, title, innerHTML string, m DirectiveMatch) Fragment {
	var sb strings.Builder

	sb.WriteString(`<details class="folding-tag`)
	if opts.Color != "" {
		sb.WriteString(` custom-color`)
	}
	sb.WriteString(`"`)
	if opts.Open {
		sb.WriteString(` open=""`)
	}
	if opts.Color != "" {
		sb.WriteString(styleAttr(declaration("border-color", opts.Color) + ";"))
		sb.WriteString(` data-color="`)
		sb.WriteString(escape(opts.Color))
		sb.WriteString(`"`)
	}
	sb.WriteString(">\n  <summary")
	if opts.Color != "" && opts.Open {
		sb.WriteString(styleAttr(declaration("background-color", opts.Color) + ";"))
	}
	sb.WriteString("> ")
	sb.WriteString(escape(title))
	sb.WriteString(" </summary>\n  <div class=\"content\">\n")
	sb.WriteString(innerHTML)
	sb.WriteString("\n  </div>\n</details>\n")

	return Fragment{HTML: sb.String(), Consumed: m.Lines()}
}

// trimBlankLines drops leading and trailing blank lines and trailing
// whitespace while keeping the first line's indentation intact.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
