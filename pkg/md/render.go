// render.go holds helpers shared by the directive renderers.
package md

import (
	"strings"

	"github.com/yuin/goldmark/util"
)

// escape applies the host's HTML escaping to s.
func escape(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}

// styleAttr renders ` style="..."` from the non-empty declarations, or "".
// Values are escaped but otherwise taken as written.
func styleAttr(decls ...string) string {
	var parts []string
	for _, d := range decls {
		if d != "" {
			parts = append(parts, d)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return ` style="` + escape(strings.Join(parts, ";")) + `"`
}

// declaration returns "property: value", or "" when value is empty.
func declaration(property, value string) string {
	if value == "" {
		return ""
	}
	return property + ": " + value
}

// stripParagraph removes the single <p>...</p> wrapper goldmark puts around
// inline-only content, so a recursively rendered span can sit inside a line.
func stripParagraph(html string) string {
	trimmed := strings.TrimSpace(html)
	if strings.HasPrefix(trimmed, "<p>") && strings.HasSuffix(trimmed, "</p>") &&
		strings.Count(trimmed, "<p>") == 1 {
		return trimmed[len("<p>") : len(trimmed)-len("</p>")]
	}
	return trimmed
}
