// from_html.go flattens rendered directive widgets and converts HTML back to
// portable Markdown for hosts that do not understand directives.
package md

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ExportOptions configures the HTML to markdown conversion.
type ExportOptions struct {
	// ShowTooltips appends each tooltip's content in parentheses after its
	// trigger text instead of dropping it.
	ShowTooltips bool
}

var (
	tipPattern = regexp.MustCompile(
		`(?s)<span class="anzhiyu-tip-wrapper"[^>]*><span class="anzhiyu-tip-text"[^>]*>(.*?)</span>` +
			`<span class="anzhiyu-tip[^"]*"[^>]*>(.*?)</span></span>`)
	revealButtonPattern = regexp.MustCompile(`(?s)<button type="button" class="hide-button"[^>]*>.*?</button>`)
	hiddenStylePattern  = regexp.MustCompile(`class="hide-content" style="display: none;"`)
	summaryPattern      = regexp.MustCompile(`(?s)<summary[^>]*>\s*(.*?)\s*</summary>`)
	detailsOpenPattern  = regexp.MustCompile(`<details class="folding-tag[^>]*>`)
)

// FromHTML converts rendered HTML to markdown with default options.
func FromHTML(html string) (string, error) {
	return FromHTMLWithOptions(html, ExportOptions{})
}

// FromHTMLWithOptions converts rendered HTML to markdown. Directive widgets
// are flattened first: panels become a bold title plus their body, reveal
// buttons are removed and their content shown, tooltips become their trigger
// text.
func FromHTMLWithOptions(html string, opts ExportOptions) (string, error) {
	if html == "" {
		return "", nil
	}

	html = flattenDirectives(html, opts.ShowTooltips)

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markdown), nil
}

func flattenDirectives(html string, showTooltips bool) string {
	if showTooltips {
		html = tipPattern.ReplaceAllString(html, "$1 ($2)")
	} else {
		html = tipPattern.ReplaceAllString(html, "$1")
	}

	html = revealButtonPattern.ReplaceAllString(html, "")
	html = hiddenStylePattern.ReplaceAllString(html, `class="hide-content"`)

	html = summaryPattern.ReplaceAllString(html, "<p><strong>$1</strong></p>")
	html = detailsOpenPattern.ReplaceAllString(html, "<div>")
	html = strings.ReplaceAll(html, "</details>", "</div>")

	return html
}
