// render_hide.go renders reveal-on-click content: :::hidden blocks and {hide} spans.
package md

import "strings"

const (
	DefaultHiddenBlockLabel  = "查看隐藏内容"
	DefaultHiddenInlineLabel = "查看"
)

// RevealOptions are the recognised parameters of hidden/hide.
type RevealOptions struct {
	Display string // button label
	Bg      string // free-form CSS color for the button background
	Color   string // free-form CSS color for the button text
}

func revealOptions(p Params, defaultLabel string) RevealOptions {
	return RevealOptions{
		Display: p.Value("display", defaultLabel),
		Bg:      p.Value("bg", ""),
		Color:   p.Value("color", ""),
	}
}

func (o RevealOptions) buttonStyle() string {
	return styleAttr(declaration("background-color", o.Bg), declaration("color", o.Color))
}

// RenderHiddenBlock renders a reveal button followed by a hidden block
// container holding innerHTML. The reveal is one-shot: the client script
// hides the button and shows the container; nothing toggles it back.
func RenderHiddenBlock(p Params, innerHTML string, m DirectiveMatch) Fragment {
	opts := revealOptions(p, DefaultHiddenBlockLabel)

	var sb strings.Builder
	sb.WriteString(`<div class="hide-block"><button type="button" class="hide-button"`)
	sb.WriteString(opts.buttonStyle())
	sb.WriteString(` data-reveal="block">`)
	sb.WriteString(escape(opts.Display))
	sb.WriteString("\n    </button><div class=\"hide-content\" style=\"display: none;\">\n")
	sb.WriteString(innerHTML)
	sb.WriteString("\n</div></div>\n")

	return Fragment{HTML: sb.String(), Consumed: m.Lines()}
}

// RenderHideInline renders the inline variant; innerHTML is inline markup.
func RenderHideInline(p Params, innerHTML string, m InlineMatch) Fragment {
	opts := revealOptions(p, DefaultHiddenInlineLabel)

	var sb strings.Builder
	sb.WriteString(`<span class="hide-inline"><button type="button" class="hide-button"`)
	sb.WriteString(opts.buttonStyle())
	sb.WriteString(` data-reveal="inline">`)
	sb.WriteString(escape(opts.Display))
	sb.WriteString(`  </button><span class="hide-content" style="display: none;">`)
	sb.WriteString(innerHTML)
	sb.WriteString(`</span></span>`)

	return Fragment{HTML: sb.String(), Consumed: Range{Start: m.Start, End: m.End}}
}
