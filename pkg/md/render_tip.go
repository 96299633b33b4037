// render_tip.go renders {tip} tooltips.
package md

import "strings"

const (
	DefaultTipText    = "提示文本"
	DefaultTipContent = "这里是提示内容"
	DefaultTipDelay   = "0"

	TipPositionTop    = "top"
	TipPositionBottom = "bottom"
	TipPositionLeft   = "left"
	TipPositionRight  = "right"

	TipThemeDark    = "dark"
	TipThemeLight   = "light"
	TipThemeInfo    = "info"
	TipThemeWarning = "warning"
	TipThemeError   = "error"
	TipThemeSuccess = "success"

	TipTriggerHover = "hover"
	TipTriggerClick = "click"
)

// tipPositionStyles centres the tooltip on the side it opens towards.
var tipPositionStyles = map[string]string{
	TipPositionTop:    "bottom: 100%; left: 50%; transform: translateX(-50%) translateY(-8px);",
	TipPositionBottom: "top: 100%; left: 50%; transform: translateX(-50%) translateY(8px);",
	TipPositionLeft:   "right: 100%; top: 50%; transform: translateY(-50%) translateX(-8px);",
	TipPositionRight:  "left: 100%; top: 50%; transform: translateY(-50%) translateX(8px);",
}

var tipThemeStyles = map[string]string{
	TipThemeDark:    "background: #333; color: #fff;",
	TipThemeLight:   "background: #fff; color: #333; border: 1px solid #ddd;",
	TipThemeInfo:    "background: #3498db; color: #fff;",
	TipThemeWarning: "background: #f39c12; color: #fff;",
	TipThemeError:   "background: #e74c3c; color: #fff;",
	TipThemeSuccess: "background: #27ae60; color: #fff;",
}

const (
	tipWrapperStyle = "position: relative; display: inline-block; cursor: pointer;"
	tipTextStyle    = "border-bottom: 1px dashed currentColor; text-decoration: none;"
	tipBaseStyle    = "padding: 8px 12px; border-radius: 6px; font-size: 13px; line-height: 1.5; max-width: 300px; " +
		"width: max-content; text-align: center; white-space: pre-wrap; z-index: 1000; visibility: hidden; " +
		"opacity: 0; transition: opacity 0.2s, visibility 0.2s; pointer-events: none; box-shadow: 0 2px 8px rgba(0,0,0,0.15);"
)

// TipOptions are the recognised tooltip parameters with defaults applied.
type TipOptions struct {
	Text     string
	Content  string
	Position string
	Theme    string
	Trigger  string
	Delay    string
}

// ParseTipOptions reads a tooltip's parameters; missing or empty values take
// their defaults. Values are kept as written; unknown position and theme
// values fall back only when styles are resolved.
func ParseTipOptions(p Params) TipOptions {
	return TipOptions{
		Text:     p.Value("text", DefaultTipText),
		Content:  p.Value("content", DefaultTipContent),
		Position: p.Value("position", TipPositionTop),
		Theme:    p.Value("theme", TipThemeDark),
		Trigger:  p.Value("trigger", TipTriggerHover),
		Delay:    p.Value("delay", DefaultTipDelay),
	}
}

// PositionStyle returns the offset CSS for o.Position, defaulting to top.
func (o TipOptions) PositionStyle() string {
	if s, ok := tipPositionStyles[o.Position]; ok {
		return s
	}
	return tipPositionStyles[TipPositionTop]
}

// ThemeStyle returns the color CSS for o.Theme, defaulting to dark.
func (o TipOptions) ThemeStyle() string {
	if s, ok := tipThemeStyles[o.Theme]; ok {
		return s
	}
	return tipThemeStyles[TipThemeDark]
}

func (o TipOptions) classList() string {
	classes := []string{"anzhiyu-tip", "tip-" + o.Theme, "tip-" + o.Position}
	if o.Trigger == TipTriggerClick {
		classes = append(classes, "tip-click")
	}
	return strings.Join(classes, " ")
}

// RenderTip renders a tooltip wrapper. id becomes data-tip-id when non-empty.
// The tooltip span carries a data-* descriptor (position, theme, trigger,
// delay, visibility) read by the client interaction state machine.
func RenderTip(p Params, id string, consumed Range) Fragment {
	opts := ParseTipOptions(p)
	tooltipStyle := "position: absolute; " + opts.PositionStyle() + " " + opts.ThemeStyle() + " " + tipBaseStyle

	var sb strings.Builder
	sb.WriteString(`<span class="anzhiyu-tip-wrapper"`)
	if id != "" {
		sb.WriteString(` data-tip-id="`)
		sb.WriteString(escape(id))
		sb.WriteString(`"`)
	}
	sb.WriteString(` style="` + tipWrapperStyle + `">`)
	sb.WriteString(`<span class="anzhiyu-tip-text" style="` + tipTextStyle + `">`)
	sb.WriteString(escape(opts.Text))
	sb.WriteString(`</span>`)

	sb.WriteString(`<span class="`)
	sb.WriteString(escape(opts.classList()))
	sb.WriteString(`" data-content="`)
	sb.WriteString(escape(opts.Content))
	sb.WriteString(`" data-position="`)
	sb.WriteString(escape(opts.Position))
	sb.WriteString(`" data-theme="`)
	sb.WriteString(escape(opts.Theme))
	sb.WriteString(`" data-trigger="`)
	sb.WriteString(escape(opts.Trigger))
	sb.WriteString(`" data-delay="`)
	sb.WriteString(escape(opts.Delay))
	sb.WriteString(`" data-visible="false" role="tooltip" aria-hidden="true" style="`)
	sb.WriteString(tooltipStyle)
	sb.WriteString(`">`)
	sb.WriteString(escape(opts.Content))
	sb.WriteString(`</span></span>`)

	return Fragment{HTML: sb.String(), Consumed: consumed}
}
