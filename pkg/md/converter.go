// Package md renders Markdown with directive extensions to HTML.
//
// Directives come in two shapes:
//
//	:::folding open #409EFF          block container, closed by a bare :::
//	Title
//	Body
//	:::
//
//	{tip text=Hover content="Shown on hover"}{/tip}    inline span
//
// Malformed directives are never errors: they fall through to ordinary
// Markdown and render as plain text.
package md

import (
	"bytes"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Option configures New and NewExtension.
type Option func(*config)

type config struct {
	gfm    bool
	unsafe bool
	tipIDs IDGenerator

	// inlineOnly builds an instance that knows no block syntax, used to
	// render {hide} bodies as phrasing content.
	inlineOnly bool
}

func newConfig(opts []Option) config {
	cfg := config{
		gfm:    true,
		tipIDs: UUIDTipIDs,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithGFM toggles GitHub Flavored Markdown (tables, strikethrough, task
// lists, autolinks). Enabled by default.
func WithGFM(enabled bool) Option {
	return func(c *config) {
		c.gfm = enabled
	}
}

// WithUnsafeHTML lets raw HTML in the source through the host renderer.
// By default goldmark replaces it with a comment.
func WithUnsafeHTML(enabled bool) Option {
	return func(c *config) {
		c.unsafe = enabled
	}
}

// WithTipIDs sets the tooltip id generator; nil omits data-tip-id.
func WithTipIDs(gen IDGenerator) Option {
	return func(c *config) {
		c.tipIDs = gen
	}
}

// New returns a goldmark instance with the directive extension installed.
func New(opts ...Option) goldmark.Markdown {
	return newMarkdown(newConfig(opts))
}

func newMarkdown(cfg config) goldmark.Markdown {
	extensions := []goldmark.Extender{&directiveExtender{cfg: cfg}}
	switch {
	case cfg.inlineOnly && cfg.gfm:
		extensions = append(extensions, extension.Strikethrough, extension.Linkify)
	case cfg.gfm:
		extensions = append(extensions, extension.GFM)
	}

	var rendererOpts []renderer.Option
	if cfg.unsafe {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	var gmOpts []goldmark.Option
	if cfg.inlineOnly {
		gmOpts = append(gmOpts, goldmark.WithParser(inlineOnlyParser()))
	}
	gmOpts = append(gmOpts,
		goldmark.WithExtensions(extensions...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return goldmark.New(gmOpts...)
}

// inlineOnlyParser treats every non-blank line as paragraph text, so
// headings, lists and quotes stay literal.
func inlineOnlyParser() parser.Parser {
	return parser.NewParser(
		parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
		parser.WithParagraphTransformers(parser.DefaultParagraphTransformers()...),
	)
}

// defaultMarkdown is built on first use. Building it during package
// initialization would run Extend before DirectiveRegistry is populated.
var defaultMarkdown = sync.OnceValue(func() goldmark.Markdown { return New() })

// ToHTML converts markdown with directives to HTML using the default options.
func ToHTML(markdown []byte) (string, error) {
	return Convert(defaultMarkdown(), markdown)
}

// Convert renders markdown with the given goldmark instance.
func Convert(m goldmark.Markdown, markdown []byte) (string, error) {
	if len(markdown) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := m.Convert(markdown, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
