// extension.go registers the directive parsers and renderer with goldmark.
package md

import (
	"bytes"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Parser priorities; goldmark runs lower values first.
// Fenced code is 700, paragraph 1000, emphasis 500.
const (
	blockParserPriority    = 650 // before fenced code so ::: is not swallowed
	tipBlockParserPriority = 950 // before paragraph
	inlineParserPriority   = 450 // before emphasis
	rendererPriority       = 500
)

var linesKey = parser.NewContextKey()

// documentLines returns the line table for the document being parsed,
// building it once per parser.Context.
func documentLines(reader text.Reader, pc parser.Context) *Lines {
	if l, ok := pc.Get(linesKey).(*Lines); ok {
		return l
	}
	l := NewLines(string(reader.Source()))
	pc.Set(linesKey, l)
	return l
}

// consumeLines advances reader over n lines, leaving it at the end of the
// last consumed line so goldmark's own AdvanceLine moves past it.
func consumeLines(reader text.Reader, n int) {
	for i := 1; i < n; i++ {
		reader.AdvanceLine()
	}
	line, _ := reader.PeekLine()
	if l := len(line); l > 0 {
		if line[l-1] == '\n' {
			l--
		}
		reader.Advance(l)
	}
}

type blockParser struct {
	dt DirectiveType
}

// NewBlockParser returns a goldmark BlockParser for the ::: container named tag.
func NewBlockParser(tag string) parser.BlockParser {
	dt, ok := LookupDirective(tag)
	if !ok {
		dt = DirectiveType{Tag: tag, Syntax: SyntaxBlock}
	}
	return &blockParser{dt: dt}
}

func (p *blockParser) Trigger() []byte {
	return []byte{':'}
}

func (p *blockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	_, segment := reader.PeekLine()
	lines := documentLines(reader, pc)
	start := lines.LineAt(segment.Start)

	m, ok := MatchBlock(lines, start, lines.Len(), p.dt.Tag)
	if !ok {
		return nil, parser.NoChildren
	}

	content := lines.Extract(m.Start, m.End, lines.Indent(m.Start))
	node := NewBlockDirective(p.dt, m, Tokenize(m.RawParams), content)
	consumeLines(reader, m.End-m.Start+1)
	return node, parser.NoChildren
}

func (p *blockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	return parser.Close
}

func (p *blockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *blockParser) CanInterruptParagraph() bool {
	return true
}

func (p *blockParser) CanAcceptIndentedLine() bool {
	return false
}

type tipBlockParser struct {
	dt DirectiveType
}

// NewTipBlockParser returns a BlockParser for tooltips that occupy whole lines.
// It declines whenever text follows the close tag, leaving the span to the
// inline parser inside an ordinary paragraph.
func NewTipBlockParser(tag string) parser.BlockParser {
	dt, ok := LookupDirective(tag)
	if !ok {
		dt = DirectiveType{Tag: tag, Syntax: SyntaxInline, Bodyless: true}
	}
	return &tipBlockParser{dt: dt}
}

func (p *tipBlockParser) Trigger() []byte {
	return []byte{'{'}
}

func (p *tipBlockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	_, segment := reader.PeekLine()
	lines := documentLines(reader, pc)
	start := lines.LineAt(segment.Start)

	m, _, ok := MatchTipBlock(lines, start, lines.Len(), p.dt.Tag)
	if !ok {
		return nil, parser.NoChildren
	}

	node := NewBlockDirective(p.dt, m, Tokenize(m.RawParams), nil)
	consumeLines(reader, m.End-m.Start+1)
	return node, parser.NoChildren
}

func (p *tipBlockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	return parser.Close
}

func (p *tipBlockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *tipBlockParser) CanInterruptParagraph() bool {
	return false
}

func (p *tipBlockParser) CanAcceptIndentedLine() bool {
	return false
}

type inlineParser struct {
	dt DirectiveType
}

// NewInlineParser returns a goldmark InlineParser for {tag ...}...{/tag}.
// The close tag may follow on the same line or a later line of the paragraph.
func NewInlineParser(tag string) parser.InlineParser {
	dt, ok := LookupDirective(tag)
	if !ok {
		dt = DirectiveType{Tag: tag, Syntax: SyntaxInline}
	}
	return &inlineParser{dt: dt}
}

func (p *inlineParser) Trigger() []byte {
	return []byte{'{'}
}

func (p *inlineParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	src, segment := paragraphRest(block)

	var (
		m  InlineMatch
		ok bool
	)
	if p.dt.Bodyless {
		m, ok = MatchInlineBodyless(src, 0, p.dt.Tag)
	} else {
		m, ok = MatchInline(src, 0, p.dt.Tag)
	}
	if !ok {
		return nil
	}

	advanceText(block, m.Len())
	return NewInlineDirective(p.dt, m, Tokenize(m.RawParams), segment.Start)
}

// paragraphRest joins the text from the reader's position to the end of the
// paragraph and leaves the position unchanged.
func paragraphRest(block text.Reader) (string, text.Segment) {
	lineNo, pos := block.Position()
	line, segment := block.PeekLine()

	var sb strings.Builder
	for line != nil {
		sb.Write(line)
		block.AdvanceLine()
		line, _ = block.PeekLine()
	}
	block.SetPosition(lineNo, pos)
	return sb.String(), segment
}

// advanceText moves the reader n bytes through the text paragraphRest
// returned, stepping over the indentation goldmark trims from each line.
func advanceText(block text.Reader, n int) {
	for n > 0 {
		line, _ := block.PeekLine()
		if line == nil {
			return
		}
		if n <= len(line) {
			block.Advance(n)
			return
		}
		n -= len(line)
		block.AdvanceLine()
	}
}

// IDGenerator returns a fresh tooltip id.
type IDGenerator func() string

// UUIDTipIDs generates "tip-<uuid>" ids.
func UUIDTipIDs() string {
	return "tip-" + uuid.NewString()
}

type directiveExtender struct {
	cfg config
}

// NewExtension returns the goldmark extension that adds folding, hidden,
// hide and tip directives. WithGFM and WithUnsafeHTML apply to the
// instance that renders {hide} bodies.
func NewExtension(opts ...Option) goldmark.Extender {
	return &directiveExtender{cfg: newConfig(opts)}
}

// Extend implements goldmark.Extender.
func (e *directiveExtender) Extend(m goldmark.Markdown) {
	var blockParsers []util.PrioritizedValue
	if !e.cfg.inlineOnly {
		blockParsers = []util.PrioritizedValue{
			util.Prioritized(NewBlockParser("folding"), blockParserPriority),
			util.Prioritized(NewBlockParser("hidden"), blockParserPriority),
			util.Prioritized(NewTipBlockParser("tip"), tipBlockParserPriority),
		}
	}
	m.Parser().AddOptions(
		parser.WithBlockParsers(blockParsers...),
		parser.WithInlineParsers(
			util.Prioritized(NewInlineParser("hide"), inlineParserPriority),
			util.Prioritized(NewInlineParser("tip"), inlineParserPriority),
		),
	)

	inline := func() goldmark.Markdown { return m }
	if !e.cfg.inlineOnly {
		cfg := e.cfg
		cfg.inlineOnly = true
		inline = sync.OnceValue(func() goldmark.Markdown { return newMarkdown(cfg) })
	}
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&nodeRenderer{md: m, inline: inline, tipIDs: e.cfg.tipIDs}, rendererPriority),
		),
	)
}

// nodeRenderer renders directive nodes. Bodies are converted with the same
// goldmark instance, so directives nest through ordinary recursion. {hide}
// bodies go through an inline-only instance instead.
type nodeRenderer struct {
	md     goldmark.Markdown
	inline func() goldmark.Markdown
	tipIDs IDGenerator
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *nodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindBlockDirective, r.renderBlockDirective)
	reg.Register(KindInlineDirective, r.renderInlineDirective)
}

func (r *nodeRenderer) renderBlockDirective(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*BlockDirective)

	var frag Fragment
	switch n.Directive.Family {
	case FamilyFolding:
		opts := ParseFoldingOptions(n.Match.RawParams)
		title, body := SplitFoldingContent(n.Content)
		inner, err := r.convert(body)
		if err != nil {
			return ast.WalkStop, err
		}
		frag = RenderFolding(opts, title, inner, n.Match)
	case FamilyReveal:
		inner, err := r.convert(trimBlankLines(n.Content.String()))
		if err != nil {
			return ast.WalkStop, err
		}
		frag = RenderHiddenBlock(n.Params, inner, n.Match)
	case FamilyTooltip:
		frag = RenderTip(n.Params, r.nextTipID(), n.Match.Lines())
		frag.HTML += "\n"
	default:
		return ast.WalkSkipChildren, nil
	}

	_, _ = w.WriteString(frag.HTML)
	return ast.WalkSkipChildren, nil
}

func (r *nodeRenderer) renderInlineDirective(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*InlineDirective)

	var frag Fragment
	switch n.Directive.Family {
	case FamilyReveal:
		inner, err := convertWith(r.inline(), strings.TrimSpace(n.Match.Body))
		if err != nil {
			return ast.WalkStop, err
		}
		frag = RenderHideInline(n.Params, stripParagraph(inner), n.Match)
	case FamilyTooltip:
		frag = RenderTip(n.Params, r.nextTipID(), Range{Start: n.Match.Start, End: n.Match.End})
	default:
		return ast.WalkSkipChildren, nil
	}

	_, _ = w.WriteString(frag.HTML)
	return ast.WalkSkipChildren, nil
}

func (r *nodeRenderer) convert(body string) (string, error) {
	return convertWith(r.md, body)
}

func convertWith(m goldmark.Markdown, body string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := m.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *nodeRenderer) nextTipID() string {
	if r.tipIDs == nil {
		return ""
	}
	return r.tipIDs()
}
