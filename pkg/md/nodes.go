// nodes.go defines the goldmark AST nodes produced by the directive parsers.
package md

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
)

// KindBlockDirective is the NodeKind of BlockDirective.
var KindBlockDirective = ast.NewNodeKind("BlockDirective")

// BlockDirective is a matched line-oriented directive: a ::: container or a
// whole-line tooltip. Its body is kept as raw Markdown and rendered
// recursively, so the node has no children.
type BlockDirective struct {
	ast.BaseBlock
	Directive DirectiveType
	Match     DirectiveMatch
	Params    Params
	Content   ContentSlice
}

// Kind implements ast.Node.
func (n *BlockDirective) Kind() ast.NodeKind {
	return KindBlockDirective
}

// Dump implements ast.Node.
func (n *BlockDirective) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Tag":    n.Directive.Tag,
		"Params": n.Match.RawParams,
		"Start":  strconv.Itoa(n.Match.Start),
		"End":    strconv.Itoa(n.Match.End),
	}, nil)
}

// NewBlockDirective returns a BlockDirective node.
func NewBlockDirective(dt DirectiveType, m DirectiveMatch, params Params, content ContentSlice) *BlockDirective {
	return &BlockDirective{
		Directive: dt,
		Match:     m,
		Params:    params,
		Content:   content,
	}
}

// KindInlineDirective is the NodeKind of InlineDirective.
var KindInlineDirective = ast.NewNodeKind("InlineDirective")

// InlineDirective is a matched {tag ...}...{/tag} span.
type InlineDirective struct {
	ast.BaseInline
	Directive DirectiveType
	Match     InlineMatch
	Params    Params
	Offset    int // byte offset of the opening '{' in the document source
}

// Kind implements ast.Node.
func (n *InlineDirective) Kind() ast.NodeKind {
	return KindInlineDirective
}

// Dump implements ast.Node.
func (n *InlineDirective) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Tag":    n.Directive.Tag,
		"Params": n.Match.RawParams,
		"Body":   n.Match.Body,
	}, nil)
}

// NewInlineDirective returns an InlineDirective node.
func NewInlineDirective(dt DirectiveType, m InlineMatch, params Params, offset int) *InlineDirective {
	return &InlineDirective{
		Directive: dt,
		Match:     m,
		Params:    params,
		Offset:    offset,
	}
}
