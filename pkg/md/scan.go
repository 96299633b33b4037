// scan.go lists the directives in a document without rendering it.
package md

import (
	"fmt"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Directive describes one matched directive found by Scan.
// Line numbers are 1-based and inclusive.
type Directive struct {
	Tag       string            `json:"tag"`
	Family    Family            `json:"family"`
	Syntax    string            `json:"syntax"`
	Line      int               `json:"line"`
	EndLine   int               `json:"end_line"`
	Depth     int               `json:"depth,omitempty"`
	RawParams string            `json:"raw_params,omitempty"`
	Params    map[string]string `json:"params,omitempty"`
}

// ScanResult contains the directives found in a document, in source order,
// plus warnings about openers that did not form a directive.
type ScanResult struct {
	Directives []Directive `json:"directives"`
	Warnings   []string    `json:"warnings,omitempty"`
}

// AddWarning logs a warning and stores it in the result.
func (sr *ScanResult) AddWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	sr.Warnings = append(sr.Warnings, msg)
	log.Printf("WARN: "+format, args...)
}

// Count returns the number of directives per tag.
func (sr *ScanResult) Count() map[string]int {
	counts := make(map[string]int)
	for _, d := range sr.Directives {
		counts[d.Tag]++
	}
	return counts
}

// Scan parses markdown with the default options and reports every directive,
// including those nested inside container bodies.
func Scan(markdown []byte) *ScanResult {
	return ScanWith(defaultMarkdown(), markdown)
}

// ScanWith is Scan with a caller-supplied goldmark instance.
func ScanWith(m goldmark.Markdown, markdown []byte) *ScanResult {
	result := &ScanResult{}
	scanInto(m, markdown, 0, result)
	return result
}

// scanInto parses src and appends its directives. lineOffset maps line 0 of
// src to its line in the top-level document.
func scanInto(m goldmark.Markdown, src []byte, lineOffset int, result *ScanResult) {
	lines := NewLines(string(src))
	doc := m.Parser().Parse(text.NewReader(src))

	claimed := make([]bool, lines.Len())
	claim := func(from, to int) {
		for i := max(from, 0); i <= to && i < len(claimed); i++ {
			claimed[i] = true
		}
	}

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *BlockDirective:
			result.Directives = append(result.Directives, Directive{
				Tag:       n.Directive.Tag,
				Family:    n.Directive.Family,
				Syntax:    SyntaxBlock.String(),
				Line:      n.Match.Start + lineOffset + 1,
				EndLine:   n.Match.End + lineOffset + 1,
				Depth:     n.Match.Depth,
				RawParams: n.Match.RawParams,
				Params:    n.Params.Map(),
			})
			claim(n.Match.Start, n.Match.End)
			if len(n.Content) > 0 {
				scanInto(m, []byte(n.Content.String()), lineOffset+n.Match.Start+1, result)
			}
			return ast.WalkSkipChildren, nil
		case *InlineDirective:
			line := lines.LineAt(n.Offset) + lineOffset + 1
			result.Directives = append(result.Directives, Directive{
				Tag:       n.Directive.Tag,
				Family:    n.Directive.Family,
				Syntax:    SyntaxInline.String(),
				Line:      line,
				EndLine:   line,
				RawParams: n.Match.RawParams,
				Params:    n.Params.Map(),
			})
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			segs := node.Lines()
			if segs.Len() > 0 {
				first := lines.LineAt(segs.At(0).Start)
				last := lines.LineAt(segs.At(segs.Len() - 1).Start)
				claim(first-1, last+1)
			}
		}
		return ast.WalkContinue, nil
	})

	for i := 0; i < lines.Len(); i++ {
		if claimed[i] {
			continue
		}
		tag := OpenerTag(lines.Raw(i))
		if dt, ok := LookupDirective(tag); ok && dt.Syntax == SyntaxBlock {
			result.AddWarning("line %d: unterminated :::%s directive rendered as text", i+lineOffset+1, tag)
		}
	}
}
