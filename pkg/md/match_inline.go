// match_inline.go matches {tag args}...{/tag} spans and whole-line tooltips.
package md

import "strings"

// MatchInline tries to match an inline directive named tag starting at pos in
// src. The opening span runs from '{' to the first '}' after the tag; the body
// runs from there to the first close tag. Same-tag spans do not nest: an inner
// opener is part of the outer body and the first close tag wins.
func MatchInline(src string, pos int, tag string) (InlineMatch, bool) {
	paramsStart, ok := matchInlineOpen(src, pos, tag)
	if !ok {
		return InlineMatch{}, false
	}

	openEnd := strings.IndexByte(src[paramsStart:], '}')
	if openEnd < 0 {
		return InlineMatch{}, false
	}
	openEnd += paramsStart

	closeTag := CloseTag(tag)
	closeIdx := strings.Index(src[openEnd+1:], closeTag)
	if closeIdx < 0 {
		return InlineMatch{}, false
	}
	closeIdx += openEnd + 1

	return InlineMatch{
		Tag:       tag,
		RawParams: strings.TrimSpace(src[paramsStart:openEnd]),
		Body:      src[openEnd+1 : closeIdx],
		Start:     pos,
		End:       closeIdx + len(closeTag),
	}, true
}

// MatchInlineBodyless matches a directive that carries everything in its
// parameters, such as {tip text=a content=b}{/tip}. The opening span must end
// with the '}' immediately before the first close tag, so parameter values may
// themselves contain '}'.
func MatchInlineBodyless(src string, pos int, tag string) (InlineMatch, bool) {
	paramsStart, ok := matchInlineOpen(src, pos, tag)
	if !ok {
		return InlineMatch{}, false
	}

	closeTag := CloseTag(tag)
	closeIdx := strings.Index(src[paramsStart:], closeTag)
	if closeIdx < 0 {
		return InlineMatch{}, false
	}
	closeIdx += paramsStart
	if closeIdx == paramsStart || src[closeIdx-1] != '}' {
		return InlineMatch{}, false
	}

	return InlineMatch{
		Tag:       tag,
		RawParams: strings.TrimSpace(src[paramsStart : closeIdx-1]),
		Start:     pos,
		End:       closeIdx + len(closeTag),
	}, true
}

// matchInlineOpen checks for '{' + tag + (space | '}') at pos and returns the
// offset just past the tag name.
func matchInlineOpen(src string, pos int, tag string) (int, bool) {
	if tag == "" || pos < 0 || pos >= len(src) || src[pos] != '{' {
		return 0, false
	}
	if !strings.HasPrefix(src[pos+1:], tag) {
		return 0, false
	}
	end := pos + 1 + len(tag)
	if end >= len(src) || (src[end] != ' ' && src[end] != '}') {
		return 0, false
	}
	return end, true
}

// MatchTipBlock matches a tooltip that occupies whole lines, starting on line
// start. The close tag must end its line; when text follows it the rule
// declines so the inline rule can claim the span inside a paragraph.
// The returned InlineMatch offsets are relative to the trimmed text of the
// matched lines; use DirectiveMatch for the line range.
func MatchTipBlock(lines *Lines, start, bound int, tag string) (DirectiveMatch, InlineMatch, bool) {
	if start < 0 || start >= lines.Len() {
		return DirectiveMatch{}, InlineMatch{}, false
	}
	bound = min(bound, lines.Len())

	first := lines.Text(start)
	if !strings.HasPrefix(first, "{"+tag) {
		return DirectiveMatch{}, InlineMatch{}, false
	}
	if len(first) > len(tag)+1 && first[len(tag)+1] != ' ' && first[len(tag)+1] != '}' {
		return DirectiveMatch{}, InlineMatch{}, false
	}

	closeTag := CloseTag(tag)
	end := -1
	for next := start; next < bound; next++ {
		line := lines.Raw(next)
		idx := strings.Index(line, closeTag)
		if idx < 0 {
			continue
		}
		if strings.TrimSpace(line[idx+len(closeTag):]) != "" {
			return DirectiveMatch{}, InlineMatch{}, false
		}
		end = next
		break
	}
	if end < 0 {
		return DirectiveMatch{}, InlineMatch{}, false
	}

	text := strings.TrimSpace(lines.Slice(start, end))
	span, ok := MatchInlineBodyless(text, 0, tag)
	if !ok {
		return DirectiveMatch{}, InlineMatch{}, false
	}

	return DirectiveMatch{
		Tag:       tag,
		RawParams: span.RawParams,
		Start:     start,
		End:       end,
		Depth:     1,
	}, span, true
}
