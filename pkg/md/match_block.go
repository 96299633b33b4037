// match_block.go finds the closing marker of a :::tag block directive.
package md

import "strings"

// MatchBlock tries to match a block directive named tag whose opening marker
// is on line start. Lines at or beyond bound are not examined.
//
// Nesting is counted by marker shape only: any ":::"-prefixed line with
// trailing text opens a level, a bare ":::" closes one. Directive bodies may
// therefore hold other directive types as long as every marker is balanced.
//
// The match is declined (ok == false) when the opener does not name tag, a
// non-blank line is indented less than the opener, or the bound is reached
// before the outermost level closes.
func MatchBlock(lines *Lines, start, bound int, tag string) (DirectiveMatch, bool) {
	if start < 0 || start >= lines.Len() {
		return DirectiveMatch{}, false
	}
	bound = min(bound, lines.Len())

	rawParams, ok := parseOpener(lines.Text(start), tag)
	if !ok {
		return DirectiveMatch{}, false
	}

	baseIndent := lines.Indent(start)
	depth := 1
	maxDepth := 1

	for next := start + 1; next < bound; next++ {
		if lines.IsBlank(next) {
			continue
		}
		if lines.Indent(next) < baseIndent {
			return DirectiveMatch{}, false
		}

		text := lines.Text(next)
		switch {
		case text == Marker:
			depth--
			if depth == 0 {
				return DirectiveMatch{
					Tag:       tag,
					RawParams: rawParams,
					Start:     start,
					End:       next,
					Depth:     maxDepth,
				}, true
			}
		case strings.HasPrefix(text, Marker):
			depth++
			maxDepth = max(maxDepth, depth)
		}
	}

	return DirectiveMatch{}, false
}

// parseOpener checks that line (already trimmed) is ":::" immediately followed
// by tag as a whole token and returns the trimmed argument text after it.
func parseOpener(line, tag string) (string, bool) {
	if !strings.HasPrefix(line, Marker) {
		return "", false
	}
	rest := line[len(Marker):]
	if tag == "" || !strings.HasPrefix(rest, tag) {
		return "", false
	}
	rest = rest[len(tag):]
	if !isTagBoundary(rest, " \t") {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// OpenerTag returns the tag named by a block opener line such as
// ":::folding open", or "" when line is not an opener.
func OpenerTag(line string) string {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, Marker) {
		return ""
	}
	rest := line[len(Marker):]
	if end := strings.IndexAny(rest, " \t"); end >= 0 {
		rest = rest[:end]
	}
	return rest
}
