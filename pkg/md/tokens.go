// tokens.go defines the match and fragment types shared by the directive matchers and renderers.
package md

import "strings"

// Marker is the fence that opens (with a trailing tag) and closes (bare) a block directive.
const Marker = ":::"

// Syntax distinguishes line-oriented containers from inline spans.
type Syntax int

const (
	SyntaxBlock  Syntax = iota // :::tag args ... :::
	SyntaxInline               // {tag args}...{/tag}
)

func (s Syntax) String() string {
	if s == SyntaxInline {
		return "inline"
	}
	return "block"
}

// Family groups directives that share a renderer.
type Family string

const (
	FamilyFolding Family = "folding" // collapsible panel
	FamilyReveal  Family = "reveal"  // reveal-on-click block or span
	FamilyTooltip Family = "tooltip" // hover/click tooltip
)

// DirectiveType describes one recognised tag.
type DirectiveType struct {
	Tag      string
	Family   Family
	Syntax   Syntax
	Bodyless bool // inline only: the span carries no body between open and close
}

// DirectiveRegistry maps tag names to their type definitions.
// Adding a new directive = adding one entry here and a renderer.
var DirectiveRegistry = map[string]DirectiveType{
	"folding": {
		Tag:    "folding",
		Family: FamilyFolding,
		Syntax: SyntaxBlock,
	},
	"hidden": {
		Tag:    "hidden",
		Family: FamilyReveal,
		Syntax: SyntaxBlock,
	},
	"hide": {
		Tag:    "hide",
		Family: FamilyReveal,
		Syntax: SyntaxInline,
	},
	"tip": {
		Tag:      "tip",
		Family:   FamilyTooltip,
		Syntax:   SyntaxInline,
		Bodyless: true,
	},
}

// LookupDirective returns the DirectiveType registered for tag.
// Tags are case-sensitive.
func LookupDirective(tag string) (DirectiveType, bool) {
	dt, ok := DirectiveRegistry[tag]
	return dt, ok
}

// CloseTag returns the inline close marker for tag, e.g. "{/tip}".
func CloseTag(tag string) string {
	return "{/" + tag + "}"
}

// DirectiveMatch is an accepted block directive. Start and End are the
// indexes of the opening and closing marker lines. For ::: containers
// End > Start always holds; a whole-line tooltip may end on its first line.
type DirectiveMatch struct {
	Tag       string
	RawParams string
	Start     int
	End       int
	Depth     int // deepest nesting level reached while scanning (>= 1)
}

// Lines returns the consumed line range, both markers included.
func (m DirectiveMatch) Lines() Range {
	return Range{Start: m.Start, End: m.End + 1}
}

// InlineMatch is an accepted inline directive. Start and End are byte offsets
// into the scanned text; End is just past the close tag.
type InlineMatch struct {
	Tag       string
	RawParams string
	Body      string
	Start     int
	End       int
}

// Len returns the number of bytes the match consumes.
func (m InlineMatch) Len() int {
	return m.End - m.Start
}

// Range is a half-open [Start, End) span of lines or bytes.
type Range struct {
	Start int
	End   int
}

// Fragment is the HTML produced for one directive plus the source span it
// consumed, so the host can advance its cursor past the whole directive.
type Fragment struct {
	HTML     string
	Consumed Range
}

// isTagBoundary reports whether the text following a tag name ends the tag.
// It guards against prefix collisions such as "tip" vs "tips".
func isTagBoundary(rest string, closers string) bool {
	if rest == "" {
		return true
	}
	return strings.IndexByte(closers, rest[0]) >= 0
}
