// lines.go provides the per-document line table the matchers scan over.
package md

import (
	"sort"
	"strings"
)

// Lines is a read-only line table over a source document: per-line start/end
// offsets and leading-space indentation. It replaces threading mutable parser
// state through the matchers; they receive Lines and return a value.
type Lines struct {
	src    string
	starts []int
	ends   []int // exclusive, line terminator not included
	indent []int
}

// NewLines splits src into lines. "\n" and "\r\n" terminators are recognised.
func NewLines(src string) *Lines {
	l := &Lines{src: src}
	start := 0
	for start <= len(src) {
		nl := strings.IndexByte(src[start:], '\n')
		end := len(src)
		next := len(src) + 1
		if nl >= 0 {
			end = start + nl
			next = end + 1
		}
		if nl < 0 && start == len(src) && start > 0 {
			break // trailing newline does not open an empty final line
		}
		lineEnd := end
		if lineEnd > start && src[lineEnd-1] == '\r' {
			lineEnd--
		}
		l.starts = append(l.starts, start)
		l.ends = append(l.ends, lineEnd)
		l.indent = append(l.indent, countIndent(src[start:lineEnd]))
		start = next
	}
	return l
}

// Len returns the number of lines.
func (l *Lines) Len() int {
	return len(l.starts)
}

// Raw returns line i exactly as written, without its terminator.
func (l *Lines) Raw(i int) string {
	return l.src[l.starts[i]:l.ends[i]]
}

// Text returns line i with surrounding whitespace removed.
func (l *Lines) Text(i int) string {
	return strings.TrimSpace(l.Raw(i))
}

// Indent returns the number of leading spaces on line i.
func (l *Lines) Indent(i int) int {
	return l.indent[i]
}

// IsBlank reports whether line i holds only whitespace.
func (l *Lines) IsBlank(i int) bool {
	return l.Text(i) == ""
}

// Start returns the byte offset at which line i begins.
func (l *Lines) Start(i int) int {
	return l.starts[i]
}

// LineAt returns the index of the line containing byte offset off.
func (l *Lines) LineAt(off int) int {
	i := sort.Search(len(l.starts), func(i int) bool { return l.starts[i] > off })
	if i == 0 {
		return 0
	}
	return i - 1
}

// Slice returns the source text from the first byte of line start to the
// last byte (terminator excluded) of line end.
func (l *Lines) Slice(start, end int) string {
	return l.src[l.starts[start]:l.ends[end]]
}

// ContentLine is one re-extracted body line with the indentation it had
// before the base indentation was stripped.
type ContentLine struct {
	Text   string
	Indent int
}

// ContentSlice is the ordered body of a directive.
type ContentSlice []ContentLine

// String joins the lines with "\n".
func (c ContentSlice) String() string {
	parts := make([]string, len(c))
	for i, line := range c {
		parts[i] = line.Text
	}
	return strings.Join(parts, "\n")
}

// Extract re-slices the lines strictly between start and end. Each line loses
// min(indent, base) leading spaces; deeper relative indentation survives, so
// nested code fences and lists keep their shape.
func (l *Lines) Extract(start, end, base int) ContentSlice {
	if start+1 >= end {
		return ContentSlice{}
	}
	if base < 0 {
		base = 0
	}
	out := make(ContentSlice, 0, end-start-1)
	for i := start + 1; i < end && i < l.Len(); i++ {
		raw := l.Raw(i)
		indent := l.indent[i]
		strip := min(indent, base)
		text := raw[strip:]
		if strings.TrimSpace(text) == "" {
			text = ""
		}
		out = append(out, ContentLine{Text: text, Indent: indent})
	}
	return out
}

// countIndent counts leading space characters. Tabs are not expanded.
func countIndent(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	return n
}
