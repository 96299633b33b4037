package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLines(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		indents []int
	}{
		{"empty", "", []string{""}, []int{0}},
		{"single line", "abc", []string{"abc"}, []int{0}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}, []int{0, 0}},
		{"crlf", "a\r\n  b\r\n", []string{"a", "  b"}, []int{0, 2}},
		{"blank middle", "a\n\nb", []string{"a", "", "b"}, []int{0, 0, 0}},
		{"indented", "    code\n  x", []string{"    code", "  x"}, []int{4, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLines(tt.input)
			require.Equal(t, len(tt.want), l.Len())
			for i := range tt.want {
				assert.Equal(t, tt.want[i], l.Raw(i))
				assert.Equal(t, tt.indents[i], l.Indent(i))
			}
		})
	}
}

func TestLines_LineAt(t *testing.T) {
	l := NewLines("ab\ncd\n\nef")

	assert.Equal(t, 0, l.LineAt(0))
	assert.Equal(t, 0, l.LineAt(2))
	assert.Equal(t, 1, l.LineAt(3))
	assert.Equal(t, 2, l.LineAt(6))
	assert.Equal(t, 3, l.LineAt(7))
	assert.Equal(t, 3, l.LineAt(100))
}

func TestLines_Slice(t *testing.T) {
	l := NewLines("one\ntwo\nthree\n")

	assert.Equal(t, "two\nthree", l.Slice(1, 2))
	assert.Equal(t, "one", l.Slice(0, 0))
}

func TestLines_Extract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start int
		end   int
		base  int
		want  string
	}{
		{
			name:  "adjacent markers",
			input: ":::hidden\n:::",
			start: 0, end: 1, base: 0,
			want: "",
		},
		{
			name:  "four space indent survives base zero",
			input: ":::folding\nTitle\n    code line\n:::",
			start: 0, end: 3, base: 0,
			want: "Title\n    code line",
		},
		{
			name:  "base indent stripped",
			input: "  :::folding\n  Title\n    nested\n  :::",
			start: 0, end: 3, base: 2,
			want: "Title\n  nested",
		},
		{
			name:  "blank lines become empty",
			input: ":::hidden\na\n   \nb\n:::",
			start: 0, end: 4, base: 0,
			want: "a\n\nb",
		},
		{
			name:  "shallower line loses only its own indent",
			input: "    :::hidden\n    a\n  b\n    :::",
			start: 0, end: 3, base: 4,
			want: "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLines(tt.input)
			got := l.Extract(tt.start, tt.end, tt.base)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestLines_ExtractKeepsOriginalIndent(t *testing.T) {
	l := NewLines(":::hidden\n      deep\n:::")
	got := l.Extract(0, 2, 2)

	require.Len(t, got, 1)
	assert.Equal(t, "    deep", got[0].Text)
	assert.Equal(t, 6, got[0].Indent)
}
