package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKeys []string
		wantMap  map[string]string
	}{
		{
			name:     "empty input",
			input:    "",
			wantKeys: nil,
			wantMap:  map[string]string{},
		},
		{
			name:     "quoted value with comma",
			input:    `display="查看, 更多" bg=#fff color=red`,
			wantKeys: []string{"display", "bg", "color"},
			wantMap:  map[string]string{"display": "查看, 更多", "bg": "#fff", "color": "red"},
		},
		{
			name:     "unquoted multibyte value",
			input:    "content=这是一句话 delay=500",
			wantKeys: []string{"content", "delay"},
			wantMap:  map[string]string{"content": "这是一句话", "delay": "500"},
		},
		{
			name:     "unquoted value with spaces",
			input:    "text=hover over me content=shown here",
			wantKeys: []string{"text", "content"},
			wantMap:  map[string]string{"text": "hover over me", "content": "shown here"},
		},
		{
			name:     "empty quoted value",
			input:    `display="" bg=red`,
			wantKeys: []string{"display", "bg"},
			wantMap:  map[string]string{"display": "", "bg": "red"},
		},
		{
			name:     "unclosed quote takes the rest",
			input:    `content="never closed bg=red`,
			wantKeys: []string{"content"},
			wantMap:  map[string]string{"content": "never closed bg=red"},
		},
		{
			name:     "bare word stops the scan",
			input:    "open theme=light",
			wantKeys: nil,
			wantMap:  map[string]string{},
		},
		{
			name:     "bare word after a pair stops the scan",
			input:    `text="a" orphan theme=light`,
			wantKeys: []string{"text"},
			wantMap:  map[string]string{"text": "a"},
		},
		{
			name:     "repeated key keeps first position and last value",
			input:    "a=1 b=2 a=3",
			wantKeys: []string{"a", "b"},
			wantMap:  map[string]string{"a": "3", "b": "2"},
		},
		{
			name:     "unknown keys preserved",
			input:    "custom=x text=y",
			wantKeys: []string{"custom", "text"},
			wantMap:  map[string]string{"custom": "x", "text": "y"},
		},
		{
			name:     "equals inside quoted value",
			input:    `content="a=b c=d" delay=1`,
			wantKeys: []string{"content", "delay"},
			wantMap:  map[string]string{"content": "a=b c=d", "delay": "1"},
		},
		{
			name:     "leading and repeated spaces",
			input:    "   text=a    content=b  ",
			wantKeys: []string{"text", "content"},
			wantMap:  map[string]string{"text": "a", "content": "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Tokenize(tt.input)
			assert.Equal(t, tt.wantKeys, p.Keys())
			assert.Equal(t, tt.wantMap, p.Map())
			assert.Equal(t, len(tt.wantMap), p.Len())
		})
	}
}

func TestTokenize_UnquotedValueTruncatedByKeyLikeText(t *testing.T) {
	p := Tokenize("content=see x=1 for details")

	v, ok := p.Get("content")
	require.True(t, ok)
	assert.Equal(t, "see", v)

	v, ok = p.Get("x")
	require.True(t, ok)
	assert.Equal(t, "1 for details", v)
}

func TestParams_Value(t *testing.T) {
	p := NewParams("display", "", "bg", "red")

	assert.Equal(t, "fallback", p.Value("display", "fallback"), "empty counts as missing")
	assert.Equal(t, "red", p.Value("bg", "blue"))
	assert.Equal(t, "blue", p.Value("missing", "blue"))

	v, ok := p.Get("display")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestParams_ZeroValue(t *testing.T) {
	var p Params

	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.Keys())
	assert.Equal(t, "d", p.Value("x", "d"))
	_, ok := p.Get("x")
	assert.False(t, ok)
}

func TestParams_KeysIsCopy(t *testing.T) {
	p := NewParams("a", "1", "b", "2")
	keys := p.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, p.Keys())
}
