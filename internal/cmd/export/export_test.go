package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/markdown-directives/internal/config"
)

func newOptions(input string) (*exportOptions, *bytes.Buffer) {
	var stdout bytes.Buffer
	return &exportOptions{
		cfg:    &config.Config{},
		stdin:  strings.NewReader(input),
		stdout: &stdout,
	}, &stdout
}

func TestRunExport(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tooltips bool
		want     string
	}{
		{
			name:  "tooltip text only",
			input: "悬停在{tip text=这里 content=这是一句话}{/tip}上",
			want:  "悬停在这里上\n",
		},
		{
			name:     "tooltip content kept",
			input:    "悬停在{tip text=这里 content=这是一句话}{/tip}上",
			tooltips: true,
			want:     "悬停在这里 (这是一句话)上\n",
		},
		{
			name:  "plain markdown passes through",
			input: "Hello **world**",
			want:  "Hello **world**\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, stdout := newOptions(tt.input)
			opts.tooltips = tt.tooltips

			require.NoError(t, runExport(opts))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRunExport_FileToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(src, []byte(":::folding\nTitle\n:::hidden\nsecret\n:::\n:::\n"), 0644))

	opts, stdout := newOptions("")
	opts.file = src
	opts.out = filepath.Join(dir, "README.md")

	require.NoError(t, runExport(opts))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(opts.out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "**Title**")
	assert.Contains(t, string(data), "secret")
	assert.NotContains(t, string(data), ":::")
}

func TestNewCmdExport_Flags(t *testing.T) {
	cmd := NewCmdExport()

	assert.Equal(t, "export [file]", cmd.Use)
	assert.Equal(t, "false", cmd.Flags().Lookup("tooltips").DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("out"))
}
