package params

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParams(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{
			name:   "plain keeps source order",
			output: "plain",
			input:  `text="Hello World" content=tip position=bottom`,
			want:   "text\t\"Hello World\"\ncontent\t\"tip\"\nposition\t\"bottom\"\n",
		},
		{
			name:   "json",
			output: "json",
			input:  `display=查看 答案 bg=#ff0`,
			want:   "[\n  {\n    \"key\": \"display\",\n    \"value\": \"查看 答案\"\n  },\n  {\n    \"key\": \"bg\",\n    \"value\": \"#ff0\"\n  }\n]\n",
		},
		{
			name:   "no pairs",
			output: "plain",
			input:  "open",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runParams(&paramsOptions{output: tt.output, noColor: true, stdout: &stdout}, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRunParams_Table(t *testing.T) {
	var stdout bytes.Buffer
	err := runParams(&paramsOptions{output: "table", noColor: true, stdout: &stdout}, "a=1 b=two")
	require.NoError(t, err)

	assert.Equal(t, "KEY  VALUE\na    \"1\"\nb    \"two\"\n", stdout.String())
}

func TestNewCmdParams_RequiresArgs(t *testing.T) {
	cmd := NewCmdParams()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
}
