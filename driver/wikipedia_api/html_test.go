package wikipedia_api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHtmlToText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "strips markup",
			input:    "<p>The <b>quick</b> brown fox.</p>",
			expected: "The quick brown fox.",
		},
		{
			name:     "drops tables and citations",
			input:    `<p>Planets orbit stars.<sup class="reference">[1]</sup></p><table><tr><td>ignored</td></tr></table>`,
			expected: "Planets orbit stars.",
		},
		{
			name:     "unescapes entities",
			input:    "<p>Ampersand &amp; angle &lt;brackets&gt;</p>",
			expected: "Ampersand & angle <brackets>",
		},
		{
			name:     "collapses internal whitespace",
			input:    "<p>spaced   out\t text</p>",
			expected: "spaced out text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, htmlToText(tt.input))
		})
	}
}

func TestFirstParagraph(t *testing.T) {
	assert.Equal(t, "First line.", firstParagraph("First line.\nSecond line."))
	assert.Equal(t, "Only line.", firstParagraph("Only line."))
	assert.Equal(t, "", firstParagraph(""))
}
