package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownService_ToHTML(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTML("# Heading\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestMarkdownService_Sanitize(t *testing.T) {
	svc := NewMarkdownService()

	tests := []struct {
		name     string
		input    string
		stripped string
		kept     string
	}{
		{
			"script tags removed",
			`<p>hello</p><script>alert("x")</script>`,
			"<script",
			"<p>hello</p>",
		},
		{
			"event handlers removed",
			`<a href="https://example.com" onclick="steal()">link</a>`,
			"onclick",
			"link</a>",
		},
		{
			"iframe removed",
			`<iframe src="https://evil.example"></iframe><em>ok</em>`,
			"<iframe",
			"<em>ok</em>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := svc.Sanitize(tt.input)
			assert.NotContains(t, out, tt.stripped)
			assert.Contains(t, out, tt.kept)
		})
	}
}

func TestMarkdownService_ToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("Click <script>bad()</script> *here*")
	require.NoError(t, err)
	assert.False(t, strings.Contains(out, "<script"))
	assert.Contains(t, out, "<em>here</em>")
}
