package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain text", "already clean", "already clean"},
		{"simple tags", "Hello <b>World</b>", "Hello World"},
		{"nested tags", "<div><p>a</p><p>b</p></div>", "a b"},
		{"attributes", `<a href="http://example.com">link</a> text`, "link text"},
		{"entities", "a &amp; b &lt;tag&gt;", "a & b <tag>"},
		{"comments", "before <!-- hidden --> after", "before after"},
		{"whitespace runs", "a \n\n  b\t\tc", "a b c"},
		{"surrounding whitespace", "  padded  ", "padded"},
		{"unclosed tag degrades", "text <b unfinished", "text <b unfinished"},
		{"only markup", "<br/><hr/>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripHTML(tt.input))
		})
	}
}

func TestStripHTML_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"Hello <b>World</b>",
		"<p>multi</p>\n<p>line</p>",
		"a    b",
		"comment <!-- x --> here",
	}

	for _, input := range inputs {
		once := StripHTML(input)
		assert.Equal(t, once, StripHTML(once), "input %q", input)
	}
}
