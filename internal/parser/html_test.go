package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	p := NewHTMLStripper()

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", p.Strip(""))
	})

	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "Your code is 123456", p.Strip("Your code is 123456"))
	})

	t.Run("strips tags", func(t *testing.T) {
		got := p.Strip("<p>Hello <b>world</b></p>")
		assert.Equal(t, "Hello world", got)
	})

	t.Run("drops script and style content", func(t *testing.T) {
		html := `<html><head><style>body{color:red}</style></head><body><script>alert(1)</script><p>visible</p></body></html>`
		got := p.Strip(html)
		assert.Equal(t, "visible", got)
		assert.NotContains(t, got, "alert")
		assert.NotContains(t, got, "color")
	})

	t.Run("keeps block boundaries as newlines", func(t *testing.T) {
		got := p.Strip("<div>first</div><div>second</div>")
		assert.Equal(t, "first\nsecond", got)
	})

	t.Run("malformed markup is stripped best-effort", func(t *testing.T) {
		got := p.Strip("<p>unclosed <b>bold and <broken attr='x' text here")
		assert.NotContains(t, got, "<")
		assert.Contains(t, got, "unclosed")
	})

	t.Run("collapses excess whitespace", func(t *testing.T) {
		got := p.Strip("<p>a</p>\n\n\n\n<p>b     c</p>")
		assert.False(t, strings.Contains(got, "\n\n\n"))
		assert.Contains(t, got, "b c")
	})
}
