package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "пароль...", fitText("парольная фраза", 9))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "abc", fitText("abc", 0))
}

func TestValueOrDashAndMask(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(""))
	assert.Equal(t, "-", valueOrDash("   "))
	assert.Equal(t, "x", valueOrDash("x"))

	assert.Equal(t, "-", mask(""))
	assert.Equal(t, "••••••••", mask("secret"))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "line1\nline2", "esc: назад")
	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "  line1\n  line2\n")
	assert.Contains(t, page, "esc: назад")
	assert.Contains(t, page, "ctrl+c: выход")

	assert.Contains(t, renderPage("T", "", ""), "  -\n")
}
