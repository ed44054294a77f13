package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCreated(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC).Local().Format("02.01.2006 15:04")

	assert.Equal(t, want, formatCreated("2024-01-15T10:30:00Z"))
	assert.Equal(t, want, formatCreated("2024-01-15T10:30:00.123456Z"))
	assert.Equal(t, "yesterday", formatCreated("yesterday"))
	assert.Equal(t, "", formatCreated(""))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "привет...", fitText("привет мир", 9))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "one", firstLine("one\ntwo"))
	assert.Equal(t, "single", firstLine("single"))
}

func TestNetworkHint(t *testing.T) {
	assert.NotEmpty(t, networkHint("request failed: dial tcp: lookup host: no such host"))
	assert.NotEmpty(t, networkHint("request failed: context deadline exceeded"))
	assert.Empty(t, networkHint("HTTP 500: Internal Server Error"))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("TITLE", "line one\nline two", "esc: back")
	assert.Contains(t, page, "TITLE")
	assert.Contains(t, page, "  line one\n  line two")
	assert.Contains(t, page, "esc: back")
	assert.Contains(t, page, "ctrl+c: quit")

	assert.Contains(t, renderPage("EMPTY", " ", ""), "  -\n")
}
