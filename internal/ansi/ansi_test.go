package ansi

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrip(t *testing.T) {
	assert.Equal(t, "hello", Strip("\x1b[38;2;1;2;3mhello\x1b[0m"))
	assert.Equal(t, "plain", Strip("plain"))
	assert.Equal(t, 5, VisibleWidth("\x1b[31mhello\x1b[0m"))
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 15)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 15)
	}
	assert.Equal(t, []string{""}, Wrap("", 20))

	// A width below the floor falls back to the default.
	lines = Wrap("one two", 2)
	assert.Equal(t, []string{"one two"}, lines)
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "icon.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestRenderFile(t *testing.T) {
	path := writeTestImage(t)

	r := Renderer{Width: 4, Height: 4}
	art, err := r.RenderFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 4, VisibleWidth(line))
	}
}

func TestRenderFileCached(t *testing.T) {
	path := writeTestImage(t)
	cacheDir := t.TempDir()

	r := Renderer{Width: 4, Height: 4}
	first, err := r.RenderFileCached(path, cacheDir)
	require.NoError(t, err)

	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Second render is served from the cache file.
	second, err := r.RenderFileCached(path, cacheDir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderFileMissing(t *testing.T) {
	r := Renderer{Width: 4, Height: 4}
	_, err := r.RenderFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
