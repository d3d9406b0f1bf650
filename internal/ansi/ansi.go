// Package ansi renders card icon images as ANSI terminal art and provides
// the escape-aware text helpers the detail view needs for layout.
package ansi

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Renderer converts images to half-block ANSI art with the given cell
// dimensions.
type Renderer struct {
	Width  int
	Height int
}

// RenderFile decodes an image file and renders it.
func (r Renderer) RenderFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	return r.Render(img), nil
}

// Render converts an image to ANSI art. Each character cell covers a 2x2
// pixel block: the top pair colors the upper half block's foreground, the
// bottom pair its background.
func (r Renderer) Render(img image.Image) string {
	resized := resize.Resize(uint(r.Width*2), uint(r.Height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < r.Height*2; y += 2 {
		for x := 0; x < r.Width*2; x += 2 {
			top := blend(colorAt(resized, x, y), colorAt(resized, x+1, y))
			bottom := blend(colorAt(resized, x, y+1), colorAt(resized, x+1, y+1))
			buffer.WriteString(cell('▀', top, bottom))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// RenderFileCached renders an image file, keeping the result in cacheDir
// keyed by the image path so repeated views skip the resize.
func (r Renderer) RenderFileCached(path, cacheDir string) (string, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %v", err)
	}

	cacheName := fmt.Sprintf("%x-%dx%d.ansi", md5.Sum([]byte(path)), r.Width, r.Height)
	cachePath := filepath.Join(cacheDir, cacheName)

	if data, err := os.ReadFile(cachePath); err == nil {
		return string(data), nil
	}

	art, err := r.RenderFile(path)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
		return "", fmt.Errorf("failed to write cached art: %v", err)
	}

	return art, nil
}

// colorAt returns the pixel color at x,y, black when out of bounds.
func colorAt(img image.Image, x, y int) colorful.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		c, _ := colorful.MakeColor(img.At(x, y))
		return c
	}
	c, _ := colorful.MakeColor(color.RGBA{0, 0, 0, 255})
	return c
}

// blend averages two colors in RGB space.
func blend(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: (a.R + b.R) / 2, G: (a.G + b.G) / 2, B: (a.B + b.B) / 2}
}

// cell formats one half-block character with truecolor foreground and
// background escapes.
func cell(char rune, fg, bg colorful.Color) string {
	fr, fgc, fb := fg.RGB255()
	br, bgc, bb := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		fr, fgc, fb, br, bgc, bb, char)
}

// Strip removes ANSI escape sequences from a string
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// VisibleWidth returns the on-screen width of a line, ignoring escapes.
func VisibleWidth(s string) int {
	return len(Strip(s))
}

// Wrap wraps text to a specified width
func Wrap(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
