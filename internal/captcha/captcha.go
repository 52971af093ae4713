// Package captcha generates short human-enterable challenge codes and
// renders them as PNG images with background noise.
package captcha

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/big"
	mrand "math/rand"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// alphabet excludes easily-confused characters: no 0/O, no 1/I/l.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

// CodeLength is the number of characters in a challenge code.
const CodeLength = 6

const (
	imageWidth  = 150
	imageHeight = 50
	noiseLines  = 5
)

// NewCode returns a random challenge code drawn from the unambiguous alphabet.
func NewCode() (string, error) {
	var b strings.Builder
	for i := 0; i < CodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate captcha code: %w", err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}

// Render draws the code on a light background with noise lines and
// returns the encoded PNG.
func Render(code string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))

	background := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	lineColor := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	textColor := color.RGBA{R: 50, G: 50, B: 50, A: 255}

	for y := 0; y < imageHeight; y++ {
		for x := 0; x < imageWidth; x++ {
			img.Set(x, y, background)
		}
	}

	for i := 0; i < noiseLines; i++ {
		drawLine(img,
			mrand.Intn(imageWidth), mrand.Intn(imageHeight),
			mrand.Intn(imageWidth), mrand.Intn(imageHeight),
			lineColor)
	}

	face := basicfont.Face7x13
	textWidth := len(code) * face.Advance
	x := (imageWidth - textWidth) / 2
	y := (imageHeight + face.Ascent) / 2

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(code)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode captcha image: %w", err)
	}
	return buf.Bytes(), nil
}

// Check compares a submitted answer against the stored challenge code.
// Comparison trims whitespace and ignores case.
func Check(submitted, stored string) bool {
	if stored == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(stored))
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
