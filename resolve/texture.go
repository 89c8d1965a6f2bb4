package resolve

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/grove/vmath"
)

// Texture is an offscreen ebiten image used as a placeholder surface.
type Texture struct {
	image *ebiten.Image
}

// NewTexture creates a transparent texture of the given size.
func NewTexture(w, h int) *Texture {
	return &Texture{image: ebiten.NewImage(w, h)}
}

// Bounds implements live.Surface.
func (t *Texture) Bounds() image.Rectangle {
	return t.image.Bounds()
}

// Fill paints the whole texture with c.
func (t *Texture) Fill(c vmath.Color) {
	t.image.Fill(toRGBA(c))
}

// FillRect paints the cell (x, y, w, h) with c, clipped to the texture.
func (t *Texture) FillRect(x, y, w, h int, c vmath.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(t.Bounds())
	if r.Empty() {
		return
	}
	t.image.SubImage(r).(*ebiten.Image).Fill(toRGBA(c))
}

// Checkerboard returns a w by h texture of alternating a and b cells.
// It is the placeholder used for images that are not available.
func Checkerboard(w, h, cell int, a, b vmath.Color) *Texture {
	t := NewTexture(w, h)
	t.Fill(a)
	if cell <= 0 {
		return t
	}
	for y := 0; y < h; y += cell {
		for x := (y / cell % 2) * cell; x < w; x += 2 * cell {
			t.FillRect(x, y, cell, cell, b)
		}
	}
	return t
}

func toRGBA(c vmath.Color) color.RGBA {
	clamp := func(v float64) float64 { return max(0, min(1, v)) }
	a := clamp(c.A)
	return color.RGBA{
		R: uint8(clamp(c.R)*a*255 + 0.5),
		G: uint8(clamp(c.G)*a*255 + 0.5),
		B: uint8(clamp(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}
