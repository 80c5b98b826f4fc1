package game

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	xdraw "golang.org/x/image/draw"
)

// Texture is a GPU texture handle plus the UV sub-rectangle a sprite
// occupies within it. A shared entry aliases a packed atlas texture and
// does not own the GL handle; the atlas owner releases it exactly once.
type Texture struct {
	ID     uint32
	Width  int
	Height int

	U0, V0 float32
	U1, V1 float32

	shared bool
}

// SubTexture returns an alias into t covering the pixel rectangle
// (x, y, w, h). Normalized UVs are derived here and nowhere else, so the
// pixel rect and the UVs cannot drift apart.
func (t *Texture) SubTexture(x, y, w, h int) *Texture {
	return &Texture{
		ID:     t.ID,
		Width:  w,
		Height: h,
		U0:     float32(x) / float32(t.Width),
		V0:     float32(y) / float32(t.Height),
		U1:     float32(x+w) / float32(t.Width),
		V1:     float32(y+h) / float32(t.Height),
		shared: true,
	}
}

// Release frees the GL handle. Safe to call more than once; aliases into a
// shared atlas never free the handle they borrow.
func (t *Texture) Release() {
	if t == nil || t.shared || t.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}

// uploadTexture creates a GL texture from an RGBA image. Nearest filtering:
// pixel art must not smear.
func uploadTexture(img *image.RGBA) uint32 {
	b := img.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}

// newTextureFromImage repacks any decoded image into tight RGBA and
// uploads it. Full unit UV rectangle.
func newTextureFromImage(src image.Image) *Texture {
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Stride != b.Dx()*4 {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), src, b.Min, xdraw.Src)
	}
	return &Texture{
		ID:     uploadTexture(rgba),
		Width:  b.Dx(),
		Height: b.Dy(),
		U1:     1,
		V1:     1,
	}
}

// newSolidTexture synthesizes a 1x1 texture. Used as the visually loud
// fallback when a named sprite cannot be resolved, so a missing asset
// renders as a colored quad instead of nothing.
func newSolidTexture(r, g, b, a uint8) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = r, g, b, a
	return &Texture{
		ID:     uploadTexture(img),
		Width:  1,
		Height: 1,
		U1:     1,
		V1:     1,
	}
}
