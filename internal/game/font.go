package game

import (
	"image"
	"strings"
)

// 5x7 bitmap glyphs, 5 bits per row (MSB = leftmost pixel). Baked into a
// texture at startup; HUD text then renders as ordinary batch quads.
const (
	glyphW = 5
	glyphH = 7
	// One pixel of padding on each side keeps NEAREST sampling from
	// bleeding neighbouring glyphs.
	glyphCellW = glyphW + 1
	glyphCellH = glyphH + 1
	glyphCols  = 8
)

// glyphOrder fixes the atlas layout; glyphRects and the texture are both
// derived from it.
const glyphOrder = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .!-:"

var glyphBits = map[rune][glyphH]uint8{
	'A': {0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'B': {0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E},
	'C': {0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E},
	'D': {0x1C, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1C},
	'E': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F},
	'F': {0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10},
	'G': {0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0F},
	'H': {0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11},
	'I': {0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'J': {0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C},
	'K': {0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11},
	'L': {0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F},
	'M': {0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11},
	'N': {0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x11},
	'O': {0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'P': {0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10},
	'Q': {0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D},
	'R': {0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11},
	'S': {0x0F, 0x10, 0x10, 0x0E, 0x01, 0x01, 0x1E},
	'T': {0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04},
	'U': {0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E},
	'V': {0x11, 0x11, 0x11, 0x11, 0x11, 0x0A, 0x04},
	'W': {0x11, 0x11, 0x11, 0x15, 0x15, 0x1B, 0x11},
	'X': {0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11},
	'Y': {0x11, 0x11, 0x0A, 0x04, 0x04, 0x04, 0x04},
	'Z': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F},
	'0': {0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E},
	'1': {0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E},
	'2': {0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F},
	'3': {0x1F, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0E},
	'4': {0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02},
	'5': {0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E},
	'6': {0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E},
	'7': {0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08},
	'8': {0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E},
	'9': {0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C},
	' ': {},
	'.': {0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C},
	'!': {0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04},
	'-': {0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00},
	':': {0x00, 0x0C, 0x0C, 0x00, 0x0C, 0x0C, 0x00},
}

// buildFontImage rasterizes every glyph into one white-on-transparent
// atlas image. Pure; the GL upload happens in NewFont.
func buildFontImage() (*image.RGBA, map[rune]image.Rectangle) {
	glyphs := []rune(glyphOrder)
	rows := (len(glyphs) + glyphCols - 1) / glyphCols
	img := image.NewRGBA(image.Rect(0, 0, glyphCols*glyphCellW, rows*glyphCellH))
	rects := make(map[rune]image.Rectangle, len(glyphs))

	for i, ch := range glyphs {
		cellX := (i % glyphCols) * glyphCellW
		cellY := (i / glyphCols) * glyphCellH
		bits := glyphBits[ch]
		for row := 0; row < glyphH; row++ {
			for col := 0; col < glyphW; col++ {
				if bits[row]&(1<<(glyphW-1-col)) == 0 {
					continue
				}
				off := img.PixOffset(cellX+col, cellY+row)
				img.Pix[off+0] = 255
				img.Pix[off+1] = 255
				img.Pix[off+2] = 255
				img.Pix[off+3] = 255
			}
		}
		rects[ch] = image.Rect(cellX, cellY, cellX+glyphW, cellY+glyphH)
	}
	return img, rects
}

// Font draws HUD text through the sprite batch. Every glyph aliases one
// shared texture, so a whole string stays in a single batch bucket.
type Font struct {
	tex    *Texture
	glyphs map[rune]*Texture
}

func NewFont() *Font {
	img, rects := buildFontImage()
	tex := newTextureFromImage(img)

	f := &Font{
		tex:    tex,
		glyphs: make(map[rune]*Texture, len(rects)),
	}
	for ch, r := range rects {
		f.glyphs[ch] = tex.SubTexture(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	}
	return f
}

// Draw queues text at (x, y) in pixel space. Unknown runes advance the
// cursor without drawing.
func (f *Font) Draw(batch *SpriteBatch, text string, x, y, scale float32, r, g, b, a float32) {
	text = strings.ToUpper(text)
	cx := x
	for _, ch := range text {
		if tex, ok := f.glyphs[ch]; ok && ch != ' ' {
			s := NewSprite(cx, y, glyphW*scale, glyphH*scale)
			s.SetTexture(tex)
			s.R, s.G, s.B, s.A = r, g, b, a
			batch.Draw(&s)
		}
		cx += glyphCellW * scale
	}
}

// Width returns the pixel width of text at the given scale.
func (f *Font) Width(text string, scale float32) float32 {
	return float32(len([]rune(text))) * glyphCellW * scale
}

func (f *Font) Release() {
	f.tex.Release()
}
