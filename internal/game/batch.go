package game

import "math"

// submitFunc receives one accumulated batch: the vertex stream, the quad
// count, and the texture every quad in the batch shares (nil for the
// untextured bucket). The production submitter lives on Renderer; tests
// inject their own.
type submitFunc func(verts []float32, quads int, tex *Texture)

// SpriteBatch accumulates per-sprite quad geometry into a fixed-capacity
// scratch buffer and hands it off in as few draw calls as drawing order
// allows. Grouping is only ever "texture changed": sprites are never
// reordered, because the over-blend is not commutative.
type SpriteBatch struct {
	verts  []float32
	quads  int
	active *Texture
	submit submitFunc

	// Flushes counts draw calls issued since Begin.
	Flushes int
}

func NewSpriteBatch(submit submitFunc) *SpriteBatch {
	return &SpriteBatch{
		verts:  make([]float32, 0, BatchCapacity*FloatsPerQuad),
		submit: submit,
	}
}

func texID(t *Texture) uint32 {
	if t == nil {
		return 0
	}
	return t.ID
}

// Begin resets the write cursor and the active-texture marker.
func (b *SpriteBatch) Begin() {
	b.verts = b.verts[:0]
	b.quads = 0
	b.active = nil
	b.Flushes = 0
}

// Draw appends one sprite. Invisible sprites are skipped entirely. The
// batch flushes first when the scratch buffer is full or the incoming
// texture differs from the active one; textureless sprites share a single
// implicit bucket.
func (b *SpriteBatch) Draw(s *Sprite) {
	if s == nil || !s.Visible {
		return
	}
	if b.quads >= BatchCapacity || (b.quads > 0 && texID(s.Tex) != texID(b.active)) {
		b.Flush()
	}
	b.active = s.Tex
	b.appendQuad(s)
	b.quads++
}

// Flush submits the accumulated vertices as one draw call and resets the
// cursor. No-op while empty.
func (b *SpriteBatch) Flush() {
	if b.quads == 0 {
		return
	}
	b.submit(b.verts, b.quads, b.active)
	b.verts = b.verts[:0]
	b.quads = 0
	b.Flushes++
}

// End flushes any remainder.
func (b *SpriteBatch) End() {
	b.Flush()
}

// Render is the convenience wrapper: begin, draw each in order, end.
func (b *SpriteBatch) Render(sprites []*Sprite) {
	b.Begin()
	for _, s := range sprites {
		b.Draw(s)
	}
	b.End()
}

// VertexCount returns the number of vertices currently accumulated.
func (b *SpriteBatch) VertexCount() int {
	return len(b.verts) / FloatsPerVertex
}

// appendQuad emits the sprite as two consistently wound triangles covering
// [x, x+w] x [y, y+h] after scale and rotation about the normalized
// origin. Color is the tint with opacity folded into alpha only; RGB stays
// unscaled, premultiplication (if any) belongs to the blend stage.
func (b *SpriteBatch) appendQuad(s *Sprite) {
	w := s.W * s.ScaleX
	h := s.H * s.ScaleY
	ox := w * s.OriginX
	oy := h * s.OriginY
	px := s.X + ox
	py := s.Y + oy

	// Corner offsets relative to the pivot: TL, TR, BR, BL.
	xs := [4]float32{-ox, w - ox, w - ox, -ox}
	ys := [4]float32{-oy, -oy, h - oy, h - oy}

	var cx, cy [4]float32
	if s.Rotation != 0 {
		sin := float32(math.Sin(float64(s.Rotation)))
		cos := float32(math.Cos(float64(s.Rotation)))
		for i := 0; i < 4; i++ {
			cx[i] = px + cos*xs[i] - sin*ys[i]
			cy[i] = py + sin*xs[i] + cos*ys[i]
		}
	} else {
		for i := 0; i < 4; i++ {
			cx[i] = px + xs[i]
			cy[i] = py + ys[i]
		}
	}

	us := [4]float32{s.U0, s.U1, s.U1, s.U0}
	vs := [4]float32{s.V0, s.V0, s.V1, s.V1}

	cr, cg, cb := s.R, s.G, s.B
	ca := s.A * s.Opacity

	// TL, TR, BR / TL, BR, BL.
	for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
		b.verts = append(b.verts, cx[i], cy[i], us[i], vs[i], cr, cg, cb, ca)
	}
}
