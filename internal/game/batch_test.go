package game

import (
	"math"
	"testing"
)

type submission struct {
	verts []float32
	quads int
	tex   *Texture
}

func recordingBatch() (*SpriteBatch, *[]submission) {
	got := &[]submission{}
	b := NewSpriteBatch(func(verts []float32, quads int, tex *Texture) {
		cp := make([]float32, len(verts))
		copy(cp, verts)
		*got = append(*got, submission{cp, quads, tex})
	})
	return b, got
}

func TestBatchSingleTextureOneDrawCall(t *testing.T) {
	b, got := recordingBatch()
	tex := &Texture{ID: 7, U1: 1, V1: 1}

	b.Begin()
	for i := 0; i < 5; i++ {
		s := NewSprite(float32(i)*10, 0, 8, 8)
		s.SetTexture(tex)
		b.Draw(&s)
	}
	b.End()

	if len(*got) != 1 {
		t.Fatalf("submissions = %d, want 1", len(*got))
	}
	sub := (*got)[0]
	if sub.quads != 5 {
		t.Errorf("quads = %d, want 5", sub.quads)
	}
	if want := 5 * FloatsPerQuad; len(sub.verts) != want {
		t.Errorf("len(verts) = %d, want %d", len(sub.verts), want)
	}
	if sub.tex != tex {
		t.Errorf("submitted texture = %v, want %v", sub.tex, tex)
	}
	if b.Flushes != 1 {
		t.Errorf("Flushes = %d, want 1", b.Flushes)
	}
}

func TestBatchFlushOnTextureChange(t *testing.T) {
	b, got := recordingBatch()
	texA := &Texture{ID: 1, U1: 1, V1: 1}
	texB := &Texture{ID: 2, U1: 1, V1: 1}

	b.Begin()
	for i, tex := range []*Texture{texA, texB, texA, texB} {
		s := NewSprite(float32(i)*10, 0, 8, 8)
		s.SetTexture(tex)
		b.Draw(&s)
	}
	b.End()

	if len(*got) != 4 {
		t.Fatalf("submissions = %d, want 4", len(*got))
	}
	// Draw order survives: no sorting across texture buckets.
	wantTex := []*Texture{texA, texB, texA, texB}
	for i, sub := range *got {
		if sub.quads != 1 {
			t.Errorf("submission %d quads = %d, want 1", i, sub.quads)
		}
		if sub.tex != wantTex[i] {
			t.Errorf("submission %d texture = %v, want %v", i, sub.tex, wantTex[i])
		}
		if x := sub.verts[0]; x != float32(i)*10 {
			t.Errorf("submission %d first vertex x = %v, want %v", i, x, float32(i)*10)
		}
	}
}

func TestBatchUntexturedBucket(t *testing.T) {
	b, got := recordingBatch()
	tex := &Texture{ID: 3, U1: 1, V1: 1}

	b.Begin()
	flat1 := NewSprite(0, 0, 4, 4)
	flat2 := NewSprite(10, 0, 4, 4)
	b.Draw(&flat1)
	b.Draw(&flat2)
	textured := NewSprite(20, 0, 4, 4)
	textured.SetTexture(tex)
	b.Draw(&textured)
	b.End()

	if len(*got) != 2 {
		t.Fatalf("submissions = %d, want 2", len(*got))
	}
	if (*got)[0].quads != 2 || (*got)[0].tex != nil {
		t.Errorf("first submission = %d quads tex %v, want 2 quads nil tex", (*got)[0].quads, (*got)[0].tex)
	}
	if (*got)[1].quads != 1 || (*got)[1].tex != tex {
		t.Errorf("second submission = %d quads tex %v, want 1 quad textured", (*got)[1].quads, (*got)[1].tex)
	}
}

func TestBatchSkipsInvisible(t *testing.T) {
	b, got := recordingBatch()

	b.Begin()
	s := NewSprite(0, 0, 4, 4)
	s.Visible = false
	b.Draw(&s)
	b.Draw(nil)
	b.End()

	if len(*got) != 0 {
		t.Fatalf("submissions = %d, want 0", len(*got))
	}
	if b.VertexCount() != 0 {
		t.Errorf("VertexCount = %d, want 0", b.VertexCount())
	}
}

func TestBatchFlushOnCapacity(t *testing.T) {
	b, got := recordingBatch()

	b.Begin()
	for i := 0; i < BatchCapacity+1; i++ {
		s := NewSprite(0, 0, 1, 1)
		b.Draw(&s)
	}
	b.End()

	if len(*got) != 2 {
		t.Fatalf("submissions = %d, want 2", len(*got))
	}
	if (*got)[0].quads != BatchCapacity {
		t.Errorf("first submission quads = %d, want %d", (*got)[0].quads, BatchCapacity)
	}
	if (*got)[1].quads != 1 {
		t.Errorf("second submission quads = %d, want 1", (*got)[1].quads)
	}
}

func TestBatchFlushEmptyIsNoop(t *testing.T) {
	b, got := recordingBatch()
	b.Begin()
	b.Flush()
	b.End()
	if len(*got) != 0 {
		t.Fatalf("submissions = %d, want 0", len(*got))
	}
	if b.Flushes != 0 {
		t.Errorf("Flushes = %d, want 0", b.Flushes)
	}
}

func TestBatchQuadGeometry(t *testing.T) {
	b, got := recordingBatch()

	s := NewSprite(10, 20, 30, 40)
	s.U0, s.V0, s.U1, s.V1 = 0.25, 0.5, 0.75, 1
	s.A = 0.8
	s.Opacity = 0.5

	b.Begin()
	b.Draw(&s)
	b.End()

	verts := (*got)[0].verts
	if len(verts) != FloatsPerQuad {
		t.Fatalf("len(verts) = %d, want %d", len(verts), FloatsPerQuad)
	}

	// Vertex order TL, TR, BR, TL, BR, BL.
	wantPos := [6][2]float32{
		{10, 20}, {40, 20}, {40, 60},
		{10, 20}, {40, 60}, {10, 60},
	}
	wantUV := [6][2]float32{
		{0.25, 0.5}, {0.75, 0.5}, {0.75, 1},
		{0.25, 0.5}, {0.75, 1}, {0.25, 1},
	}
	for i := 0; i < VertsPerQuad; i++ {
		v := verts[i*FloatsPerVertex:]
		if v[0] != wantPos[i][0] || v[1] != wantPos[i][1] {
			t.Errorf("vertex %d pos = (%v, %v), want (%v, %v)", i, v[0], v[1], wantPos[i][0], wantPos[i][1])
		}
		if v[2] != wantUV[i][0] || v[3] != wantUV[i][1] {
			t.Errorf("vertex %d uv = (%v, %v), want (%v, %v)", i, v[2], v[3], wantUV[i][0], wantUV[i][1])
		}
		if a := v[7]; math.Abs(float64(a-0.4)) > 1e-6 {
			t.Errorf("vertex %d alpha = %v, want 0.4", i, a)
		}
	}
}

func TestBatchQuadRotation(t *testing.T) {
	b, got := recordingBatch()

	// 10x10 quad rotated a quarter turn about its center stays the same
	// square with the corners cycled.
	s := NewSprite(0, 0, 10, 10)
	s.OriginX, s.OriginY = 0.5, 0.5
	s.Rotation = math.Pi / 2

	b.Begin()
	b.Draw(&s)
	b.End()

	verts := (*got)[0].verts
	// TL offset (-5,-5) rotates to (5,-5): the pre-rotation TR corner.
	wantX, wantY := float32(10), float32(0)
	const eps = 1e-4
	if dx, dy := verts[0]-wantX, verts[1]-wantY; math.Abs(float64(dx)) > eps || math.Abs(float64(dy)) > eps {
		t.Errorf("rotated TL = (%v, %v), want (%v, %v)", verts[0], verts[1], wantX, wantY)
	}
}

func TestBatchRender(t *testing.T) {
	b, got := recordingBatch()
	tex := &Texture{ID: 4, U1: 1, V1: 1}

	a := NewSprite(0, 0, 2, 2)
	c := NewSprite(4, 0, 2, 2)
	c.SetTexture(tex)
	b.Render([]*Sprite{&a, &c})

	if len(*got) != 2 {
		t.Fatalf("submissions = %d, want 2", len(*got))
	}
}
