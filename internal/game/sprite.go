package game

// Sprite is the single concrete drawable quad. Whatever created it owns
// it; the batch only borrows it for the duration of a draw call.
type Sprite struct {
	X, Y float32
	W, H float32

	Rotation float32 // radians, about the origin point
	ScaleX   float32
	ScaleY   float32
	OriginX  float32 // normalized 0..1 within the scaled quad
	OriginY  float32

	R, G, B, A float32 // tint
	Opacity    float32
	Visible    bool

	Tex            *Texture // nil = untextured flat quad
	U0, V0, U1, V1 float32
}

// NewSprite returns a visible, unrotated, untinted sprite covering the
// full unit UV rectangle.
func NewSprite(x, y, w, h float32) Sprite {
	return Sprite{
		X: x, Y: y, W: w, H: h,
		ScaleX: 1, ScaleY: 1,
		R: 1, G: 1, B: 1, A: 1,
		Opacity: 1,
		Visible: true,
		U1:      1, V1: 1,
	}
}

// SetTexture points the sprite at a texture and adopts its UV rectangle.
func (s *Sprite) SetTexture(t *Texture) {
	s.Tex = t
	if t != nil {
		s.U0, s.V0, s.U1, s.V1 = t.U0, t.V0, t.U1, t.V1
	} else {
		s.U0, s.V0, s.U1, s.V1 = 0, 0, 1, 1
	}
}

// Animator steps through a sprite's animation frames. The frame index is
// always within [0, FrameCount).
type Animator struct {
	Meta  SpriteMeta
	Frame int
	timer float64
}

func NewAnimator(meta SpriteMeta) Animator {
	return Animator{Meta: meta}
}

// frameDuration returns the display time of the current frame: the
// explicit per-frame duration when declared, else 1/fps.
func (a *Animator) frameDuration() float64 {
	if a.Frame < len(a.Meta.Durations) {
		return a.Meta.Durations[a.Frame]
	}
	if a.Meta.FPS > 0 {
		return 1.0 / a.Meta.FPS
	}
	return 0
}

// Update advances the animation clock. Non-looping animations hold on the
// last frame.
func (a *Animator) Update(dt float64) {
	n := a.Meta.FrameCount()
	if n <= 1 {
		return
	}
	d := a.frameDuration()
	if d <= 0 {
		return
	}
	a.timer += dt
	for a.timer >= d {
		a.timer -= d
		if a.Frame+1 >= n {
			if !a.Meta.Loop {
				a.timer = 0
				return
			}
			a.Frame = 0
		} else {
			a.Frame++
		}
		d = a.frameDuration()
		if d <= 0 {
			return
		}
	}
}

// Texture returns the texture of the current frame, nil when the animator
// has no frames at all.
func (a *Animator) Texture() *Texture {
	if a.Frame < 0 || a.Frame >= len(a.Meta.Frames) {
		return nil
	}
	return a.Meta.Frames[a.Frame]
}
