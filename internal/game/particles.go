package game

// ParticleSystem drives short-lived explosion debris. Particles are
// untextured quads, so a burst shares the batch's textureless bucket.
type ParticleSystem struct {
	P   []Entity
	rng *Rand
}

func NewParticleSystem(seed uint64) *ParticleSystem {
	return &ParticleSystem{rng: NewRand(seed)}
}

// SpawnBurst scatters n debris quads from (x, y) in the given color.
func (ps *ParticleSystem) SpawnBurst(x, y float32, r, g, b float32, n int) {
	for i := 0; i < n; i++ {
		size := float32(ps.rng.RangeF(2, 4))
		p := Entity{
			Sprite:   NewSprite(x, y, size, size),
			Kind:     KindParticle,
			Alive:    true,
			VelX:     float32(ps.rng.RangeF(-120, 120)),
			VelY:     float32(ps.rng.RangeF(-140, 60)),
			Lifetime: ps.rng.RangeF(0.3, 0.7),
		}
		p.R, p.G, p.B = r, g, b
		ps.P = append(ps.P, p)
	}
}

// Update integrates velocity and fades particles out over their lifetime.
func (ps *ParticleSystem) Update(dt float64) {
	live := ps.P[:0]
	for i := range ps.P {
		p := &ps.P[i]
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			continue
		}
		p.X += p.VelX * float32(dt)
		p.Y += p.VelY * float32(dt)
		p.VelY += 260 * float32(dt) // gravity pulls debris down
		p.Opacity = clampF32(float32(p.Lifetime)*2.5, 0, 1)
		live = append(live, *p)
	}
	ps.P = live
}

// Draw queues every particle on the batch.
func (ps *ParticleSystem) Draw(batch *SpriteBatch) {
	for i := range ps.P {
		batch.Draw(&ps.P[i].Sprite)
	}
}

// Clear drops all particles.
func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}
