package game

// UFOSystem runs the bonus saucer: spawns on a timer, crosses the top of
// the screen, despawns off the far edge.
type UFOSystem struct {
	Saucer Entity

	timer float64
	cfg   Config
	rng   *Rand
	meta  SpriteMeta
}

func NewUFOSystem(cfg Config, meta SpriteMeta, rng *Rand) *UFOSystem {
	u := &UFOSystem{cfg: cfg, rng: rng, meta: meta}
	u.timer = cfg.UFODelay
	return u
}

func (u *UFOSystem) Active() bool { return u.Saucer.Alive }

func (u *UFOSystem) Update(dt float64) {
	if u.Saucer.Alive {
		u.Saucer.X += u.Saucer.VelX * float32(dt)
		if u.Saucer.X+u.Saucer.W < -10 || u.Saucer.X > float32(u.cfg.WindowWidth)+10 {
			u.Saucer.Alive = false
		}
		return
	}

	u.timer -= dt
	if u.timer > 0 {
		return
	}
	u.timer = u.cfg.UFODelay + u.rng.RangeF(0, u.cfg.UFODelay/2)

	w, h := u.meta.Width, u.meta.Height
	if w <= 0 || h <= 0 {
		w, h = 48, 20
	}
	// Enter from a random side.
	fromLeft := u.rng.Intn(2) == 0
	x := -w
	vel := u.cfg.UFOSpeed
	if !fromLeft {
		x = float32(u.cfg.WindowWidth)
		vel = -vel
	}
	u.Saucer = Entity{
		Sprite: NewSprite(x, u.cfg.UFOY, w, h),
		Kind:   KindUFO,
		Alive:  true,
		Points: PointsUFO,
		VelX:   vel,
	}
	if u.meta.Points > 0 {
		u.Saucer.Points = u.meta.Points
	}
	if len(u.meta.Frames) > 0 {
		u.Saucer.SetTexture(u.meta.Frames[0])
	} else {
		u.Saucer.R, u.Saucer.G, u.Saucer.B = 1.0, 0.3, 0.3
	}
}

// Kill downs the saucer and returns its score value.
func (u *UFOSystem) Kill() int {
	u.Saucer.Alive = false
	return u.Saucer.Points
}

// Reset despawns the saucer and restarts the spawn timer.
func (u *UFOSystem) Reset() {
	u.Saucer.Alive = false
	u.timer = u.cfg.UFODelay
}
