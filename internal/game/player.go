package game

// Player is the ship at the bottom of the screen: horizontal movement
// clamped to the playfield, fire cooldown, lives with a short
// invulnerability blink after being hit.
type Player struct {
	Ship  Entity
	Lives int

	cooldown float64
	invuln   float64
	cfg      Config
}

func NewPlayer(cfg Config, meta SpriteMeta) *Player {
	w, h := meta.Width, meta.Height
	if w <= 0 || h <= 0 {
		w, h = 40, 20
	}
	x := float32(cfg.WindowWidth)/2 - w/2
	p := &Player{
		Ship:  Entity{Sprite: NewSprite(x, cfg.PlayerY, w, h), Kind: KindPlayer, Alive: true},
		Lives: cfg.PlayerLives,
		cfg:   cfg,
	}
	if len(meta.Frames) > 0 {
		p.Ship.SetTexture(meta.Frames[0])
	} else {
		p.Ship.R, p.Ship.G, p.Ship.B = 0.3, 1.0, 0.4
	}
	return p
}

// Update moves the ship along the horizontal axis input and runs the
// cooldown/invulnerability timers.
func (p *Player) Update(dt float64, axis float32) {
	if !p.Ship.Alive {
		return
	}
	p.Ship.X += axis * p.cfg.PlayerSpeed * float32(dt)
	maxX := float32(p.cfg.WindowWidth) - p.Ship.W
	p.Ship.X = clampF32(p.Ship.X, 0, maxX)

	if p.cooldown > 0 {
		p.cooldown -= dt
	}
	if p.invuln > 0 {
		p.invuln -= dt
		// Blink while invulnerable.
		blink := int(p.invuln*10) % 2
		p.Ship.Visible = blink == 0
		if p.invuln <= 0 {
			p.Ship.Visible = true
		}
	}
}

// TryFire reports whether the ship may shoot this frame and, if so, arms
// the cooldown and returns the muzzle position.
func (p *Player) TryFire() (x, y float32, ok bool) {
	if !p.Ship.Alive || p.cooldown > 0 {
		return 0, 0, false
	}
	p.cooldown = p.cfg.PlayerCooldown
	return p.Ship.X + p.Ship.W/2, p.Ship.Y, true
}

// Hit takes one life. Returns true when the ship is out of lives.
func (p *Player) Hit() bool {
	if p.invuln > 0 {
		return false
	}
	p.Lives--
	if p.Lives <= 0 {
		p.Ship.Alive = false
		p.Ship.Visible = false
		return true
	}
	p.invuln = 2.0
	return false
}

// Vulnerable reports whether enemy fire can currently hurt the ship.
func (p *Player) Vulnerable() bool {
	return p.Ship.Alive && p.invuln <= 0
}
