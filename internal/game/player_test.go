package game

import "testing"

func TestPlayerMoveAndClamp(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPlayer(cfg, SpriteMeta{})

	p.Update(10, 1) // far past the right edge
	if want := float32(cfg.WindowWidth) - p.Ship.W; p.Ship.X != want {
		t.Errorf("x = %v, want clamped to %v", p.Ship.X, want)
	}
	p.Update(10, -1)
	if p.Ship.X != 0 {
		t.Errorf("x = %v, want clamped to 0", p.Ship.X)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PlayerCooldown = 0.5
	p := NewPlayer(cfg, SpriteMeta{})

	x, y, ok := p.TryFire()
	if !ok {
		t.Fatal("first shot blocked")
	}
	if x != p.Ship.X+p.Ship.W/2 || y != p.Ship.Y {
		t.Errorf("muzzle = (%v, %v), want centered on the ship", x, y)
	}
	if _, _, ok := p.TryFire(); ok {
		t.Fatal("second shot fired inside the cooldown")
	}

	p.Update(0.6, 0)
	if _, _, ok := p.TryFire(); !ok {
		t.Fatal("shot still blocked after the cooldown elapsed")
	}
}

func TestPlayerHitLivesAndInvulnerability(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PlayerLives = 2
	p := NewPlayer(cfg, SpriteMeta{})

	if dead := p.Hit(); dead {
		t.Fatal("dead after the first hit with two lives")
	}
	if p.Lives != 1 {
		t.Errorf("lives = %d, want 1", p.Lives)
	}
	if p.Vulnerable() {
		t.Error("vulnerable immediately after a hit")
	}
	// A hit during the grace window takes nothing.
	if dead := p.Hit(); dead || p.Lives != 1 {
		t.Errorf("grace-window hit: dead=%v lives=%d, want false/1", dead, p.Lives)
	}

	p.Update(2.5, 0)
	if !p.Vulnerable() {
		t.Fatal("still invulnerable after the grace window")
	}
	if !p.Ship.Visible {
		t.Error("ship not visible after the blink ended")
	}

	if dead := p.Hit(); !dead {
		t.Fatal("not dead on the last life")
	}
	if p.Ship.Alive {
		t.Error("ship alive with no lives left")
	}
}
