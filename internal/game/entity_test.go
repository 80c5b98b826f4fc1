package game

import "testing"

func TestNewEnemyDefaults(t *testing.T) {
	e := NewEnemy(EnemyCrab, 1, 2, 50, 60, SpriteMeta{Width: 32, Height: 24})
	if e.Points != PointsCrab {
		t.Errorf("points = %d, want species default %d", e.Points, PointsCrab)
	}
	if e.TargetX != 50 || e.TargetY != 60 {
		t.Errorf("target = (%v, %v), want the spawn position", e.TargetX, e.TargetY)
	}
	if e.Kind != KindEnemy || !e.Alive {
		t.Errorf("kind/alive = %v/%v", e.Kind, e.Alive)
	}

	// Explicit metadata points win over the species default.
	e = NewEnemy(EnemyCrab, 0, 0, 0, 0, SpriteMeta{Width: 32, Height: 24, Points: 55})
	if e.Points != 55 {
		t.Errorf("points = %d, want 55", e.Points)
	}
}

func TestNewBulletCentered(t *testing.T) {
	b := NewBullet(100, 50, -400, true)
	if b.X != 100-b.W/2 {
		t.Errorf("x = %v, want centered on 100", b.X)
	}
	if b.VelY != -400 || !b.FromPlayer {
		t.Errorf("vel/owner = %v/%v", b.VelY, b.FromPlayer)
	}
}

func TestOverlaps(t *testing.T) {
	box := func(x, y, w, h float32) *Entity {
		e := &Entity{Sprite: NewSprite(x, y, w, h)}
		return e
	}
	cases := []struct {
		name string
		a, b *Entity
		want bool
	}{
		{"overlapping", box(0, 0, 10, 10), box(5, 5, 10, 10), true},
		{"contained", box(0, 0, 10, 10), box(2, 2, 2, 2), true},
		{"touching edges", box(0, 0, 10, 10), box(10, 0, 10, 10), false},
		{"separate", box(0, 0, 10, 10), box(20, 20, 5, 5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlaps(tc.a, tc.b); got != tc.want {
				t.Errorf("overlaps = %v, want %v", got, tc.want)
			}
			if got := overlaps(tc.b, tc.a); got != tc.want {
				t.Errorf("overlaps reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBoundsIncludesScale(t *testing.T) {
	e := &Entity{Sprite: NewSprite(10, 20, 4, 6)}
	e.ScaleX, e.ScaleY = 2, 3
	x0, y0, x1, y1 := e.Bounds()
	if x0 != 10 || y0 != 20 || x1 != 18 || y1 != 38 {
		t.Errorf("bounds = (%v, %v, %v, %v), want (10, 20, 18, 38)", x0, y0, x1, y1)
	}
}
