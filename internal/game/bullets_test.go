package game

import "testing"

func TestBulletTravelAndCull(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BulletSpeed = 400
	cfg.EnemyBulletSpeed = 200
	bs := NewBulletSystem(cfg)

	bs.SpawnPlayer(100, 500)
	bs.SpawnEnemy(200, 100)
	if len(bs.Bullets) != 2 {
		t.Fatalf("bullets = %d, want 2", len(bs.Bullets))
	}
	if !bs.Bullets[0].FromPlayer || bs.Bullets[1].FromPlayer {
		t.Fatal("ownership flags wrong")
	}
	if bs.PlayerShotCount() != 1 {
		t.Errorf("PlayerShotCount = %d, want 1", bs.PlayerShotCount())
	}

	y0, y1 := bs.Bullets[0].Y, bs.Bullets[1].Y
	bs.Update(0.1)
	if bs.Bullets[0].Y >= y0 {
		t.Error("player shot did not travel up")
	}
	if bs.Bullets[1].Y <= y1 {
		t.Error("enemy shot did not travel down")
	}

	// Run both off screen.
	for i := 0; i < 100; i++ {
		bs.Update(0.1)
	}
	bs.RemoveDead()
	if len(bs.Bullets) != 0 {
		t.Errorf("bullets = %d after culling, want 0", len(bs.Bullets))
	}
}

func TestRemoveDeadKeepsOrder(t *testing.T) {
	bs := NewBulletSystem(DefaultConfig())
	bs.SpawnPlayer(10, 500)
	bs.SpawnPlayer(20, 500)
	bs.SpawnPlayer(30, 500)
	bs.Bullets[1].Alive = false

	bs.RemoveDead()
	if len(bs.Bullets) != 2 {
		t.Fatalf("bullets = %d, want 2", len(bs.Bullets))
	}
	// Centered spawn: x is the muzzle minus half the bullet width.
	if bs.Bullets[0].X >= bs.Bullets[1].X {
		t.Errorf("order broken: %v then %v", bs.Bullets[0].X, bs.Bullets[1].X)
	}
}
