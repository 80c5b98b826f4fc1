package game

// BulletSystem pools every live shot, player and enemy alike.
type BulletSystem struct {
	Bullets []Entity
	cfg     Config
}

func NewBulletSystem(cfg Config) *BulletSystem {
	return &BulletSystem{cfg: cfg}
}

// SpawnPlayer fires a shot travelling up from the ship's muzzle.
func (bs *BulletSystem) SpawnPlayer(x, y float32) {
	b := NewBullet(x, y-10, -bs.cfg.BulletSpeed, true)
	bs.Bullets = append(bs.Bullets, b)
}

// SpawnEnemy fires a shot travelling down from an enemy.
func (bs *BulletSystem) SpawnEnemy(x, y float32) {
	b := NewBullet(x, y, bs.cfg.EnemyBulletSpeed, false)
	bs.Bullets = append(bs.Bullets, b)
}

// Update advances bullets and culls anything off screen.
func (bs *BulletSystem) Update(dt float64) {
	h := float32(bs.cfg.WindowHeight)
	for i := range bs.Bullets {
		b := &bs.Bullets[i]
		if !b.Alive {
			continue
		}
		b.Y += b.VelY * float32(dt)
		if b.Y+b.H < 0 || b.Y > h {
			b.Alive = false
		}
	}
}

// RemoveDead compacts the pool in place, keeping order.
func (bs *BulletSystem) RemoveDead() {
	live := bs.Bullets[:0]
	for i := range bs.Bullets {
		if bs.Bullets[i].Alive {
			live = append(live, bs.Bullets[i])
		}
	}
	bs.Bullets = live
}

// PlayerShotCount reports live player shots (used to cap fire rate at one
// on screen, arcade style, when desired by callers).
func (bs *BulletSystem) PlayerShotCount() int {
	n := 0
	for i := range bs.Bullets {
		if bs.Bullets[i].Alive && bs.Bullets[i].FromPlayer {
			n++
		}
	}
	return n
}
