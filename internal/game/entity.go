package game

// EntityKind tags the closed set of game object kinds. Rendering and
// collision operate only on the embedded Sprite; kind-specific behavior
// dispatches on the tag.
type EntityKind int

const (
	KindEnemy EntityKind = iota
	KindPlayer
	KindBullet
	KindUFO
	KindParticle
)

// Entity is a drawable quad plus the payload fields of its kind. One flat
// struct instead of an inheritance chain; unused payload fields stay zero.
type Entity struct {
	Sprite
	Kind  EntityKind
	Alive bool

	// Enemy payload.
	Type   EnemyType
	Row    int
	Col    int
	Points int
	// The formation writes the target; the enemy copies it each update.
	// The indirection leaves room for easing without changing the
	// formation's contract.
	TargetX, TargetY float32
	ShootCooldown    float64
	Anim             Animator

	// Motion payload (bullets, saucer, particles).
	VelX, VelY float32
	FromPlayer bool
	Lifetime   float64
}

// NewEnemy places an enemy at its grid position with the given sprite
// metadata (size, points, frames).
func NewEnemy(t EnemyType, row, col int, x, y float32, meta SpriteMeta) *Entity {
	e := &Entity{
		Sprite:  NewSprite(x, y, meta.Width, meta.Height),
		Kind:    KindEnemy,
		Alive:   true,
		Type:    t,
		Row:     row,
		Col:     col,
		Points:  meta.Points,
		TargetX: x,
		TargetY: y,
		Anim:    NewAnimator(meta),
	}
	if e.Points == 0 {
		e.Points = PointsForType(t)
	}
	if tex := e.Anim.Texture(); tex != nil {
		e.SetTexture(tex)
	}
	return e
}

// NewBullet spawns a bullet centered horizontally on x.
func NewBullet(x, y, vy float32, fromPlayer bool) Entity {
	const w, h = 3, 10
	b := Entity{
		Sprite:     NewSprite(x-w/2, y, w, h),
		Kind:       KindBullet,
		Alive:      true,
		VelY:       vy,
		FromPlayer: fromPlayer,
	}
	if fromPlayer {
		b.R, b.G, b.B = 0.9, 1.0, 0.9
	} else {
		b.R, b.G, b.B = 1.0, 0.85, 0.4
	}
	return b
}

// Bounds returns the entity's axis-aligned box in pixel space, including
// scale. Rotation is ignored: collisions in this game are axis-aligned.
func (e *Entity) Bounds() (x0, y0, x1, y1 float32) {
	w := e.W * e.ScaleX
	h := e.H * e.ScaleY
	return e.X, e.Y, e.X + w, e.Y + h
}

// overlaps reports AABB intersection between two entities.
func overlaps(a, b *Entity) bool {
	ax0, ay0, ax1, ay1 := a.Bounds()
	bx0, by0, bx1, by1 := b.Bounds()
	return ax0 < bx1 && bx0 < ax1 && ay0 < by1 && by0 < ay1
}
