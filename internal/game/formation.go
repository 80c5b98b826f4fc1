package game

// Formation is the state machine over the collective enemy grid: lockstep
// horizontal marching with edge-bounce-and-descend, speeding up as the
// wave thins out.
type Formation struct {
	Enemies []*Entity

	dir       int // +1 right, -1 left
	moveTimer float64
	total     int

	baseDelay  float64
	minDelay   float64
	stepX      float32
	dropY      float32
	leftBound  float32
	rightBound float32

	rows, cols int

	// metaFor supplies per-species sprite metadata (size, frames,
	// points). nil falls back to bare defaults.
	metaFor func(EnemyType) SpriteMeta
}

func NewFormation(cfg Config, metaFor func(EnemyType) SpriteMeta) *Formation {
	return &Formation{
		dir:        1,
		baseDelay:  cfg.FormationBaseDelay,
		minDelay:   cfg.FormationMinDelay,
		stepX:      cfg.FormationStepX,
		dropY:      cfg.FormationDropY,
		leftBound:  cfg.FormationLeftBound,
		rightBound: cfg.FormationRightBound,
		metaFor:    metaFor,
	}
}

func defaultEnemyMeta(t EnemyType) SpriteMeta {
	m := SpriteMeta{Width: 32, Height: 24, Points: PointsForType(t)}
	if t == EnemySquid {
		m.Width = 24
	}
	return m
}

// BuildGrid deterministically places rows x cols enemies on a regular
// grid. Species is a function of row index only.
func (f *Formation) BuildGrid(rows, cols int, spacingX, spacingY, startX, startY float32, typeForRow func(int) EnemyType) {
	f.Enemies = f.Enemies[:0]
	f.rows = rows
	f.cols = cols
	for row := 0; row < rows; row++ {
		t := typeForRow(row)
		meta := defaultEnemyMeta(t)
		if f.metaFor != nil {
			meta = f.metaFor(t)
		}
		for col := 0; col < cols; col++ {
			x := startX + float32(col)*spacingX
			y := startY + float32(row)*spacingY
			f.Enemies = append(f.Enemies, NewEnemy(t, row, col, x, y, meta))
		}
	}
	f.total = len(f.Enemies)
}

// moveDelay shrinks linearly with the living count and is clamped to a
// floor so the last enemies never freeze the timer.
func (f *Formation) moveDelay(alive int) float64 {
	if f.total == 0 {
		return f.baseDelay
	}
	d := f.baseDelay * float64(alive) / float64(f.total)
	if d < f.minDelay {
		d = f.minDelay
	}
	return d
}

// Update accumulates the move timer and performs at most one discrete
// formation move per tick, then advances every living enemy's per-entity
// state.
func (f *Formation) Update(dt float64) {
	alive := f.AliveCount()
	if alive > 0 {
		f.moveTimer += dt
		if f.moveTimer >= f.moveDelay(alive) {
			f.moveTimer = 0
			f.step()
		}
	}
	for _, e := range f.Enemies {
		if !e.Alive {
			continue
		}
		e.X, e.Y = e.TargetX, e.TargetY
		e.Anim.Update(dt)
		if tex := e.Anim.Texture(); tex != nil {
			e.SetTexture(tex)
		}
		if e.ShootCooldown > 0 {
			e.ShootCooldown -= dt
		}
	}
}

// step performs one discrete move: either every living enemy drops and
// the direction reverses (when the next horizontal step would cross a
// boundary), or every living enemy translates horizontally. Never both in
// one tick.
func (f *Formation) step() {
	minX, _, maxX, _ := f.AliveBounds()

	atEdge := (f.dir > 0 && maxX+f.stepX > f.rightBound) ||
		(f.dir < 0 && minX-f.stepX < f.leftBound)

	if atEdge {
		for _, e := range f.Enemies {
			if e.Alive {
				e.TargetY += f.dropY
			}
		}
		f.dir = -f.dir
		return
	}
	dx := f.stepX * float32(f.dir)
	for _, e := range f.Enemies {
		if e.Alive {
			e.TargetX += dx
		}
	}
}

// AliveBounds returns the axis-aligned bounding box of all living
// enemies' formation targets.
func (f *Formation) AliveBounds() (minX, minY, maxX, maxY float32) {
	first := true
	for _, e := range f.Enemies {
		if !e.Alive {
			continue
		}
		x0, y0 := e.TargetX, e.TargetY
		x1 := x0 + e.W*e.ScaleX
		y1 := y0 + e.H*e.ScaleY
		if first {
			minX, minY, maxX, maxY = x0, y0, x1, y1
			first = false
			continue
		}
		minX = minF32(minX, x0)
		minY = minF32(minY, y0)
		maxX = maxF32(maxX, x1)
		maxY = maxF32(maxY, y1)
	}
	return
}

func (f *Formation) AliveCount() int {
	n := 0
	for _, e := range f.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// AliveEnemies returns the living enemies; the only channel the renderer
// needs.
func (f *Formation) AliveEnemies() []*Entity {
	out := make([]*Entity, 0, len(f.Enemies))
	for _, e := range f.Enemies {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}

// IsCleared reports whether the wave is finished.
func (f *Formation) IsCleared() bool {
	return f.AliveCount() == 0
}

// Shooters returns, for each occupied column, the living enemy with the
// greatest row index: the front unit toward the player and the only one
// eligible to fire. Derived live from current state, never cached.
func (f *Formation) Shooters() []*Entity {
	front := make([]*Entity, f.cols)
	for _, e := range f.Enemies {
		if !e.Alive || e.Col < 0 || e.Col >= f.cols {
			continue
		}
		if front[e.Col] == nil || e.Row > front[e.Col].Row {
			front[e.Col] = e
		}
	}
	out := make([]*Entity, 0, f.cols)
	for _, e := range front {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Dir returns the current horizontal direction (+1 or -1).
func (f *Formation) Dir() int { return f.dir }

// SetBaseDelay overrides the full-strength move delay, e.g. to speed up
// later waves. The floor from the config still applies.
func (f *Formation) SetBaseDelay(d float64) {
	if d < f.minDelay {
		d = f.minDelay
	}
	f.baseDelay = d
}

// Reset clears all enemies and restores the initial direction and timer.
// The formation is empty until BuildGrid is called again.
func (f *Formation) Reset() {
	f.Enemies = f.Enemies[:0]
	f.dir = 1
	f.moveTimer = 0
	f.total = 0
	f.rows = 0
	f.cols = 0
}
