package game

import (
	"fmt"
	"log"
	"math"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Run owns the whole session: window, GL context, asset loading and the
// frame loop. It returns only on window close or a fatal init error.
func Run(cfg Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	fbW, fbH := window.GetFramebufferSize()
	ctx, err := NewGraphicsContext(fbW, fbH)
	if err != nil {
		return fmt.Errorf("graphics context: %w", err)
	}
	ctx.SetClearColor(0.02, 0.02, 0.06, 1)

	rend, err := NewRenderer(ctx)
	if err != nil {
		return err
	}
	defer rend.Destroy()
	// Projection works in logical window pixels; the viewport already
	// covers the (possibly hidpi) framebuffer.
	rend.SetViewport(cfg.WindowWidth, cfg.WindowHeight)

	g := newGame(cfg, window, ctx, rend)
	defer g.textures.ReleaseAll()
	defer g.font.Release()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if g.input.ActionTriggered(window, "quit") {
			window.SetShouldClose(true)
			continue
		}

		g.update(dt)
		if g.fatal != nil {
			return g.fatal
		}
		g.render()
		window.SwapBuffers()
	}
	return nil
}

// Game wires every subsystem together for one session.
type Game struct {
	cfg    Config
	window *glfw.Window
	ctx    *GraphicsContext
	rend   *Renderer
	batch  *SpriteBatch

	input    *Input
	events   *EventQueue
	session  *GameSession
	textures *TextureManager
	load     *AtlasLoad
	font     *Font

	formation *Formation
	player    *Player
	bullets   *BulletSystem
	ufo       *UFOSystem
	particles *ParticleSystem

	rng   *Rand
	fatal error
}

func newGame(cfg Config, window *glfw.Window, ctx *GraphicsContext, rend *Renderer) *Game {
	g := &Game{
		cfg:      cfg,
		window:   window,
		ctx:      ctx,
		rend:     rend,
		batch:    rend.Batch(),
		input:    NewInput(),
		events:   NewEventQueue(),
		textures: NewTextureManager(),
		font:     NewFont(),
		rng:      NewRand(cfg.Seed),
	}
	g.session = NewGameSession(g.events)
	g.particles = NewParticleSystem(cfg.Seed ^ 0xBEAD)

	if cfg.AtlasPath != "" {
		g.load = g.textures.BeginLoad(cfg.AtlasPath)
	}
	return g
}

// enemyMeta resolves species metadata from the atlas, falling back to a
// tinted untextured quad when the sprite is not loaded.
func (g *Game) enemyMeta(t EnemyType) SpriteMeta {
	names := [...]string{"squid", "crab", "octopus"}
	if m, ok := g.textures.Meta(names[t]); ok {
		return m
	}
	return defaultEnemyMeta(t)
}

func (g *Game) spriteMeta(name string) SpriteMeta {
	m, _ := g.textures.Meta(name)
	return m
}

func (g *Game) startGame() {
	g.session.Score = 0
	g.session.Wave = 1

	g.player = NewPlayer(g.cfg, g.spriteMeta("player"))
	g.bullets = NewBulletSystem(g.cfg)
	g.ufo = NewUFOSystem(g.cfg, g.spriteMeta("ufo"), g.rng)
	g.particles.Clear()
	g.formation = NewFormation(g.cfg, g.enemyMeta)
	g.startWave()

	g.session.SetState(StatePlaying)
}

// startWave rebuilds the grid; each wave marches a little faster.
func (g *Game) startWave() {
	wave := g.session.Wave
	g.formation.Reset()
	g.formation.SetBaseDelay(g.cfg.FormationBaseDelay * math.Pow(0.9, float64(wave-1)))
	g.formation.BuildGrid(
		g.cfg.FormationRows, g.cfg.FormationCols,
		g.cfg.FormationSpacingX, g.cfg.FormationSpacingY,
		g.cfg.FormationStartX, g.cfg.FormationStartY,
		TypeForRow,
	)
	g.bullets.Bullets = g.bullets.Bullets[:0]
	g.ufo.Reset()
}

func (g *Game) update(dt float64) {
	// Deliver last frame's events before anything mutates this frame.
	g.events.Drain(g.handleEvent)

	switch g.session.State {
	case StateLoading:
		if g.load != nil {
			if !g.load.Ready() {
				return
			}
			if err := g.textures.Commit(g.load); err != nil {
				// Malformed descriptor: fatal to the session.
				g.fatal = fmt.Errorf("atlas load: %w", err)
				return
			}
			g.load = nil
		}
		g.session.SetState(StateMenu)

	case StateMenu:
		if g.input.ActionTriggered(g.window, "start") || g.input.ActionTriggered(g.window, "fire") {
			g.startGame()
		}

	case StatePlaying:
		if g.input.ActionTriggered(g.window, "pause") {
			g.session.SetState(StatePaused)
			return
		}
		g.updatePlaying(dt)

	case StatePaused:
		if g.input.ActionTriggered(g.window, "pause") {
			g.session.SetState(StatePlaying)
		}

	case StateGameOver:
		if g.input.ActionTriggered(g.window, "start") || g.input.ActionTriggered(g.window, "fire") {
			g.session.SetState(StateMenu)
		}
	}
}

func (g *Game) updatePlaying(dt float64) {
	axis := g.input.HorizontalAxis(g.window)
	g.player.Update(dt, axis)
	if g.input.ActionHeld(g.window, "fire") {
		if x, y, ok := g.player.TryFire(); ok {
			g.bullets.SpawnPlayer(x, y)
		}
	}

	g.formation.Update(dt)
	g.enemyFire()
	g.bullets.Update(dt)
	g.ufo.Update(dt)
	g.particles.Update(dt)

	g.collide()
	g.bullets.RemoveDead()

	if g.formation.IsCleared() {
		g.events.Emit(Event{Type: EventWaveCleared, Data: g.session.Wave})
		g.session.Wave++
		g.startWave()
		return
	}

	// Invasion complete once the formation reaches the ship's row.
	_, _, _, maxY := g.formation.AliveBounds()
	if maxY >= g.cfg.PlayerY {
		g.session.SetState(StateGameOver)
	}
}

// enemyFire lets the front unit of each column shoot once its cooldown
// has run out.
func (g *Game) enemyFire() {
	for _, e := range g.formation.Shooters() {
		if e.ShootCooldown > 0 {
			continue
		}
		e.ShootCooldown = g.cfg.EnemyFireDelay + g.rng.RangeF(0, g.cfg.EnemyFireJitter)
		g.bullets.SpawnEnemy(e.X+e.W/2, e.Y+e.H)
	}
}

func (g *Game) collide() {
	for i := range g.bullets.Bullets {
		b := &g.bullets.Bullets[i]
		if !b.Alive {
			continue
		}

		if b.FromPlayer {
			for _, e := range g.formation.Enemies {
				if !e.Alive || !overlaps(b, e) {
					continue
				}
				b.Alive = false
				e.Alive = false
				g.events.Emit(Event{
					Type: EventEnemyKilled,
					X:    e.X + e.W/2, Y: e.Y + e.H/2,
					Data: e.Points,
				})
				break
			}
			if b.Alive && g.ufo.Active() && overlaps(b, &g.ufo.Saucer) {
				b.Alive = false
				s := &g.ufo.Saucer
				x, y := s.X+s.W/2, s.Y+s.H/2
				points := g.ufo.Kill()
				g.events.Emit(Event{Type: EventUFOKilled, X: x, Y: y, Data: points})
			}
			continue
		}

		if g.player.Vulnerable() && overlaps(b, &g.player.Ship) {
			b.Alive = false
			ship := &g.player.Ship
			x, y := ship.X+ship.W/2, ship.Y+ship.H/2
			dead := g.player.Hit()
			g.events.Emit(Event{Type: EventPlayerHit, X: x, Y: y, Data: g.player.Lives})
			if dead {
				g.session.SetState(StateGameOver)
			}
		}
	}
}

func (g *Game) handleEvent(e Event) {
	switch e.Type {
	case EventEnemyKilled:
		g.session.AddScore(e.Data)
		g.particles.SpawnBurst(e.X, e.Y, 0.95, 0.9, 0.5, 12)
	case EventUFOKilled:
		g.session.AddScore(e.Data)
		g.particles.SpawnBurst(e.X, e.Y, 1.0, 0.4, 0.3, 18)
	case EventPlayerHit:
		g.particles.SpawnBurst(e.X, e.Y, 0.4, 1.0, 0.5, 16)
	case EventWaveCleared:
		log.Printf("wave %d cleared, score %d", e.Data, g.session.Score)
	case EventStateChanged:
		// HUD reads the session directly; nothing to do yet.
	}
}

func (g *Game) render() {
	g.ctx.Clear()
	b := g.batch
	b.Begin()

	w := float32(g.cfg.WindowWidth)

	switch g.session.State {
	case StateLoading:
		g.centerText(b, "LOADING...", 280, 3, 0.8, 0.8, 0.8)

	case StateMenu:
		g.centerText(b, "INVADERS", 180, 6, 0.4, 1.0, 0.5)
		g.centerText(b, "PRESS ENTER TO PLAY", 320, 2, 0.9, 0.9, 0.9)
		if g.session.HiScore > 0 {
			g.centerText(b, fmt.Sprintf("HI-SCORE %d", g.session.HiScore), 380, 2, 0.7, 0.7, 0.7)
		}

	default:
		for _, e := range g.formation.AliveEnemies() {
			b.Draw(&e.Sprite)
		}
		if g.ufo.Active() {
			b.Draw(&g.ufo.Saucer.Sprite)
		}
		for i := range g.bullets.Bullets {
			if g.bullets.Bullets[i].Alive {
				b.Draw(&g.bullets.Bullets[i].Sprite)
			}
		}
		g.particles.Draw(b)
		if g.player.Ship.Alive {
			b.Draw(&g.player.Ship.Sprite)
		}

		g.font.Draw(b, fmt.Sprintf("SCORE %d", g.session.Score), 10, 8, 2, 1, 1, 1, 1)
		lives := fmt.Sprintf("LIVES %d", g.player.Lives)
		g.font.Draw(b, lives, w-g.font.Width(lives, 2)-10, 8, 2, 1, 1, 1, 1)
		g.centerText(b, fmt.Sprintf("WAVE %d", g.session.Wave), 8, 2, 0.7, 0.7, 0.7)

		if g.session.State == StatePaused {
			g.centerText(b, "PAUSED", 280, 4, 0.9, 0.9, 0.4)
		}
		if g.session.State == StateGameOver {
			g.centerText(b, "GAME OVER", 260, 5, 1.0, 0.3, 0.3)
			g.centerText(b, "PRESS ENTER", 340, 2, 0.9, 0.9, 0.9)
		}
	}

	b.End()
}

func (g *Game) centerText(b *SpriteBatch, text string, y, scale float32, r, gc, bc float32) {
	x := (float32(g.cfg.WindowWidth) - g.font.Width(text, scale)) / 2
	g.font.Draw(b, text, x, y, scale, r, gc, bc, 1)
}
