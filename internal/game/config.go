package game

// Batch geometry layout: two triangles per quad, 8 floats per vertex
// (position 2, texcoord 2, color 4).
const (
	BatchCapacity   = 1024
	VertsPerQuad    = 6
	FloatsPerVertex = 8
	FloatsPerQuad   = VertsPerQuad * FloatsPerVertex
)

// Enemy species. Species is a function of formation row only.
type EnemyType int

const (
	EnemySquid EnemyType = iota
	EnemyCrab
	EnemyOctopus
)

// Point values per species.
const (
	PointsSquid   = 30
	PointsCrab    = 20
	PointsOctopus = 10
	PointsUFO     = 100
)

// Config is built once at startup and threaded through constructors.
// Nothing reads tuning values from globals.
type Config struct {
	WindowWidth  int
	WindowHeight int
	Title        string

	// Atlas descriptor path; empty means solid-color fallback sprites.
	AtlasPath string

	Seed uint64

	// Player.
	PlayerSpeed    float32 // px/s
	PlayerCooldown float64 // s between shots
	PlayerLives    int
	PlayerY        float32 // ship baseline (px from top)

	// Bullets.
	BulletSpeed      float32 // px/s, player shots travel up
	EnemyBulletSpeed float32 // px/s, enemy shots travel down

	// Formation.
	FormationRows       int
	FormationCols       int
	FormationSpacingX   float32
	FormationSpacingY   float32
	FormationStartX     float32
	FormationStartY     float32
	FormationStepX      float32 // horizontal distance per discrete move
	FormationDropY      float32 // descent on edge bounce
	FormationBaseDelay  float64 // s between moves at full strength
	FormationMinDelay   float64 // delay floor as the wave thins out
	FormationLeftBound  float32
	FormationRightBound float32

	// Enemy fire.
	EnemyFireDelay  float64 // base cooldown per column shooter
	EnemyFireJitter float64 // random extra cooldown, 0..this

	// Bonus saucer.
	UFODelay float64 // s between spawns
	UFOSpeed float32 // px/s
	UFOY     float32
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:  800,
		WindowHeight: 600,
		Title:        "Invaders",

		PlayerSpeed:    260,
		PlayerCooldown: 0.45,
		PlayerLives:    3,
		PlayerY:        560,

		BulletSpeed:      420,
		EnemyBulletSpeed: 220,

		FormationRows:       5,
		FormationCols:       11,
		FormationSpacingX:   48,
		FormationSpacingY:   40,
		FormationStartX:     120,
		FormationStartY:     90,
		FormationStepX:      10,
		FormationDropY:      18,
		FormationBaseDelay:  0.9,
		FormationMinDelay:   0.06,
		FormationLeftBound:  20,
		FormationRightBound: 780,

		EnemyFireDelay:  1.6,
		EnemyFireJitter: 2.2,

		UFODelay: 18,
		UFOSpeed: 90,
		UFOY:     50,
	}
}

// TypeForRow maps a formation row to its species: the top row is the
// small squid, the next two rows crabs, the bottom rows octopuses.
func TypeForRow(row int) EnemyType {
	switch {
	case row == 0:
		return EnemySquid
	case row <= 2:
		return EnemyCrab
	default:
		return EnemyOctopus
	}
}

// PointsForType returns the score value of a species.
func PointsForType(t EnemyType) int {
	switch t {
	case EnemySquid:
		return PointsSquid
	case EnemyCrab:
		return PointsCrab
	default:
		return PointsOctopus
	}
}
