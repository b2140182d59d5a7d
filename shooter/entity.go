package shooter

// Entity geometry and tuning. Boxes are axis-aligned and anchored top-left.
const (
	PlayerSize   = 50.0
	PlayerSpeed  = 7.0
	PlayerLives  = 3
	PlayerBottom = 75.0 // gap between the player's top edge and the canvas bottom at spawn

	BulletWidth  = 5.0
	BulletHeight = 10.0
	BulletSpeed  = 5.0

	// Bullet x offsets relative to the player's left edge.
	BulletCenterOffset = 22.0
	BulletLeftOffset   = 0.0
	BulletRightOffset  = 45.0

	EnemySize      = 40.0
	EnemyBaseSpeed = 1.0
	EnemyLevelStep = 0.5

	HitFlashFrames = 10
	BoosterCharges = 10

	MaxLevel     = 100
	LevelSeconds = 60
)

// Intent is the set of movement directions currently held down.
type Intent struct {
	Up, Down, Left, Right bool
}

// Player is the ship the user steers. It owns its live bullets.
type Player struct {
	X, Y    float64
	Speed   float64
	Bullets []*Bullet
	Lives   int
	Moving  Intent
}

// NewPlayer places a fresh player centred horizontally near the bottom edge.
func NewPlayer(canvasW, canvasH float64) *Player {
	return &Player{
		X:     canvasW/2 - PlayerSize/2,
		Y:     canvasH - PlayerBottom,
		Speed: PlayerSpeed,
		Lives: PlayerLives,
	}
}

// Bullet travels straight up. Dead marks it for removal at the end of the
// collision pass.
type Bullet struct {
	X, Y  float64
	Speed float64
	Dead  bool
}

// Enemy descends from the top edge. Dead works as on Bullet.
type Enemy struct {
	X, Y  float64
	Speed float64
	Dead  bool
}

// EnemySpeed is the descent speed of an enemy spawned at level.
func EnemySpeed(level int) float64 {
	return EnemyBaseSpeed + float64(level)*EnemyLevelStep
}
