package game

import "time"

// Maze dimensions (tiles)
const (
	MazeWidth  = 28
	MazeHeight = 31
)

// Simulation timing
const (
	TickRate     = 60 // ticks per second
	TickInterval = time.Second / TickRate
)

// Actor speeds (tiles per second)
const (
	PlayerSpeed        = 8.0
	PlayerPoweredSpeed = 9.0
	GhostSpeed         = 7.5
	GhostFrightSpeed   = 5.0
	GhostTunnelSpeed   = 4.0
	GhostEatenSpeed    = 12.0
	GhostHouseSpeed    = 4.0
)

// Scoring
const (
	DotPoints   = 10
	PowerPoints = 50
)

// GhostPointsTable maps the combo index to the points awarded for a capture.
var GhostPointsTable = [4]int{200, 400, 800, 1600}

// Capture mechanics
const (
	ComboDecay   = 10 * time.Second // combo resets after this long without a capture
	CaptureRange = 0.5              // tiles
)

// Power / frightened timing
const (
	FrightBaseDuration = 6 * time.Second
	FrightLevelShorten = 500 * time.Millisecond // subtracted per level past the first
)

// Ghost house release delays (level 1). Shortened on level progression.
const (
	ReleaseStep         = 2 * time.Second // delay between successive ghosts
	ReleaseLevelShorten = 500 * time.Millisecond
)

// Session state timing
const (
	ReadyDuration      = 2 * time.Second
	DeathDuration      = 2 * time.Second
	TransitionDuration = 2 * time.Second
)

// Lives
const StartingLives = 3

// Chase conditional personality: switch to flee when closer than this
// (Euclidean, tiles).
const WaryDistance = 8.0

// AmbushLead is how many tiles ahead of the player the ambush personality aims.
const AmbushLead = 4

// FlankLead is the intermediate lookahead used by the flank personality
// before reflecting through the anchor ghost.
const FlankLead = 2
