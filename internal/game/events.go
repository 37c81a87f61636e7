package game

import "time"

// Event is a simulation occurrence emitted during a tick for external
// collaborators (rendering, audio, UI) to consume. The core itself never
// reacts to its own events.
type Event interface {
	Kind() string
}

// ItemCollectedEvent reports a dot or power item picked up by the player.
type ItemCollectedEvent struct {
	Item Item `json:"item"`
	Cell Cell `json:"cell"`
}

func (ItemCollectedEvent) Kind() string { return "item_collected" }

// PowerActivatedEvent reports the start of a power window.
type PowerActivatedEvent struct {
	Duration time.Duration `json:"duration_ms"`
}

func (PowerActivatedEvent) Kind() string { return "power_activated" }

// GhostEatenEvent reports the capture of a frightened ghost.
type GhostEatenEvent struct {
	Personality Personality `json:"-"`
	Cell        Cell        `json:"cell"`
	Points      int         `json:"points"`
	Combo       int         `json:"combo"`
}

func (GhostEatenEvent) Kind() string { return "ghost_eaten" }

// PlayerDeathEvent reports contact with a dangerous ghost.
type PlayerDeathEvent struct {
	LivesLeft int `json:"lives_left"`
}

func (PlayerDeathEvent) Kind() string { return "player_death" }

// LevelCompleteEvent reports that every collectible on the level is gone.
type LevelCompleteEvent struct {
	Level int `json:"level"`
	Score int `json:"score"`
}

func (LevelCompleteEvent) Kind() string { return "level_complete" }

// LevelResetEvent reports that the maze was rebuilt for a new level.
type LevelResetEvent struct {
	Level int `json:"level"`
}

func (LevelResetEvent) Kind() string { return "level_reset" }

// GameOverEvent reports life exhaustion; the session is terminal afterwards.
type GameOverEvent struct {
	Score int `json:"score"`
	Level int `json:"level"`
}

func (GameOverEvent) Kind() string { return "game_over" }
