package game

import (
	"encoding/json"
	"math/rand"
	"time"
)

// SessionState is the top-level game state. Only StatePlaying advances the
// simulation; every timer in the core is a countdown driven from Step, so
// pausing freezes all of them with their remainders intact.
type SessionState int

const (
	StateReady SessionState = iota
	StatePlaying
	StatePaused
	StateDeath
	StateLevelTransition
	StateGameOver
)

func (s SessionState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateDeath:
		return "death"
	case StateLevelTransition:
		return "level_transition"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalJSON serializes SessionState as a string.
func (s SessionState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Session is one complete game: maze, actors, scheduler, and score. All
// mutation happens inside Step on a single goroutine; the owning room
// serializes access.
type Session struct {
	state     SessionState
	stateLeft time.Duration

	level int
	score int
	lives int

	layout []string
	maze   *Maze
	player *Player
	ghosts [GhostCount]*Ghost
	sched  *Scheduler
	combo  Combo
	rng    *rand.Rand
}

// NewSession builds a level-1 session over the default layout. The seed
// drives the only randomness in the simulation (frightened steering), so a
// fixed seed and input sequence reproduce a run exactly.
func NewSession(seed int64) (*Session, error) {
	return NewSessionWithLayout(DefaultLayout(), seed)
}

// NewSessionWithLayout builds a session over a custom layout.
func NewSessionWithLayout(layout []string, seed int64) (*Session, error) {
	s := &Session{
		layout: layout,
		level:  1,
		lives:  StartingLives,
		sched:  NewScheduler(DefaultWaves()),
		rng:    rand.New(rand.NewSource(seed)),
	}
	if err := s.buildLevel(); err != nil {
		return nil, err
	}
	s.enterReady()
	return s, nil
}

// buildLevel parses the maze and spawns all actors for the current level.
func (s *Session) buildLevel() error {
	mz, err := ParseLayout(s.layout)
	if err != nil {
		return err
	}
	s.maze = mz
	s.player = NewPlayer(mz.PlayerSpawn)
	s.spawnGhosts()
	return nil
}

// spawnGhosts resets the four ghosts to their house cells with their
// per-personality release delays.
func (s *Session) spawnGhosts() {
	for i := range s.ghosts {
		p := Personality(i)
		s.ghosts[i] = NewGhost(
			p,
			s.maze.GhostSpawns[i],
			p.ScatterCorner(s.maze.Width, s.maze.Height),
			releaseDelay(p, s.level),
			s.sched.Current(),
		)
	}
}

// releaseDelay returns the house-exit delay for a personality, shortened as
// levels progress.
func releaseDelay(p Personality, level int) time.Duration {
	d := time.Duration(p)*ReleaseStep - time.Duration(level-1)*ReleaseLevelShorten
	if d < 0 {
		d = 0
	}
	return d
}

// frightDuration returns the power-window length for a level; it shrinks to
// nothing on later levels.
func frightDuration(level int) time.Duration {
	d := FrightBaseDuration - time.Duration(level-1)*FrightLevelShorten
	if d < 0 {
		d = 0
	}
	return d
}

func (s *Session) enterReady() {
	s.state = StateReady
	s.stateLeft = ReadyDuration
}

// State returns the current session state.
func (s *Session) State() SessionState { return s.state }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the current level number, starting at 1.
func (s *Session) Level() int { return s.level }

// Maze returns the active maze grid.
func (s *Session) Maze() *Maze { return s.maze }

// ComboCount returns the raw capture-combo counter.
func (s *Session) ComboCount() int { return s.combo.Count() }

// WaveRemaining exposes the global wave countdown, mainly for tests and
// debug surfaces.
func (s *Session) WaveRemaining() time.Duration { return s.sched.Remaining() }

// SetDirection buffers the player's intended direction. Input outside the
// playing state is dropped.
func (s *Session) SetDirection(d Direction) {
	if s.state != StatePlaying {
		return
	}
	s.player.SetIntent(d)
}

// TogglePause switches between playing and paused. No timer advances while
// paused; resuming continues with identical remaining durations.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// Step advances the simulation by one fixed time quantum and returns the
// events emitted during the tick. Order within a playing tick is fixed:
// scheduler, ghosts, player, contact resolution.
func (s *Session) Step(dt time.Duration) []Event {
	switch s.state {
	case StatePlaying:
		return s.tick(dt)

	case StateReady:
		s.stateLeft -= dt
		if s.stateLeft <= 0 {
			s.state = StatePlaying
		}
		return nil

	case StateDeath:
		s.stateLeft -= dt
		if s.stateLeft <= 0 {
			if s.lives <= 0 {
				s.state = StateGameOver
				return []Event{GameOverEvent{Score: s.score, Level: s.level}}
			}
			s.resetActors()
			s.enterReady()
		}
		return nil

	case StateLevelTransition:
		s.stateLeft -= dt
		if s.stateLeft <= 0 {
			s.level++
			s.sched.Reset()
			if err := s.buildLevel(); err != nil {
				// The stored layout already parsed once; treat a failure here
				// as terminal rather than corrupting the session.
				s.state = StateGameOver
				return []Event{GameOverEvent{Score: s.score, Level: s.level}}
			}
			s.enterReady()
			return []Event{LevelResetEvent{Level: s.level}}
		}
		return nil

	default: // paused, game over
		return nil
	}
}

// resetActors returns all actors to their spawns after a death, clearing
// overrides. The wave schedule keeps its position; only a level reset rewinds
// it.
func (s *Session) resetActors() {
	s.player.Reset(s.maze.PlayerSpawn)
	s.spawnGhosts()
	s.combo.Reset()
}

func (s *Session) tick(dt time.Duration) []Event {
	var events []Event

	// Global wave timeline.
	if mode, changed := s.sched.Advance(dt); changed {
		for _, g := range s.ghosts {
			g.SetBaseMode(mode)
		}
	}

	// Power window and combo decay.
	if s.player.TickPower(dt) {
		for _, g := range s.ghosts {
			g.Unfrighten()
		}
	}
	s.combo.Tick(dt)

	// Position snapshot for anchor reads, taken before any actor moves.
	snap := s.snapshot()

	for _, g := range s.ghosts {
		g.Update(s.maze, dt, snap, s.rng)
	}

	s.player.Update(s.maze, dt)
	events = append(events, s.collect()...)

	contactEvents, scored, died := ResolveContacts(s.player, s.ghosts[:], &s.combo)
	events = append(events, contactEvents...)
	s.score += scored
	if died {
		s.lives--
		s.state = StateDeath
		s.stateLeft = DeathDuration
		return append(events, PlayerDeathEvent{LivesLeft: s.lives})
	}

	if s.maze.RemainingCount() == 0 {
		s.state = StateLevelTransition
		s.stateLeft = TransitionDuration
		return append(events, LevelCompleteEvent{Level: s.level, Score: s.score})
	}
	return events
}

// snapshot captures the actor positions the targeting function reads. The
// anchor is the pursuit ghost, available even while housed or eaten.
func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		Player:    s.player.Pos.Cell,
		PlayerDir: s.player.Dir,
	}
	for _, g := range s.ghosts {
		if g.Personality == PersonalityPursuit {
			anchor := g.Pos.Cell
			snap.Anchor = &anchor
			break
		}
	}
	return snap
}

// collect resolves item pickup at the player's current tile. Power items
// additionally force the frightened override and reset the combo.
func (s *Session) collect() []Event {
	cell := s.player.Pos.Cell
	item := s.maze.Collect(cell.Col, cell.Row)
	if item == ItemNone {
		return nil
	}

	events := []Event{ItemCollectedEvent{Item: item, Cell: cell}}
	switch item {
	case ItemDot:
		s.score += DotPoints
	case ItemPower:
		s.score += PowerPoints
		s.combo.Reset()
		d := frightDuration(s.level)
		events = append(events, PowerActivatedEvent{Duration: d})
		if d > 0 {
			s.player.SetPower(d)
			for _, g := range s.ghosts {
				g.Frighten()
			}
		}
	}
	return events
}

// ActorView is a serializable actor position for transport.
type ActorView struct {
	Col  int       `json:"col"`
	Row  int       `json:"row"`
	OffX float64   `json:"off_x"`
	OffY float64   `json:"off_y"`
	Dir  Direction `json:"dir"`
}

// GhostView extends ActorView with ghost identity and state.
type GhostView struct {
	ActorView
	Personality string     `json:"personality"`
	State       GhostState `json:"state"`
}

// View is the per-tick snapshot broadcast to clients.
type View struct {
	State     SessionState `json:"state"`
	Level     int          `json:"level"`
	Score     int          `json:"score"`
	Lives     int          `json:"lives"`
	Remaining int          `json:"remaining"`
	Powered   bool         `json:"powered"`
	Player    ActorView    `json:"player"`
	Ghosts    []GhostView  `json:"ghosts"`
}

func actorView(m Mover) ActorView {
	return ActorView{
		Col:  m.Pos.Col,
		Row:  m.Pos.Row,
		OffX: m.Pos.OffX,
		OffY: m.Pos.OffY,
		Dir:  m.Dir,
	}
}

// View builds the transport snapshot for the current tick.
func (s *Session) View() View {
	v := View{
		State:     s.state,
		Level:     s.level,
		Score:     s.score,
		Lives:     s.lives,
		Remaining: s.maze.RemainingCount(),
		Powered:   s.player.Powered(),
		Player:    actorView(s.player.Mover),
		Ghosts:    make([]GhostView, 0, GhostCount),
	}
	for _, g := range s.ghosts {
		v.Ghosts = append(v.Ghosts, GhostView{
			ActorView:   actorView(g.Mover),
			Personality: g.Personality.String(),
			State:       g.State,
		})
	}
	return v
}
