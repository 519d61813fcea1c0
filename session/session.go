// Package session runs one climb: the tower, the player, the beat line and
// the ability bar, driven by input events and a fixed tick.
package session

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"time"

	"github.com/milk9111/higher/ability"
	"github.com/milk9111/higher/beat"
	"github.com/milk9111/higher/chunk"
	"github.com/milk9111/higher/config"
	"github.com/milk9111/higher/input"
	"github.com/milk9111/higher/player"
	"github.com/milk9111/higher/tile"
	"github.com/milk9111/higher/tower"
	log "github.com/sirupsen/logrus"
)

var ErrNoFS = errors.New("session: no asset filesystem")

// Outcome says why a run ended.
type Outcome int

const (
	Running Outcome = iota
	// Fell means the floor passed the player.
	Fell
	// Finished means the beat line ran out.
	Finished
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Fell:
		return "fell"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Deps are the session's external resources. Rand and Clock default to a
// time-seeded generator and the clock named in the config.
type Deps struct {
	FS    fs.FS
	Rand  *rand.Rand
	Clock beat.Clock
}

type Session struct {
	cfg config.Config

	loader *chunk.Loader
	tower  *tower.Tower
	player *player.Player
	line   *beat.Line
	beats  io.Closer
	bar    *ability.Bar

	scheduler *Scheduler

	score   int
	missed  int
	outcome Outcome
}

func New(cfg config.Config, deps Deps) (*Session, error) {
	if deps.FS == nil {
		return nil, ErrNoFS
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if deps.Clock == nil {
		if cfg.Beat.WallClock {
			deps.Clock = beat.NewWallClock(nil)
		} else {
			deps.Clock = beat.NewFrameClock(cfg.FPS)
		}
	}

	selector, err := cfg.Selector(deps.FS)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{cfg: cfg}
	s.loader = chunk.NewLoader(deps.FS, cfg.Tower.ChunkDir, cfg.Tower.Width, selector, deps.Rand)
	s.tower, err = tower.New(s.loader, tower.Options{
		Width:          cfg.Tower.Width,
		Height:         cfg.Tower.Height,
		Margin:         cfg.Tower.Margin,
		AnimationTicks: cfg.Tower.FloorAnimationTicks,
		StartChunk:     cfg.Tower.StartChunk,
	})
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s.player, err = player.New(s.tower, cfg.SpawnPos())
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	defs, err := cfg.AbilityDefs()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.bar, err = ability.NewBar(cfg.AbilityKeys, s.player.MoveSequence, defs...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	f, err := beat.Open(deps.FS, cfg.Beat.File, cfg.Beat.Window())
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.line, err = beat.NewLine(f, deps.Clock, beat.Options{Loop: cfg.Beat.Loop(), Guard: cfg.Beat.Guard()})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("session: %w", err)
	}
	s.beats = f

	s.scheduler = NewScheduler(
		SystemFunc(beatSystem),
		SystemFunc(abilitySystem),
		SystemFunc(towerSystem),
	)

	log.WithFields(log.Fields{
		"spawn":     cfg.SpawnPos(),
		"beats":     cfg.Beat.File,
		"abilities": len(defs),
		"rows":      s.tower.LoadedHeight(),
	}).Info("session started")
	return s, nil
}

// Handle applies one input event. A press only counts while a beat is in its
// hit window; it then consumes the beat whether or not the move succeeds.
func (s *Session) Handle(ev input.Event) {
	if s.outcome != Running || ev.Type != input.KeyDown {
		return
	}
	step, isMove := s.cfg.Keys.Direction(ev.Key)
	if !isMove && !s.bar.Bound(ev.Key) {
		return
	}
	if !s.line.IsActive() {
		return
	}
	s.line.Deactivate()

	if isMove {
		s.player.MoveSequence(step)
	} else if !s.bar.Handle(ev) {
		log.WithField("key", ev.Key).Debug("ability cooling down")
	}
	s.tower.MoveFloor(1)
	s.score++
}

// Update runs one tick. Errors are asset failures and end the session.
func (s *Session) Update() error {
	if s.outcome != Running {
		return nil
	}
	if err := s.scheduler.Update(s); err != nil {
		return fmt.Errorf("session: update: %w", err)
	}

	switch {
	case !s.player.IsAlive():
		s.outcome = Fell
	case s.line.Done():
		s.outcome = Finished
	}
	if s.outcome != Running {
		log.WithFields(log.Fields{"outcome": s.outcome, "score": s.score, "missed": s.missed}).Info("session over")
	}
	return nil
}

// Reload drops cached chunk listings after assets changed on disk.
func (s *Session) Reload() {
	s.loader.Invalidate()
}

func (s *Session) Close() error {
	if s.beats == nil {
		return nil
	}
	err := s.beats.Close()
	s.beats = nil
	return err
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Missed() int {
	return s.missed
}

func (s *Session) Alive() bool {
	return s.player.IsAlive()
}

func (s *Session) Done() bool {
	return s.outcome != Running
}

func (s *Session) Outcome() Outcome {
	return s.outcome
}

func (s *Session) Config() config.Config {
	return s.cfg
}

func (s *Session) Tower() *tower.Tower {
	return s.tower
}

func (s *Session) Player() tile.Pos {
	return s.player.Pos()
}

func (s *Session) Line() *beat.Line {
	return s.line
}

func (s *Session) Bar() *ability.Bar {
	return s.bar
}
