// Package game implements the wordfall simulation core: falling words,
// stacking, spawning, letter and relation matching, timed bonuses and
// scoring, orchestrated by Engine.
//
// The package contains no terminal or timer code. The host drives it with
// lifecycle calls, Tick and keystrokes from a single goroutine.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/dictionary"
)

// State is the engine lifecycle state.
type State int

const (
	StateIdle    State = iota // Not started or stopped
	StateRunning              // Accepting ticks and keystrokes
	StatePaused               // All cadences suspended
	StateOver                 // A word reached the floor
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "?"
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock sets the time source.
func WithClock(c core.Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithListener sets the event listener.
func WithListener(fn Listener) Option {
	return func(e *Engine) {
		e.listener = fn
	}
}

// Engine owns the word arena and routes ticks, keystrokes and lifecycle
// calls to the components. It is not safe for concurrent use.
type Engine struct {
	cfg      config.WordfallConfig
	dict     *dictionary.Dictionary
	clock    core.Clock
	rng      *rand.Rand
	log      *log.Logger
	listener Listener

	arena      *Arena
	resolver   *Resolver
	spawner    *Spawner
	catalog    *Catalog
	primary    *PrimaryMatcher
	relation   *RelationMatcher
	bonus      *BonusScheduler
	score      *Score
	difficulty *config.DifficultyManager

	fieldW, fieldH float64
	wordSpeed      float64

	state       State
	lastTick    time.Time
	elapsed     time.Duration
	lastSecond  int64
	destroyed   int
	frozen      bool
	caseActive  bool
	savedSpeeds map[WordID]float64
}

// New creates an idle engine. The runtime config supplies the screen size
// and RNG seed; a nil dictionary is treated as empty.
func New(rt core.RuntimeConfig, cfg config.WordfallConfig, dict *dictionary.Dictionary, opts ...Option) *Engine {
	if dict == nil {
		dict = dictionary.Empty()
	}
	fw, fh := rt.FieldSize()

	e := &Engine{
		cfg:         cfg,
		dict:        dict,
		clock:       core.SystemClock{},
		rng:         rand.New(rand.NewSource(rt.Seed)),
		log:         log.New(io.Discard),
		fieldW:      fw,
		fieldH:      fh,
		savedSpeeds: make(map[WordID]float64),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.arena = NewArena()
	e.resolver = NewResolver(cfg.Collision.Margin, fh)
	e.spawner = NewSpawner(cfg.Spawn, e.rng)
	e.catalog = NewCatalog(cfg.Bonus)
	e.primary = NewPrimaryMatcher()
	e.relation = NewRelationMatcher(dict, e.rng, cfg.Scoring.CascadeTotal)
	e.bonus = NewBonusScheduler(e, e.onBonusChanged)
	e.score = NewScore(cfg.Scoring.MaxMultiplier,
		func(v int) { e.emit(ScoreChanged{Score: v}) },
		func(v int) { e.emit(MultiplierChanged{Multiplier: v}) },
	)
	e.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	e.wordSpeed = core.ClampF(cfg.Speed.WordSpeed, cfg.Speed.Min, cfg.Speed.Max)
	return e
}

func (e *Engine) emit(ev Event) {
	if e.listener != nil {
		e.listener(ev)
	}
}

func (e *Engine) onBonusChanged(kind BonusKind, progress float64) {
	e.emit(BonusChanged{Kind: kind, Progress: progress})
}

// Start begins a new run from an empty field.
func (e *Engine) Start() {
	e.resetRun()
	e.state = StateRunning
	e.lastTick = e.clock.Now()
	e.emit(ElapsedChanged{Elapsed: 0})
	e.log.Info("run started", "pack_words", e.dict.TotalWords(), "word_speed", e.wordSpeed)
}

// Stop ends the run and clears the field and score.
func (e *Engine) Stop() {
	e.resetRun()
	e.state = StateIdle
}

func (e *Engine) resetRun() {
	e.bonus.Reset()
	e.relation.Deactivate()
	e.arena.Clear()
	e.score.Reset()
	e.spawner.Reset()
	e.elapsed = 0
	e.lastSecond = 0
	e.destroyed = 0
	e.frozen = false
	e.caseActive = false
	e.primary.SetCaseSensitive(false)
	clear(e.savedSpeeds)
}

// Pause suspends movement, spawning and the bonus countdown.
func (e *Engine) Pause() {
	if e.state != StateRunning {
		return
	}
	e.state = StatePaused
	e.bonus.Pause()
}

// Resume continues a paused run. The reference time is reset so the pause
// is not replayed as simulated time.
func (e *Engine) Resume() {
	if e.state != StatePaused {
		return
	}
	e.state = StateRunning
	e.lastTick = e.clock.Now()
	e.bonus.Resume()
}

// TogglePause pauses a running game or resumes a paused one.
func (e *Engine) TogglePause() {
	switch e.state {
	case StateRunning:
		e.Pause()
	case StatePaused:
		e.Resume()
	}
}

// SetScreenSize updates the playfield for a new screen size.
func (e *Engine) SetScreenSize(w, h int) {
	rt := core.RuntimeConfig{ScreenW: w, ScreenH: h}
	e.fieldW, e.fieldH = rt.FieldSize()
	e.resolver.SetFieldHeight(e.fieldH)
}

// SetWordSpeed sets the speed setting used for new words.
func (e *Engine) SetWordSpeed(v float64) {
	e.wordSpeed = core.ClampF(v, e.cfg.Speed.Min, e.cfg.Speed.Max)
}

// WordSpeed returns the clamped speed setting.
func (e *Engine) WordSpeed() float64 {
	return e.wordSpeed
}

// BaseSpeed returns the current spawn speed in rows per second.
func (e *Engine) BaseSpeed() float64 {
	return e.difficulty.Speed(e.wordSpeed*e.cfg.Speed.Scale, e.destroyed, e.elapsed)
}

// Tick runs one frame: movement and collisions, then the spawn cadence,
// then the bonus countdown, all over the time since the previous tick.
func (e *Engine) Tick() {
	if e.state != StateRunning {
		return
	}
	now := e.clock.Now()
	dt := now.Sub(e.lastTick)
	e.lastTick = now
	if dt <= 0 {
		return
	}

	e.elapsed += dt
	if sec := int64(e.elapsed / time.Second); sec != e.lastSecond {
		e.lastSecond = sec
		e.emit(ElapsedChanged{Elapsed: time.Duration(sec) * time.Second})
	}

	if !e.frozen {
		e.resolver.Step(e.arena, dt.Seconds())
	}
	for _, w := range e.resolver.Fallen(e.arena) {
		e.destroyWord(w, CauseFallen)
	}
	if e.resolver.ReachedBottom(e.arena) {
		e.gameOver()
		return
	}

	if !e.frozen {
		e.spawner.SetNominal(e.difficulty.Interval(e.cfg.Spawn.Interval, e.destroyed, e.elapsed))
		if e.spawner.Advance(dt) {
			e.spawn()
		}
	}

	e.bonus.Advance(dt)
	e.arena.Compact()
}

func (e *Engine) spawn() {
	w := e.spawner.Spawn(e.arena, e.dict, e.catalog, e.BaseSpeed(), e.fieldW)
	if w == nil {
		return
	}
	if e.caseActive && !w.IsBonus() {
		w.RandomizeCase(e.rng, e.cfg.Bonus.CaseFlipChance)
	}
	e.log.Debug("word spawned", "id", w.ID(), "text", w.Text(), "bonus", w.Bonus(), "speed", w.Speed())
}

func (e *Engine) gameOver() {
	e.state = StateOver
	e.bonus.Reset()
	e.relation.Deactivate()
	e.arena.Clear()
	e.log.Info("game over", "score", e.score.Score(), "destroyed", e.destroyed, "elapsed", e.elapsed)
	e.emit(GameOver{Score: e.score.Score(), Destroyed: e.destroyed, Elapsed: e.elapsed})
}

func (e *Engine) destroyWord(w *Word, cause DestroyCause) {
	text, id := w.Text(), w.ID()
	if !w.Destroy() {
		return
	}
	if cause != CauseFallen {
		e.destroyed++
	}
	e.emit(WordDestroyed{ID: id, Text: text, Bonus: w.Bonus(), Cause: cause})
}

// HandleChar feeds one typed letter. It is ignored unless the game is
// running and r is a Latin or Cyrillic letter.
func (e *Engine) HandleChar(r rune) {
	if e.state != StateRunning || !core.IsSupportedLetter(r) {
		return
	}
	relationActive := e.relation.Active()
	casePoints := 1
	if e.caseActive {
		casePoints = e.cfg.Scoring.CasePoints
	}

	res := e.primary.Feed(e.arena, r)
	var earned []BonusKind
	for _, w := range res.Completed {
		e.destroyWord(w, CauseTyped)
		if w.IsBonus() {
			earned = append(earned, w.Bonus())
		}
	}

	relationAccepted := false
	if relationActive {
		rr := e.relation.Feed(e.arena, r)
		relationAccepted = rr.Accepted
		if len(rr.Cascade) > 0 {
			letters := 0
			for _, w := range rr.Cascade {
				letters += w.Len()
				e.destroyWord(w, CauseCascade)
			}
			e.score.AddCascade(letters)
			e.log.Debug("relation cascade", "match", rr.Matched, "words", len(rr.Cascade), "letters", letters)
		}
	}

	if res.Accepted {
		e.score.Accept(casePoints)
	} else if !relationAccepted {
		e.score.Reject()
	}

	for _, kind := range earned {
		if entry, ok := e.catalog.Entry(kind); ok {
			e.bonus.Start(entry)
		}
	}
	e.arena.Compact()
}

// HandleBackspace trims the relation candidate.
func (e *Engine) HandleBackspace() {
	if e.state != StateRunning {
		return
	}
	e.relation.Backspace()
}

// activateBonus implements bonusEffects.
func (e *Engine) activateBonus(kind BonusKind) {
	e.log.Info("bonus started", "kind", kind)
	switch kind {
	case BonusFreeze:
		e.frozen = true
		e.arena.Each(func(w *Word) bool {
			e.savedSpeeds[w.ID()] = w.Speed()
			w.SetSpeed(0)
			return true
		})
	case BonusCase:
		e.caseActive = true
		e.primary.SetCaseSensitive(true)
		for _, w := range e.arena.Tracked() {
			w.RandomizeCase(e.rng, e.cfg.Bonus.CaseFlipChance)
		}
	case BonusSynonym, BonusAntonym:
		rel, _ := kind.Relation()
		e.relation.Activate(rel)
	}
}

// revertBonus implements bonusEffects.
func (e *Engine) revertBonus(kind BonusKind) {
	e.log.Info("bonus ended", "kind", kind)
	switch kind {
	case BonusFreeze:
		e.frozen = false
		e.arena.Each(func(w *Word) bool {
			if v, ok := e.savedSpeeds[w.ID()]; ok {
				w.SetSpeed(v)
			} else {
				w.RestoreSpeed()
			}
			return true
		})
		clear(e.savedSpeeds)
	case BonusCase:
		e.caseActive = false
		e.primary.SetCaseSensitive(false)
		e.arena.Each(func(w *Word) bool {
			w.RestoreText()
			return true
		})
	case BonusSynonym, BonusAntonym:
		e.relation.Deactivate()
	}
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// Running reports whether keystrokes are accepted.
func (e *Engine) Running() bool { return e.state == StateRunning }

// Score returns the current score.
func (e *Engine) Score() int { return e.score.Score() }

// Multiplier returns the current multiplier.
func (e *Engine) Multiplier() int { return e.score.Multiplier() }

// Elapsed returns the running time of the current run.
func (e *Engine) Elapsed() time.Duration { return e.elapsed }

// Destroyed returns the number of words destroyed by the player.
func (e *Engine) Destroyed() int { return e.destroyed }

// Bonus returns the active bonus and its progress.
func (e *Engine) Bonus() (BonusKind, float64) { return e.bonus.Kind(), e.bonus.Progress() }

// Frozen reports whether a freeze bonus holds the field.
func (e *Engine) Frozen() bool { return e.frozen }

// Candidate returns the relation candidate string.
func (e *Engine) Candidate() string { return e.relation.Candidate() }

// Words returns the live words in insertion order.
func (e *Engine) Words() []*Word { return e.arena.Live() }

// GameState summarizes the engine for the platform.
func (e *Engine) GameState() core.GameState {
	return core.GameState{
		Score:    e.score.Score(),
		GameOver: e.state == StateOver,
		Paused:   e.state == StatePaused,
		Running:  e.state == StateRunning,
	}
}
