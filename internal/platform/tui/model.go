package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/core"
	"github.com/vovakirdan/wordfall/internal/game"
	"github.com/vovakirdan/wordfall/internal/registry"
	"github.com/vovakirdan/wordfall/internal/settings"
	"github.com/vovakirdan/wordfall/internal/storage"
)

// speedStep is the word speed change per PgUp/PgDown press.
const speedStep = 1.0

// Options configures a game Model.
type Options struct {
	Runtime  core.RuntimeConfig
	Config   config.WordfallConfig
	Pack     registry.Pack
	Store    *storage.Store    // nil disables score history
	Settings *settings.Manager // nil starts from the config speed and keeps changes in memory
	Logger   *log.Logger
	Clock    core.Clock // nil uses the system clock
}

// Model is the Bubble Tea model for one wordfall player.
type Model struct {
	engine   *game.Engine
	screen   *core.Screen
	keys     *KeyMapper
	help     help.Model
	recorder *runRecorder
	settings *settings.Manager
	log      *log.Logger
	tickRate int
	width    int
	height   int
	quitting bool
}

// NewModel creates a model with an idle engine. Enter starts the first run.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mgr := opts.Settings
	if mgr == nil {
		mgr = settings.NewManager(nil, logger)
		mgr.SetWordSpeed(opts.Config.Speed.WordSpeed)
	}

	recorder := newRunRecorder(opts.Store, opts.Pack.ID, logger)

	gameRT := rt
	gameRT.ScreenH = playfieldHeight(rt.ScreenH)
	engine := game.New(gameRT, opts.Config, opts.Pack.Dictionary(),
		game.WithLogger(logger.WithPrefix("engine")),
		game.WithClock(opts.Clock),
		game.WithListener(recorder.handle),
	)
	engine.SetWordSpeed(mgr.Get().WordSpeed)

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		engine:   engine,
		screen:   core.NewScreen(rt.ScreenW, gameRT.ScreenH),
		keys:     NewKeyMapper(DefaultKeyMap()),
		help:     h,
		recorder: recorder,
		settings: mgr,
		log:      logger,
		tickRate: rt.TickRate,
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}
}

// playfieldHeight leaves the bottom row for the help line.
func playfieldHeight(screenH int) int {
	return max(screenH-1, core.HUDRows+2)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.engine.Tick()
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey routes host keys to lifecycle calls and letters to the engine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, runes := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.engine.Stop()
		return m, tea.Quit
	case core.ActionPause:
		m.engine.TogglePause()
	case core.ActionRestart:
		switch m.engine.State() {
		case game.StateIdle, game.StateOver:
			m.recorder.reset()
			m.engine.Start()
		}
	case core.ActionBackspace:
		m.engine.HandleBackspace()
	case core.ActionSpeedUp:
		m.changeSpeed(speedStep)
	case core.ActionSpeedDown:
		m.changeSpeed(-speedStep)
	case core.ActionNone:
		for _, r := range runes {
			m.engine.HandleChar(r)
		}
	}

	return m, nil
}

// changeSpeed adjusts the word speed and persists the clamped value.
func (m Model) changeSpeed(delta float64) {
	m.engine.SetWordSpeed(m.engine.WordSpeed() + delta)
	m.settings.SetWordSpeed(m.engine.WordSpeed())
	if err := m.settings.Save(); err != nil {
		m.log.Warn("could not save settings", "err", err)
	}
}

// handleResize processes window resize events. The run continues on the
// new field.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	h := playfieldHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.engine.SetScreenSize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.engine.Render(m.screen)
	status := fmt.Sprintf("Best: %d  ", m.recorder.best())
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(status+m.help.View(m.keys.Keys()))
}

// Engine returns the hosted engine.
func (m Model) Engine() *game.Engine {
	return m.engine
}

// Run starts the Bubble Tea program for a local player.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// runRecorder listens to engine events and writes finished runs to the
// score history.
type runRecorder struct {
	store     *storage.Store
	pack      string
	log       *log.Logger
	highScore int
	saved     bool
}

func newRunRecorder(store *storage.Store, pack string, logger *log.Logger) *runRecorder {
	r := &runRecorder{store: store, pack: pack, log: logger}
	if store != nil {
		high, err := store.HighScore(pack)
		if err != nil {
			logger.Warn("could not read high score", "pack", pack, "err", err)
		}
		r.highScore = high
	}
	return r
}

func (r *runRecorder) handle(ev game.Event) {
	if over, ok := ev.(game.GameOver); ok {
		r.finish(over)
	}
}

// finish saves a run once. Runs without points are not recorded.
func (r *runRecorder) finish(ev game.GameOver) {
	if r.saved || ev.Score <= 0 {
		return
	}
	r.saved = true
	r.highScore = max(r.highScore, ev.Score)
	if r.store == nil {
		return
	}
	if _, err := r.store.SaveRun(r.pack, ev.Score, ev.Destroyed, ev.Elapsed); err != nil {
		r.log.Warn("could not save run", "pack", r.pack, "err", err)
		return
	}
	r.log.Info("run saved", "pack", r.pack, "score", ev.Score, "words", ev.Destroyed)
}

func (r *runRecorder) reset() {
	r.saved = false
}

func (r *runRecorder) best() int {
	return r.highScore
}
