package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/flipbook/internal/book"
	"github.com/five82/flipbook/internal/config"
	"github.com/five82/flipbook/internal/input"
	"github.com/five82/flipbook/internal/inventory"
	"github.com/five82/flipbook/internal/prefs"
	"github.com/five82/flipbook/internal/state"
	"github.com/five82/flipbook/internal/touch"
)

// ErrPageMismatch is returned when the store and the inventory disagree on
// the number of leaves.
var ErrPageMismatch = errors.New("store page count does not match book")

// Options configures the UI.
type Options struct {
	Book      inventory.Book
	Store     *state.Store
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Logger    *zap.Logger
	Now       func() time.Time // nil uses time.Now
}

// TouchMsg delivers a touchscreen sample to the event loop.
type TouchMsg touch.Sample

// animatedRenderer reports completion from the frame loop, so the controller
// keeps its fixed timer only as a guard.
type animatedRenderer struct {
	*book.Renderer
}

func (animatedRenderer) SignalsCompletion() bool { return true }

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	book       inventory.Book
	prefsPath  string
	cellHeight float64
	logger     *zap.Logger
	now        func() time.Time

	// Navigation
	ctrl       *book.Controller
	normalizer *input.Normalizer
	scene      *scene
	scheduler  *loopScheduler

	// UI state
	prefs    prefs.Prefs
	theme    Theme
	keys     keyMap
	help     help.Model
	progress progress.Model
	width    int
	height   int
	showHelp bool
}

// New creates a new Bubble Tea model and paints the initial position.
func New(opts Options) (Model, error) {
	if opts.Store == nil {
		return Model{}, fmt.Errorf("ui: %w", state.ErrNoPages)
	}
	snap := opts.Store.Snapshot()
	if snap.PageCount != opts.Book.PageCount() {
		return Model{}, fmt.Errorf("%w: store has %d, book has %d", ErrPageMismatch, snap.PageCount, opts.Book.PageCount())
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	cfg := opts.Config

	sc := newScene(snap.PageCount, cfg.CellHeight)
	renderer, err := book.NewRenderer(sc.targets(), cfg.ScrollSync)
	if err != nil {
		return Model{}, fmt.Errorf("build renderer: %w", err)
	}
	renderer.Sync(snap.Current)
	sc.snap()

	sched := &loopScheduler{}
	ctrl := book.New(opts.Store, animatedRenderer{renderer}, sched,
		book.WithTransitionDuration(cfg.TransitionDuration),
		book.WithLogger(logger.Named("book")),
	)

	normalizer := input.NewNormalizer(opts.Store, cfg.NormalizerOptions())
	ctrl.OnSettle(func(tr book.Transition) {
		// The synced scroll is not user input; keep it out of direction tracking.
		normalizer.SyncScroll(sc.scrollTarget)
		logger.Debug("page turned",
			zap.Stringer("direction", tr.Direction),
			zap.Int("position", tr.To))
	})

	theme := GetTheme(opts.Prefs.Theme)
	return Model{
		book:       opts.Book,
		prefsPath:  prefsPath,
		cellHeight: cfg.CellHeight,
		logger:     logger,
		now:        now,
		ctrl:       ctrl,
		normalizer: normalizer,
		scene:      sc,
		scheduler:  sched,
		prefs:      opts.Prefs,
		theme:      theme,
		keys:       DefaultKeyMap(),
		help:       newHelp(theme),
		progress:   newProgress(theme),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.book.Title)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)

	case TouchMsg:
		m.handleTouch(touch.Sample(msg))

	case timerMsg:
		msg.fn()

	case frameMsg:
		return m, m.handleFrame()
	}

	return m, m.flush()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp && msg.String() == "esc" {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.help = newHelp(m.theme)
		m.help.Width = m.width
		m.progress = newProgress(m.theme)
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleProgress):
		m.prefs.HideProgress = !m.prefs.HideProgress
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.dispatch(m.normalizer.Key(input.KeyEvent{Key: navKey(msg, true)}))

	case key.Matches(msg, m.keys.Prev):
		m.dispatch(m.normalizer.Key(input.KeyEvent{Key: navKey(msg, false)}))
	}

	return m, m.flush()
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.wheel(m.cellHeight)
	case msg.Button == tea.MouseButtonWheelUp:
		m.wheel(-m.cellHeight)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.normalizer.TouchStart(m.touchAt(msg.Y))
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionMotion:
		m.dispatch(m.normalizer.TouchMove(m.touchAt(msg.Y)))
	case msg.Action == tea.MouseActionRelease:
		m.normalizer.TouchEnd()
	}
}

// wheel feeds one wheel tick. When the normalizer does not prevent the
// default, the tick scrolls the container, which the scroll strategy then
// observes.
func (m Model) wheel(delta float64) {
	res := m.normalizer.Wheel(input.WheelEvent{DeltaY: delta})
	m.dispatch(res)
	if res.PreventDefault || !m.scene.scrollBy(delta) {
		return
	}
	if m.normalizer.Strategy() == input.StrategyScroll {
		m.dispatch(m.normalizer.Scroll(input.ScrollEvent{
			Top:    m.scene.scrollTop,
			Height: m.scene.ScrollHeight(),
		}))
	}
}

func (m Model) touchAt(row int) input.TouchEvent {
	return input.TouchEvent{
		Y:        float64(row) * m.cellHeight,
		HasPoint: true,
		Time:     m.now(),
	}
}

func (m Model) handleTouch(s touch.Sample) {
	switch s.Phase {
	case touch.PhaseStart:
		m.normalizer.TouchStart(s.Event)
	case touch.PhaseMove:
		m.dispatch(m.normalizer.TouchMove(s.Event))
	case touch.PhaseEnd:
		m.normalizer.TouchEnd()
	}
}

func (m Model) dispatch(res input.Result) {
	if res.Emitted() {
		m.ctrl.Dispatch(res.Intent)
	}
}

// handleFrame advances the animations. Once everything is at rest the
// in-flight transition is reported complete.
func (m Model) handleFrame() tea.Cmd {
	if !m.scene.step() {
		return frameCmd()
	}
	m.scene.ticking = false
	if snap := m.ctrl.Snapshot(); snap.Locked {
		m.ctrl.Finish(snap.Transition)
	}
	return m.flush()
}

// flush collects scheduled timers and starts the frame loop when the scene
// has something to animate.
func (m Model) flush() tea.Cmd {
	cmds := m.scheduler.drain()
	if m.scene.animating() && !m.scene.ticking {
		m.scene.ticking = true
		cmds = append(cmds, frameCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save preferences", zap.Error(err))
	}
}

// NewProgram builds the Bubble Tea program for m. The program stops when ctx
// is cancelled.
func NewProgram(ctx context.Context, m Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
}
