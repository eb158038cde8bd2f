package book

import (
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/five82/flipbook/internal/input"
	"github.com/five82/flipbook/internal/state"
)

// DefaultTransitionDuration is slightly longer than the page-turn animation.
const DefaultTransitionDuration = 600 * time.Millisecond

// Direction of a page turn.
type Direction int

// Forward moves toward the back cover, Backward toward the front cover.
const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

func (d Direction) step() int {
	if d == Backward {
		return -1
	}
	return 1
}

// Transition describes one accepted page turn.
type Transition struct {
	ID        uint64
	From      int
	To        int
	Direction Direction
}

// Applier applies an accepted transition to the screen. *Renderer implements it.
type Applier interface {
	Apply(from, to int)
}

// Completer is implemented by appliers that call Controller.Finish themselves
// once the visual transition has ended. For those, the fixed timer only acts
// as a timeout guard.
type Completer interface {
	SignalsCompletion() bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithTransitionDuration sets how long the book stays locked after a turn.
func WithTransitionDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithCompletionTimeout sets how long to wait for a Completer before the
// guard unlocks anyway. Defaults to three transition durations.
func WithCompletionTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller is the navigation state machine. It gates intents against the
// lock and the bounds, applies accepted turns and schedules the unlock.
type Controller struct {
	store     *state.Store
	applier   Applier
	scheduler Scheduler
	duration  time.Duration
	timeout   time.Duration
	logger    *zap.Logger
	nextID    atomic.Uint64
	onSettle  func(Transition)
	inflight  atomic.Value
}

// New creates a Controller. A nil scheduler uses TimerScheduler.
func New(store *state.Store, applier Applier, scheduler Scheduler, opts ...Option) *Controller {
	if scheduler == nil {
		scheduler = TimerScheduler{}
	}
	c := &Controller{
		store:     store,
		applier:   applier,
		scheduler: scheduler,
		duration:  DefaultTransitionDuration,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout <= 0 {
		c.timeout = 3 * c.duration
	}
	return c
}

// OnSettle registers fn to run after every unlock.
func (c *Controller) OnSettle(fn func(Transition)) {
	c.onSettle = fn
}

// Advance turns one page forward. It is a no-op while locked or at the end.
func (c *Controller) Advance() bool {
	return c.turn(Forward)
}

// Retreat turns one page back. It is a no-op while locked or at the start.
func (c *Controller) Retreat() bool {
	return c.turn(Backward)
}

// Dispatch routes a normalized intent.
func (c *Controller) Dispatch(intent input.Intent) bool {
	switch intent {
	case input.Advance:
		return c.Advance()
	case input.Retreat:
		return c.Retreat()
	default:
		return false
	}
}

// Position returns the current position.
func (c *Controller) Position() int {
	return c.store.Snapshot().Current
}

// Locked reports whether a transition is in flight.
func (c *Controller) Locked() bool {
	return c.store.Snapshot().Locked
}

// Snapshot returns the book state.
func (c *Controller) Snapshot() state.Snapshot {
	return c.store.Snapshot()
}

// Finish marks transition id as visually complete and unlocks the book.
// Ids other than the in-flight one are ignored.
func (c *Controller) Finish(id uint64) bool {
	return c.settle(id, "renderer")
}

func (c *Controller) turn(dir Direction) bool {
	snap := c.store.Snapshot()
	allowed := snap.CanAdvance()
	if dir == Backward {
		allowed = snap.CanRetreat()
	}
	if !allowed {
		c.logger.Debug("turn ignored",
			zap.Stringer("direction", dir),
			zap.Int("position", snap.Current),
			zap.Bool("locked", snap.Locked))
		return false
	}
	to := snap.Current + dir.step()

	id := c.nextID.Inc()
	if !c.store.Begin(to, id) {
		return false
	}
	tr := Transition{ID: id, From: snap.Current, To: to, Direction: dir}
	c.inflight.Store(tr)
	c.logger.Debug("turn started",
		zap.Uint64("id", id),
		zap.Stringer("direction", dir),
		zap.Int("from", tr.From),
		zap.Int("to", tr.To))

	// The store is locked, so no other turn can interleave with rendering.
	c.applier.Apply(tr.From, tr.To)

	guard := c.duration
	if completer, ok := c.applier.(Completer); ok && completer.SignalsCompletion() {
		guard = c.timeout
	}
	c.scheduler.AfterFunc(guard, func() {
		c.settle(id, "timer")
	})
	return true
}

func (c *Controller) settle(id uint64, source string) bool {
	if !c.store.Settle(id) {
		return false
	}
	c.logger.Debug("turn settled", zap.Uint64("id", id), zap.String("source", source))
	if c.onSettle != nil {
		if tr, ok := c.inflight.Load().(Transition); ok && tr.ID == id {
			c.onSettle(tr)
		}
	}
	return true
}
