package seeker

import (
	"context"
	"sync"
	"time"

	"github.com/apogee-robotics/seeker/internal/monitoring"
	"github.com/apogee-robotics/seeker/internal/timeutil"
)

// ControlState is the controller's behavior state.
type ControlState string

const (
	StateSearching   ControlState = "searching"   // rotate in place until the goal or an obstacle shows up
	StateApproaching ControlState = "approaching" // steer toward the goal centroid
	StateAvoiding    ControlState = "avoiding"    // clear a flagged obstacle
	StateArrived     ControlState = "arrived"     // terminal
)

// CommandSink receives velocity commands bound for the actuators.
type CommandSink interface {
	Send(cmd VelocityCommand)
}

// Recorder receives controller events for persistence. Implementations must
// not block the control tick.
type Recorder interface {
	RecordTransition(at time.Time, from, to ControlState, reason string)
	RecordCommand(at time.Time, state ControlState, intent Intent, cmd VelocityCommand)
}

type nopRecorder struct{}

func (nopRecorder) RecordTransition(time.Time, ControlState, ControlState, string) {}
func (nopRecorder) RecordCommand(time.Time, ControlState, Intent, VelocityCommand) {}

// ControllerOptions carries optional collaborators for a Controller. Zero
// values select a real clock and no recording.
type ControllerOptions struct {
	Clock    timeutil.Clock
	Recorder Recorder
}

// Controller runs the fixed-rate decision loop. Each tick it drains the
// sensor inbox into the shared perception state, evaluates the handler for
// the current state, and emits at most one velocity command. Escape
// maneuvers suspend sensor processing entirely until they complete.
type Controller struct {
	cfg     Config
	core    *RobotCore
	inbox   *Inbox
	blobs   *BlobAggregator
	depth   *DepthScanner
	contact *ContactMonitor
	sink    CommandSink
	rec     Recorder
	clock   timeutil.Clock

	mu       sync.Mutex
	state    ControlState
	maneuver *maneuver
	ticks    uint64
	started  time.Time
}

// NewController assembles a controller and its perception processors around
// a fresh RobotCore and Inbox.
func NewController(cfg Config, sink CommandSink, opts ControllerOptions) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	rec := opts.Recorder
	if rec == nil {
		rec = nopRecorder{}
	}
	core := NewRobotCore()
	c := &Controller{
		cfg:     cfg,
		core:    core,
		inbox:   NewInbox(),
		blobs:   NewBlobAggregator(cfg, core),
		depth:   NewDepthScanner(cfg, core),
		contact: NewContactMonitor(core),
		sink:    sink,
		rec:     rec,
		clock:   clock,
		state:   StateSearching,
	}
	c.started = clock.Now()
	return c
}

// Inbox returns the mailbox that sensor adapters deliver into.
func (c *Controller) Inbox() *Inbox {
	return c.inbox
}

// Core returns the shared perception state.
func (c *Controller) Core() *RobotCore {
	return c.core
}

// State returns the current behavior state.
func (c *Controller) State() ControlState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Run ticks the controller at the configured interval until ctx is
// cancelled.
func (c *Controller) Run(ctx context.Context) error {
	ticker := c.clock.NewTicker(c.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			c.Tick()
		}
	}
}

// Tick evaluates one control cycle. Exported so tests and the simulator can
// drive the controller without a ticker.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ticks++
	now := c.clock.Now()

	// A running maneuver is uninterruptible: no inbox drain, no sensor
	// re-evaluation, just the current leg's command.
	if c.maneuver != nil {
		c.stepManeuver(now)
		return
	}

	c.drainInbox()

	if c.state == StateArrived {
		return
	}

	p := c.core.Snapshot()
	// One status line every 50 ticks, not one per tick.
	if c.ticks%50 == 0 {
		monitoring.Logf("status state=%s goal_found=%v obstacle_found=%v area=%d",
			c.state, p.GoalFound, p.ObstacleFound, p.BlobArea)
	}
	var next ControlState
	var intent Intent
	var reason string
	switch c.state {
	case StateSearching:
		next, intent, reason = c.stepSearching(p)
	case StateApproaching:
		next, intent, reason = c.stepApproaching(p)
	case StateAvoiding:
		next, intent, reason = c.stepAvoiding(now, p)
	}

	if next != c.state {
		c.transition(now, next, reason)
		// Transition ticks emit no command; the new state acts on the
		// next tick.
		return
	}
	if intent != IntentNone {
		c.emit(now, intent, p.CentroidX)
	}
}

// drainInbox feeds whatever sensor data arrived since the last tick into
// the perception processors, newest delivery per sensor kind.
func (c *Controller) drainInbox() {
	if f := c.inbox.TakeBlobs(); f != nil {
		c.blobs.ProcessFrame(*f)
	}
	if g := c.inbox.TakeCloud(); g != nil {
		c.depth.ProcessCloud(g)
	}
	if ev := c.inbox.TakeContact(); ev != nil {
		c.contact.ProcessEvent(*ev)
	}
}

func (c *Controller) stepSearching(p Perception) (ControlState, Intent, string) {
	if p.ObstacleFound {
		return StateAvoiding, IntentNone, "obstacle flagged"
	}
	if p.GoalFound {
		return StateApproaching, IntentNone, "goal sighted"
	}
	return StateSearching, IntentRotate, ""
}

func (c *Controller) stepApproaching(p Perception) (ControlState, Intent, string) {
	if p.ObstacleFound {
		return StateAvoiding, IntentNone, "obstacle flagged"
	}
	if !p.GoalFound {
		return StateSearching, IntentNone, "goal lost"
	}
	return StateApproaching, IntentSeek, ""
}

// stepAvoiding arbitrates contact over depth over pursuit. A large goal blob
// means the "obstacle" in view is the target itself.
func (c *Controller) stepAvoiding(now time.Time, p Perception) (ControlState, Intent, string) {
	if p.BlobArea > c.cfg.ArrivalArea() {
		return StateArrived, IntentNone, "obstacle is the goal"
	}
	if p.BumperLatched {
		c.startManeuver(now, bumperEscape(c.cfg))
		return StateAvoiding, IntentNone, ""
	}
	if p.ObstacleFound {
		return StateAvoiding, IntentRotate, ""
	}
	// Depth flag cleared: burst forward to put distance between the robot
	// and whatever it was turning away from, then resume the search.
	c.startManeuver(now, forwardEscape(c.cfg))
	return StateAvoiding, IntentNone, ""
}

func (c *Controller) transition(now time.Time, to ControlState, reason string) {
	from := c.state
	c.state = to
	monitoring.Logf("state %s -> %s (%s)", from, to, reason)
	c.rec.RecordTransition(now, from, to, reason)
}

func (c *Controller) emit(now time.Time, intent Intent, centroidX float64) {
	cmd := CommandFor(c.cfg, intent, centroidX)
	c.sink.Send(cmd)
	c.rec.RecordCommand(now, c.state, intent, cmd)
}

// Status is a point-in-time view of the controller for the HTTP surface.
type Status struct {
	State          ControlState `json:"state"`
	Maneuver       string       `json:"maneuver,omitempty"`
	GoalFound      bool         `json:"goal_found"`
	GoalCentroidX  float64      `json:"goal_centroid_x"`
	GoalBlobArea   int          `json:"goal_blob_area"`
	ObstacleFound  bool         `json:"obstacle_found"`
	BumperLatched  bool         `json:"bumper_latched"`
	BumperLocation string       `json:"bumper_location,omitempty"`
	Ticks          uint64       `json:"ticks"`
	Uptime         string       `json:"uptime"`
}

// Status returns the current controller and perception state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	state := c.state
	var man string
	if c.maneuver != nil {
		man = c.maneuver.name
	}
	ticks := c.ticks
	started := c.started
	c.mu.Unlock()

	p := c.core.Snapshot()
	st := Status{
		State:         state,
		Maneuver:      man,
		GoalFound:     p.GoalFound,
		GoalCentroidX: p.CentroidX,
		GoalBlobArea:  p.BlobArea,
		ObstacleFound: p.ObstacleFound,
		BumperLatched: p.BumperLatched,
		Ticks:         ticks,
		Uptime:        c.clock.Since(started).Round(time.Second).String(),
	}
	if p.BumperLatched {
		st.BumperLocation = BumperName(p.BumperLocation)
	}
	return st
}
