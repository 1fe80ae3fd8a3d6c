package seeker

import (
	"time"

	"github.com/apogee-robotics/seeker/internal/monitoring"
)

// phase is one leg of an escape maneuver.
type phase struct {
	intent   Intent
	duration time.Duration
}

// maneuver is an uninterruptible, time-bounded sequence of motion legs.
// While one is active the controller emits the current leg's primitive every
// tick and reads no sensor state; cancellation is not supported.
type maneuver struct {
	name       string
	phases     []phase
	index      int
	phaseStart time.Time
}

// bumperEscape is the contact recovery sequence: back away from the
// obstacle, turn, then drive clear before searching again.
func bumperEscape(cfg Config) *maneuver {
	return &maneuver{
		name: "bumper escape",
		phases: []phase{
			{IntentRetreat, cfg.RetreatDuration},
			{IntentRotate, cfg.RotateDuration},
			{IntentAdvance, cfg.AdvanceDuration},
		},
	}
}

// forwardEscape drives straight ahead after the depth flag clears, so the
// robot does not re-detect the same obstacle edge on the next scan.
func forwardEscape(cfg Config) *maneuver {
	return &maneuver{
		name: "forward escape",
		phases: []phase{
			{IntentAdvance, cfg.ForwardEscapeDuration},
		},
	}
}

// startManeuver arms m and emits its first leg's command immediately.
// Callers hold c.mu.
func (c *Controller) startManeuver(now time.Time, m *maneuver) {
	m.phaseStart = now
	c.maneuver = m
	monitoring.Logf("beginning %s maneuver", m.name)
	c.emit(now, m.phases[0].intent, 0)
}

// stepManeuver advances the active maneuver by one tick: expire completed
// legs, then either emit the current leg's command or finish and fall back
// to searching. Callers hold c.mu.
func (c *Controller) stepManeuver(now time.Time) {
	m := c.maneuver
	for now.Sub(m.phaseStart) >= m.phases[m.index].duration {
		m.phaseStart = m.phaseStart.Add(m.phases[m.index].duration)
		m.index++
		if m.index >= len(m.phases) {
			c.maneuver = nil
			monitoring.Logf("%s maneuver complete", m.name)
			c.transition(now, StateSearching, m.name+" complete")
			return
		}
	}
	c.emit(now, m.phases[m.index].intent, 0)
}
