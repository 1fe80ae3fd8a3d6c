package seeker

import "github.com/apogee-robotics/seeker/internal/monitoring"

// Bumper segment identifiers, matching the kobuki base layout.
const (
	BumperLeft   uint8 = 0
	BumperCenter uint8 = 1
	BumperRight  uint8 = 2
)

// BumperName returns the human-readable segment name for a bumper location.
func BumperName(location uint8) string {
	switch location {
	case BumperLeft:
		return "left"
	case BumperCenter:
		return "center"
	case BumperRight:
		return "right"
	default:
		return "unknown"
	}
}

// ContactEvent is one bumper press or release.
type ContactEvent struct {
	Pressed  bool
	Location uint8
}

// ContactMonitor converts bumper events into the latched contact flag.
// Press and release are deliberately asymmetric: a press raises the obstacle
// flag immediately, a release only disarms the override and leaves the
// obstacle flag to the next depth scan.
type ContactMonitor struct {
	core *RobotCore
}

// NewContactMonitor returns a monitor writing into core.
func NewContactMonitor(core *RobotCore) *ContactMonitor {
	return &ContactMonitor{core: core}
}

// ProcessEvent applies one bumper event.
func (m *ContactMonitor) ProcessEvent(ev ContactEvent) {
	if ev.Pressed {
		monitoring.Logf("bumper pressed (%s)", BumperName(ev.Location))
		m.core.PressBumper(ev.Location)
		return
	}
	m.core.ReleaseBumper()
}
