package seeker

import "math"

// VelocityCommand is a differential-drive command: forward speed in m/s and
// yaw rate in rad/s.
type VelocityCommand struct {
	Linear  float64 `json:"linear"`
	Angular float64 `json:"angular"`
}

// Intent names a motion primitive selected by the controller.
type Intent string

const (
	IntentNone    Intent = ""
	IntentRotate  Intent = "rotate"
	IntentSeek    Intent = "seek"
	IntentAdvance Intent = "advance"
	IntentRetreat Intent = "retreat"
)

// seekGain scales both the forward speed and the proportional steering term
// while seeking, so the approach is slower and softer than a straight
// advance.
const seekGain = 0.7

// Rotate spins in place at the base angular speed.
func Rotate(cfg Config) VelocityCommand {
	return VelocityCommand{Linear: 0, Angular: cfg.AngularSpeed}
}

// Seek advances toward the goal while steering proportionally against the
// centroid offset. The steering output is clamped to the angular bound by
// rescaling, preserving its sign rather than truncating it.
func Seek(cfg Config, centroidX float64) VelocityCommand {
	control := -centroidX * cfg.AngularSpeed * seekGain
	if math.Abs(control) > cfg.AngularClamp {
		control = control * cfg.AngularClamp / math.Abs(control)
	}
	return VelocityCommand{Linear: cfg.LinearSpeed * seekGain, Angular: control}
}

// Advance drives straight ahead at the base linear speed.
func Advance(cfg Config) VelocityCommand {
	return VelocityCommand{Linear: cfg.LinearSpeed, Angular: 0}
}

// Retreat backs up at the base linear speed.
func Retreat(cfg Config) VelocityCommand {
	return VelocityCommand{Linear: -cfg.LinearSpeed, Angular: 0}
}

// CommandFor maps an intent to its velocity command. centroidX is only
// consulted for IntentSeek.
func CommandFor(cfg Config, intent Intent, centroidX float64) VelocityCommand {
	switch intent {
	case IntentRotate:
		return Rotate(cfg)
	case IntentSeek:
		return Seek(cfg, centroidX)
	case IntentAdvance:
		return Advance(cfg)
	case IntentRetreat:
		return Retreat(cfg)
	default:
		return VelocityCommand{}
	}
}
