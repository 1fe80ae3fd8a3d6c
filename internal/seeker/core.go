package seeker

import "sync"

// GoalPerception is the blob aggregator's view of the target.
type GoalPerception struct {
	// GoalFound is true iff the most recently processed non-empty frame's
	// summed matching-blob area exceeded the goal area bound.
	GoalFound bool `json:"goal_found"`
	// CentroidX is the weighted blob centroid as a signed pixel offset from
	// the image center. Only meaningful while GoalFound is true; it keeps its
	// last value when the goal is lost.
	CentroidX float64 `json:"goal_centroid_x"`
	// BlobArea is the summed matching-blob area from the last non-empty
	// frame. An empty frame leaves it unchanged.
	BlobArea int `json:"goal_blob_area"`
}

// ObstacleState is the combined depth-scan and bumper verdict.
type ObstacleState struct {
	ObstacleFound bool `json:"obstacle_found"`
	BumperLatched bool `json:"bumper_latched"`
	// BumperLocation is the last pressed bumper segment (BumperLeft,
	// BumperCenter or BumperRight). Informational only; arbitration uses
	// BumperLatched alone.
	BumperLocation uint8 `json:"bumper_location"`
}

// Perception is a consistent snapshot of the shared perception state.
type Perception struct {
	GoalPerception
	ObstacleState
}

// RobotCore owns the shared perception state. Perception processors mutate
// it through the invariant-bearing setters below; the controller and the
// status server read it through Snapshot. All access is serialised by the
// internal mutex, so a reader never observes a torn update.
type RobotCore struct {
	mu       sync.RWMutex
	goal     GoalPerception
	obstacle ObstacleState
}

// NewRobotCore returns a core with neutral perception state: no goal, no
// obstacle, bumper released.
func NewRobotCore() *RobotCore {
	return &RobotCore{}
}

// Snapshot returns a copy of the current perception state.
func (rc *RobotCore) Snapshot() Perception {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return Perception{GoalPerception: rc.goal, ObstacleState: rc.obstacle}
}

// SetGoalSeen records a frame whose matching-blob area exceeded the goal
// bound, with the re-centred weighted centroid.
func (rc *RobotCore) SetGoalSeen(centroidX float64, area int) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.goal.GoalFound = true
	rc.goal.CentroidX = centroidX
	rc.goal.BlobArea = area
}

// SetGoalLost records a non-empty frame whose matching-blob area did not
// exceed the goal bound. The centroid keeps its last value.
func (rc *RobotCore) SetGoalLost(area int) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.goal.GoalFound = false
	rc.goal.BlobArea = area
}

// ApplyDepthVerdict folds a depth-scan result into the obstacle flag. A
// latched bumper keeps the flag raised regardless of the scan.
func (rc *RobotCore) ApplyDepthVerdict(obstructed bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if obstructed {
		rc.obstacle.ObstacleFound = true
		return
	}
	if !rc.obstacle.BumperLatched {
		rc.obstacle.ObstacleFound = false
	}
}

// PressBumper latches the bumper and raises the obstacle flag immediately,
// independent of the next depth scan.
func (rc *RobotCore) PressBumper(location uint8) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.obstacle.BumperLatched = true
	rc.obstacle.ObstacleFound = true
	rc.obstacle.BumperLocation = location
}

// ReleaseBumper disarms the bumper override. It does not clear the obstacle
// flag; that is left to the next depth scan.
func (rc *RobotCore) ReleaseBumper() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.obstacle.BumperLatched = false
}

// Inbox is a one-slot-per-sensor mailbox between the asynchronous delivery
// goroutines and the control tick. Deliveries overwrite whatever is pending;
// the tick drains the latest value of each slot. This keeps the perception
// state single-writer without blocking either side.
type Inbox struct {
	mu      sync.Mutex
	blobs   *BlobFrame
	cloud   *PointGrid
	contact *ContactEvent
}

// NewInbox returns an empty inbox.
func NewInbox() *Inbox {
	return &Inbox{}
}

// PutBlobs delivers a blob frame, replacing any undrained one.
func (in *Inbox) PutBlobs(f *BlobFrame) {
	in.mu.Lock()
	in.blobs = f
	in.mu.Unlock()
}

// PutCloud delivers a depth point grid, replacing any undrained one.
func (in *Inbox) PutCloud(g *PointGrid) {
	in.mu.Lock()
	in.cloud = g
	in.mu.Unlock()
}

// PutContact delivers a bumper event, replacing any undrained one.
func (in *Inbox) PutContact(ev *ContactEvent) {
	in.mu.Lock()
	in.contact = ev
	in.mu.Unlock()
}

// TakeBlobs removes and returns the pending blob frame, or nil.
func (in *Inbox) TakeBlobs() *BlobFrame {
	in.mu.Lock()
	defer in.mu.Unlock()
	f := in.blobs
	in.blobs = nil
	return f
}

// TakeCloud removes and returns the pending point grid, or nil.
func (in *Inbox) TakeCloud() *PointGrid {
	in.mu.Lock()
	defer in.mu.Unlock()
	g := in.cloud
	in.cloud = nil
	return g
}

// TakeContact removes and returns the pending bumper event, or nil.
func (in *Inbox) TakeContact() *ContactEvent {
	in.mu.Lock()
	defer in.mu.Unlock()
	ev := in.contact
	in.contact = nil
	return ev
}
