package seeker

// BlobDetection is one color-segmented region reported by the vision
// front-end for a single camera frame.
type BlobDetection struct {
	Red   uint8   // dominant color as calibrated in the detector's color table
	Green uint8
	Blue  uint8
	X     float64 // pixel-space centroid
	Y     float64
	Area  int // pixel area
}

// BlobFrame is the batch of detections for one camera frame. It may be
// empty.
type BlobFrame struct {
	Blobs []BlobDetection
}

// BlobAggregator folds blob frames into the core's goal perception. Blobs
// are filtered by exact match against the active color signature, then
// reduced to an area-weighted centroid and a total area.
type BlobAggregator struct {
	cfg  Config
	core *RobotCore
}

// NewBlobAggregator returns an aggregator writing into core.
func NewBlobAggregator(cfg Config, core *RobotCore) *BlobAggregator {
	return &BlobAggregator{cfg: cfg, core: core}
}

// ProcessFrame evaluates one frame. An empty frame carries no new
// information and leaves the goal perception untouched, including the last
// frame's blob area. When the summed matching area exceeds the goal bound
// the centroid is re-centred to a signed offset from the image center;
// otherwise the goal is marked lost and the centroid keeps its stale value.
func (a *BlobAggregator) ProcessFrame(f BlobFrame) {
	if len(f.Blobs) == 0 {
		return
	}

	sig := a.cfg.Signatures[a.cfg.ActiveSignature]

	var sumX, sumY float64
	var totalArea int
	for _, b := range f.Blobs {
		if b.Red != sig.Red || b.Green != sig.Green || b.Blue != sig.Blue {
			continue
		}
		sumX += float64(b.Area) * b.X
		sumY += float64(b.Area) * b.Y
		totalArea += b.Area
	}

	if totalArea > a.cfg.GoalAreaBound {
		centroidX := sumX/float64(totalArea) - float64(a.cfg.ImageWidth)/2
		a.core.SetGoalSeen(centroidX, totalArea)
		return
	}
	a.core.SetGoalLost(totalArea)
}
