package seeker

// Point3 is one depth sample. Z is range along the optical axis in meters.
// Invalid returns are encoded as NaN and never compare below the near-range
// bound.
type Point3 struct {
	X float32
	Y float32
	Z float32
}

// PointGrid is a row-major grid of depth points addressable by (row, col).
// A grid may be ragged or truncated relative to the configured scan window;
// out-of-range lookups report absence rather than faulting.
type PointGrid struct {
	Width  int
	Height int
	Points []Point3
}

// At returns the point at (row, col) and whether it exists.
func (g *PointGrid) At(row, col int) (Point3, bool) {
	if row < 0 || col < 0 || col >= g.Width {
		return Point3{}, false
	}
	idx := row*g.Width + col
	if idx >= len(g.Points) {
		return Point3{}, false
	}
	return g.Points[idx], true
}

// DepthScanner counts near-range points in a fixed horizontal band of the
// depth image and folds the verdict into the core's obstacle flag.
type DepthScanner struct {
	cfg  Config
	core *RobotCore
}

// NewDepthScanner returns a scanner writing into core.
func NewDepthScanner(cfg Config, core *RobotCore) *DepthScanner {
	return &DepthScanner{cfg: cfg, core: core}
}

// ProcessCloud scans one depth frame and updates the obstacle flag. The flag
// is raised when the hit count exceeds the configured bound; it is lowered
// only when the bumper is not latched. Missing points are skipped. Returns
// the hit count.
func (s *DepthScanner) ProcessCloud(g *PointGrid) int {
	hits := 0
	for k := 0; k < s.cfg.ScanRowCount; k++ {
		row := s.cfg.ScanRowOffset + k
		for col := 0; col < s.cfg.ScanColCount; col++ {
			pt, ok := g.At(row, col)
			if !ok {
				continue
			}
			if float64(pt.Z) < s.cfg.NearRangeMeters {
				hits++
			}
		}
	}
	s.core.ApplyDepthVerdict(hits > s.cfg.NearHitBound)
	return hits
}
