package seeker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ColorSignature is an exact (red, green, blue) triple as reported by the
// blob detector for one calibrated color.
type ColorSignature struct {
	Red   uint8 `json:"red"`
	Green uint8 `json:"green"`
	Blue  uint8 `json:"blue"`
}

// Config holds all tuning parameters for the perception and control layer.
type Config struct {
	// Camera geometry (pixels)
	ImageWidth  int
	ImageHeight int

	// Blob perception
	Signatures      []ColorSignature // calibrated target signatures
	ActiveSignature int              // index into Signatures used by the filter
	GoalAreaBound   int              // summed matching area (px²) above which the goal counts as found

	// Depth obstacle scan
	NearRangeMeters float64 // z below this counts as a near-range hit
	NearHitBound    int     // hits above this raise the obstacle flag
	ScanRowOffset   int     // first scanned row
	ScanRowCount    int     // rows in the scanned band
	ScanColCount    int     // columns scanned per row

	// Motion
	LinearSpeed  float64 // m/s
	AngularSpeed float64 // rad/s
	AngularClamp float64 // rad/s bound on the seek steering output

	// Arrival
	ArrivalAreaFraction float64 // goal area fraction of the frame that counts as arrival

	// Control loop
	TickInterval          time.Duration
	RetreatDuration       time.Duration // bumper escape leg 1
	RotateDuration        time.Duration // bumper escape leg 2
	AdvanceDuration       time.Duration // bumper escape leg 3
	ForwardEscapeDuration time.Duration // advance burst after the depth flag clears
}

// DefaultConfig returns the calibrated defaults for the pink-target seeker.
func DefaultConfig() Config {
	return Config{
		ImageWidth:  640,
		ImageHeight: 480,

		Signatures: []ColorSignature{
			{Red: 238, Green: 114, Blue: 76}, // pink, indoor calibration
			{Red: 185, Green: 66, Blue: 36},  // pink, outdoor calibration
		},
		ActiveSignature: 1,
		GoalAreaBound:   3000,

		NearRangeMeters: 0.7,
		NearHitBound:    10,
		ScanRowOffset:   180,
		ScanRowCount:    240,
		ScanColCount:    640,

		LinearSpeed:  0.15,
		AngularSpeed: 0.7,
		AngularClamp: 0.3,

		ArrivalAreaFraction: 0.1,

		TickInterval:          100 * time.Millisecond,
		RetreatDuration:       2 * time.Second,
		RotateDuration:        2 * time.Second,
		AdvanceDuration:       2 * time.Second,
		ForwardEscapeDuration: 5 * time.Second,
	}
}

// ArrivalArea returns the blob area (px²) above which a close obstacle is
// treated as the goal itself.
func (c Config) ArrivalArea() int {
	return int(c.ArrivalAreaFraction * float64(c.ImageWidth) * float64(c.ImageHeight))
}

// Validate checks that all parameters are within valid operating ranges.
func (c Config) Validate() error {
	if c.ImageWidth < 1 || c.ImageHeight < 1 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", c.ImageWidth, c.ImageHeight)
	}
	if len(c.Signatures) == 0 {
		return fmt.Errorf("at least one color signature is required")
	}
	if c.ActiveSignature < 0 || c.ActiveSignature >= len(c.Signatures) {
		return fmt.Errorf("active_signature %d out of range (have %d signatures)", c.ActiveSignature, len(c.Signatures))
	}
	if c.GoalAreaBound < 0 {
		return fmt.Errorf("goal_area_bound must be >= 0, got %d", c.GoalAreaBound)
	}
	if c.NearRangeMeters <= 0 {
		return fmt.Errorf("near_range_m must be positive, got %v", c.NearRangeMeters)
	}
	if c.NearHitBound < 0 {
		return fmt.Errorf("near_hit_bound must be >= 0, got %d", c.NearHitBound)
	}
	if c.ScanRowOffset < 0 || c.ScanRowCount < 1 || c.ScanColCount < 1 {
		return fmt.Errorf("invalid scan window: offset=%d rows=%d cols=%d", c.ScanRowOffset, c.ScanRowCount, c.ScanColCount)
	}
	if c.LinearSpeed <= 0 || c.AngularSpeed <= 0 || c.AngularClamp <= 0 {
		return fmt.Errorf("speeds must be positive: linear=%v angular=%v clamp=%v", c.LinearSpeed, c.AngularSpeed, c.AngularClamp)
	}
	if c.ArrivalAreaFraction <= 0 || c.ArrivalAreaFraction >= 1 {
		return fmt.Errorf("arrival_area_fraction must be in (0, 1), got %v", c.ArrivalAreaFraction)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %v", c.TickInterval)
	}
	if c.RetreatDuration <= 0 || c.RotateDuration <= 0 || c.AdvanceDuration <= 0 || c.ForwardEscapeDuration <= 0 {
		return fmt.Errorf("maneuver durations must be positive")
	}
	return nil
}

// tuningFile is the JSON shape of an on-disk tuning override. All fields are
// optional; omitted fields retain their defaults, so partial configs are
// safe. Durations are strings like "100ms".
type tuningFile struct {
	ImageWidth  *int `json:"image_width,omitempty"`
	ImageHeight *int `json:"image_height,omitempty"`

	Signatures      []ColorSignature `json:"signatures,omitempty"`
	ActiveSignature *int             `json:"active_signature,omitempty"`
	GoalAreaBound   *int             `json:"goal_area_bound,omitempty"`

	NearRangeMeters *float64 `json:"near_range_m,omitempty"`
	NearHitBound    *int     `json:"near_hit_bound,omitempty"`
	ScanRowOffset   *int     `json:"scan_row_offset,omitempty"`
	ScanRowCount    *int     `json:"scan_row_count,omitempty"`
	ScanColCount    *int     `json:"scan_col_count,omitempty"`

	LinearSpeed  *float64 `json:"linear_speed,omitempty"`
	AngularSpeed *float64 `json:"angular_speed,omitempty"`
	AngularClamp *float64 `json:"angular_clamp,omitempty"`

	ArrivalAreaFraction *float64 `json:"arrival_area_fraction,omitempty"`

	TickInterval          *string `json:"tick_interval,omitempty"`
	RetreatDuration       *string `json:"retreat_duration,omitempty"`
	RotateDuration        *string `json:"rotate_duration,omitempty"`
	AdvanceDuration       *string `json:"advance_duration,omitempty"`
	ForwardEscapeDuration *string `json:"forward_escape_duration,omitempty"`
}

// LoadConfig reads a JSON tuning file and overlays it onto DefaultConfig.
// The file is validated to have a .json extension and a sane size before
// parsing, and the merged result is range-checked.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return cfg, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return cfg, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var tf tuningFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return cfg, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := tf.apply(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (tf *tuningFile) apply(cfg *Config) error {
	if tf.ImageWidth != nil {
		cfg.ImageWidth = *tf.ImageWidth
	}
	if tf.ImageHeight != nil {
		cfg.ImageHeight = *tf.ImageHeight
	}
	if tf.Signatures != nil {
		cfg.Signatures = tf.Signatures
	}
	if tf.ActiveSignature != nil {
		cfg.ActiveSignature = *tf.ActiveSignature
	}
	if tf.GoalAreaBound != nil {
		cfg.GoalAreaBound = *tf.GoalAreaBound
	}
	if tf.NearRangeMeters != nil {
		cfg.NearRangeMeters = *tf.NearRangeMeters
	}
	if tf.NearHitBound != nil {
		cfg.NearHitBound = *tf.NearHitBound
	}
	if tf.ScanRowOffset != nil {
		cfg.ScanRowOffset = *tf.ScanRowOffset
	}
	if tf.ScanRowCount != nil {
		cfg.ScanRowCount = *tf.ScanRowCount
	}
	if tf.ScanColCount != nil {
		cfg.ScanColCount = *tf.ScanColCount
	}
	if tf.LinearSpeed != nil {
		cfg.LinearSpeed = *tf.LinearSpeed
	}
	if tf.AngularSpeed != nil {
		cfg.AngularSpeed = *tf.AngularSpeed
	}
	if tf.AngularClamp != nil {
		cfg.AngularClamp = *tf.AngularClamp
	}
	if tf.ArrivalAreaFraction != nil {
		cfg.ArrivalAreaFraction = *tf.ArrivalAreaFraction
	}

	durations := []struct {
		raw  *string
		dst  *time.Duration
		name string
	}{
		{tf.TickInterval, &cfg.TickInterval, "tick_interval"},
		{tf.RetreatDuration, &cfg.RetreatDuration, "retreat_duration"},
		{tf.RotateDuration, &cfg.RotateDuration, "rotate_duration"},
		{tf.AdvanceDuration, &cfg.AdvanceDuration, "advance_duration"},
		{tf.ForwardEscapeDuration, &cfg.ForwardEscapeDuration, "forward_escape_duration"},
	}
	for _, d := range durations {
		if d.raw == nil {
			continue
		}
		parsed, err := time.ParseDuration(*d.raw)
		if err != nil {
			return fmt.Errorf("failed to parse %s %q: %w", d.name, *d.raw, err)
		}
		*d.dst = parsed
	}
	return nil
}
