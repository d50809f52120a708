package latency

import "math"

// Bounds describes the range and default of a numeric slider.
type Bounds struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
}

// Slider bounds.
var (
	FastLatencyBounds = Bounds{Min: 10, Max: 200, Default: 50}
	SlowLatencyBounds = Bounds{Min: 100, Max: 500, Default: 300}
	VDFDelayBounds    = Bounds{Min: 1, Max: 10, Default: 5}
)

// Clamp returns v limited to [b.Min, b.Max]. NaN maps to the default.
func (b Bounds) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return b.Default
	}
	return math.Max(b.Min, math.Min(b.Max, v))
}
