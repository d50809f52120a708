package latency

import (
	"math"

	"github.com/mosaicnetworks/fairshow/src/common"
)

// NeutralizedThreshold is the percentage below which the remaining time
// difference counts as neutralized. The comparison is strict.
const NeutralizedThreshold = 5.0

// Classification is the verdict attached to a neutralized time difference.
type Classification int

const (
	// Insufficient means the VDF delay is too short to hide the latency gap
	Insufficient Classification = iota
	// Neutralized means the remaining difference is negligible
	Neutralized
)

var classifications = []string{"Insufficient", "Neutralized"}

// String ...
func (c Classification) String() string {
	if c < 0 || int(c) >= len(classifications) {
		return "Unknown"
	}
	return classifications[c]
}

// Message returns the sentence shown under the "Time Difference" metric.
func (c Classification) Message() string {
	if c == Neutralized {
		return "VDF successfully neutralized latency advantage!"
	}
	return "Increase VDF time to fully neutralize latency"
}

// Classify applies the strict < NeutralizedThreshold policy.
func Classify(differencePercent float64) Classification {
	if differencePercent < NeutralizedThreshold {
		return Neutralized
	}
	return Insufficient
}

// Neutralization is the outcome of WithNeutralization.
type Neutralization struct {
	FastTotalMs       float64        `json:"fast_total_ms"`
	SlowTotalMs       float64        `json:"slow_total_ms"`
	DifferencePercent float64        `json:"difference_percent"`
	Classification    Classification `json:"classification"`
}

// WithoutNeutralization returns the percentage by which the fast node beats the
// slow node when only network latency matters. slowLatencyMs must be > 0.
func WithoutNeutralization(fastLatencyMs, slowLatencyMs float64) (float64, error) {
	if err := checkLatencies(fastLatencyMs, slowLatencyMs); err != nil {
		return 0, err
	}
	return (slowLatencyMs - fastLatencyMs) / slowLatencyMs * 100, nil
}

// WithNeutralization adds the same VDF delay to both nodes and returns the
// residual relative difference between their total times.
func WithNeutralization(fastLatencyMs, slowLatencyMs, vdfDelaySeconds float64) (Neutralization, error) {
	if err := checkLatencies(fastLatencyMs, slowLatencyMs); err != nil {
		return Neutralization{}, err
	}
	if err := checkFinite("vdf_delay_seconds", vdfDelaySeconds); err != nil {
		return Neutralization{}, err
	}
	if vdfDelaySeconds < 0 {
		return Neutralization{}, common.NewValidationErr("vdf_delay_seconds", common.OutOfRange, vdfDelaySeconds)
	}

	vdfMs := vdfDelaySeconds * 1000
	n := Neutralization{
		FastTotalMs: vdfMs + fastLatencyMs,
		SlowTotalMs: vdfMs + slowLatencyMs,
	}
	n.DifferencePercent = (n.SlowTotalMs - n.FastTotalMs) / n.SlowTotalMs * 100
	n.Classification = Classify(n.DifferencePercent)

	return n, nil
}

func checkLatencies(fast, slow float64) error {
	if err := checkFinite("fast_latency_ms", fast); err != nil {
		return err
	}
	if err := checkFinite("slow_latency_ms", slow); err != nil {
		return err
	}
	if slow <= 0 {
		return common.NewValidationErr("slow_latency_ms", common.OutOfRange, slow)
	}
	if fast < 0 {
		return common.NewValidationErr("fast_latency_ms", common.OutOfRange, fast)
	}
	return nil
}

func checkFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return common.NewValidationErr(field, common.NotFinite, v)
	}
	return nil
}

// MarshalText encodes the classification by name.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText ...
func (c *Classification) UnmarshalText(text []byte) error {
	for i, name := range classifications {
		if name == string(text) {
			*c = Classification(i)
			return nil
		}
	}
	return common.NewValidationErr("classification", common.Unknown, string(text))
}
