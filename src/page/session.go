package page

import (
	"github.com/mosaicnetworks/fairshow/src/common"
	"github.com/mosaicnetworks/fairshow/src/dataset"
	"github.com/mosaicnetworks/fairshow/src/latency"
	"github.com/mosaicnetworks/fairshow/src/progress"
	"github.com/mosaicnetworks/fairshow/src/witness"
)

// Session holds the state of one viewer: the selected page, the current value
// of every control, the last verification and the viewer's own VDF progress
// run. Slider setters clamp to the slider bounds.
type Session struct {
	ID string `json:"id"`

	Page Page `json:"page"`

	FastLatencyMs   float64 `json:"fast_latency_ms"`
	SlowLatencyMs   float64 `json:"slow_latency_ms"`
	VDFDelaySeconds float64 `json:"vdf_delay_seconds"`

	BlockNumber int    `json:"block_number"`
	Validator   string `json:"validator"`

	Metric     dataset.Column `json:"metric"`
	Algorithms []string       `json:"algorithms"`

	// LastVerification is the answer to the latest "Verify Fairness" press.
	// It is dropped when the form or the page changes.
	LastVerification *witness.Result `json:"last_verification,omitempty"`

	runner *progress.Runner
}

// DefaultAlgorithms are preselected in the radar comparison.
var DefaultAlgorithms = []string{"Traditional PoS", "Algorand", "Ethereum 2.0", dataset.ProposedWork}

// NewSession returns a session on the Overview page with every control at its
// default.
func NewSession(id string) *Session {
	algos := make([]string, len(DefaultAlgorithms))
	copy(algos, DefaultAlgorithms)

	return &Session{
		ID:              id,
		Page:            Overview,
		FastLatencyMs:   latency.FastLatencyBounds.Default,
		SlowLatencyMs:   latency.SlowLatencyBounds.Default,
		VDFDelaySeconds: latency.VDFDelayBounds.Default,
		BlockNumber:     witness.DefaultBlock,
		Validator:       witness.DefaultValidator,
		Metric:          dataset.Columns[0],
		Algorithms:      algos,
	}
}

// Runner returns the session's VDF progress runner. Sessions built outside a
// Store have none.
func (s *Session) Runner() *progress.Runner {
	return s.runner
}

// Simulation returns the state of the session's progress run.
func (s *Session) Simulation() progress.Status {
	if s.runner == nil {
		return progress.Status{Total: progress.DefaultSteps}
	}
	return s.runner.Status()
}

// SetPage selects p. Leaving a page drops what its last button press showed.
func (s *Session) SetPage(p Page) {
	if p == s.Page {
		return
	}
	s.Page = p
	s.clearResults()
}

// RecordVerification remembers res for the Fairness Witnesses page.
func (s *Session) RecordVerification(res witness.Result) {
	s.LastVerification = &res
}

// clearResults drops the outputs of earlier button presses: the finished VDF
// run and the verification result. A run still in progress is left alone.
func (s *Session) clearResults() {
	s.LastVerification = nil
	if s.runner != nil {
		s.runner.Reset()
	}
}

// SetFastLatency ...
func (s *Session) SetFastLatency(ms float64) {
	s.FastLatencyMs = latency.FastLatencyBounds.Clamp(ms)
}

// SetSlowLatency ...
func (s *Session) SetSlowLatency(ms float64) {
	s.SlowLatencyMs = latency.SlowLatencyBounds.Clamp(ms)
}

// SetVDFDelay ...
func (s *Session) SetVDFDelay(seconds float64) {
	s.VDFDelaySeconds = latency.VDFDelayBounds.Clamp(seconds)
}

// SetBlockNumber clamps n to the block number input bounds.
func (s *Session) SetBlockNumber(n int) {
	if n < witness.MinBlock {
		n = witness.MinBlock
	}
	if n > witness.MaxBlock {
		n = witness.MaxBlock
	}
	s.BlockNumber = n
}

// SetValidator only accepts one of the selector options.
func (s *Session) SetValidator(v string) error {
	if !witness.IsValidator(v) {
		return common.NewValidationErr("validator", common.Unknown, v)
	}
	s.Validator = v
	return nil
}

// SetMetric selects the column of the performance comparison chart.
func (s *Session) SetMetric(label string) error {
	c, err := dataset.ParseColumn(label)
	if err != nil {
		return err
	}
	s.Metric = c
	return nil
}

// SetAlgorithms selects the radar chart traces. Every name must exist in the
// comparison table; duplicates are dropped. An empty selection is allowed.
func (s *Session) SetAlgorithms(names []string) error {
	seen := make(map[string]bool, len(names))
	selected := make([]string, 0, len(names))
	for _, n := range names {
		if _, err := dataset.Lookup(n); err != nil {
			return err
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		selected = append(selected, n)
	}
	s.Algorithms = selected
	return nil
}

// Controls is a partial update of a Session. Nil fields are left untouched.
type Controls struct {
	Page            *string   `json:"page,omitempty"`
	FastLatencyMs   *float64  `json:"fast_latency_ms,omitempty"`
	SlowLatencyMs   *float64  `json:"slow_latency_ms,omitempty"`
	VDFDelaySeconds *float64  `json:"vdf_delay_seconds,omitempty"`
	BlockNumber     *int      `json:"block_number,omitempty"`
	Validator       *string   `json:"validator,omitempty"`
	Metric          *string   `json:"metric,omitempty"`
	Algorithms      *[]string `json:"algorithms,omitempty"`
}

// Apply validates every field of c before changing s, so a rejected update
// leaves the session unchanged. Changing the page or the VDF delay drops a
// finished simulation; changing the page or the verification form drops the
// last verification.
func (s *Session) Apply(c Controls) error {
	next := *s
	next.Algorithms = append([]string(nil), s.Algorithms...)

	if c.Page != nil {
		p, err := Parse(*c.Page)
		if err != nil {
			return err
		}
		next.Page = p
	}
	if c.FastLatencyMs != nil {
		next.SetFastLatency(*c.FastLatencyMs)
	}
	if c.SlowLatencyMs != nil {
		next.SetSlowLatency(*c.SlowLatencyMs)
	}
	if c.VDFDelaySeconds != nil {
		next.SetVDFDelay(*c.VDFDelaySeconds)
	}
	if c.BlockNumber != nil {
		next.SetBlockNumber(*c.BlockNumber)
	}
	if c.Validator != nil {
		if err := next.SetValidator(*c.Validator); err != nil {
			return err
		}
	}
	if c.Metric != nil {
		if err := next.SetMetric(*c.Metric); err != nil {
			return err
		}
	}
	if c.Algorithms != nil {
		if err := next.SetAlgorithms(*c.Algorithms); err != nil {
			return err
		}
	}

	pageChanged := next.Page != s.Page
	vdfChanged := next.VDFDelaySeconds != s.VDFDelaySeconds
	formChanged := next.BlockNumber != s.BlockNumber || next.Validator != s.Validator

	*s = next

	switch {
	case pageChanged:
		s.clearResults()
	case vdfChanged:
		if s.runner != nil {
			s.runner.Reset()
		}
	}
	if formChanged {
		s.LastVerification = nil
	}
	return nil
}
