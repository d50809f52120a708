// Package progress drives the scripted "Computing VDF..." indicator.
//
// The indicator is pure animation. Progress is a finite step counter advanced
// by an explicit Tick, so it can be stepped in tests without waiting. Runner
// paces a Progress with a clock ticker (50 ms per step, 100 steps) and lets
// observers follow it. A run always completes; there is no cancellation and no
// partial result, and only one run may be active at a time.
package progress

// DefaultSteps is the number of steps of one run.
const DefaultSteps = 100

// Progress is a finite step counter.
type Progress struct {
	step  int
	total int
}

// NewProgress returns a counter of total steps. A non-positive total falls
// back to DefaultSteps.
func NewProgress(total int) *Progress {
	if total <= 0 {
		total = DefaultSteps
	}
	return &Progress{total: total}
}

// Tick advances one step and reports whether the counter is done. Ticking a
// finished counter has no effect.
func (p *Progress) Tick() bool {
	if p.step < p.total {
		p.step++
	}
	return p.Done()
}

// Step returns the number of completed steps.
func (p *Progress) Step() int {
	return p.step
}

// Total ...
func (p *Progress) Total() int {
	return p.total
}

// Done ...
func (p *Progress) Done() bool {
	return p.step >= p.total
}

// Percent returns completion in whole percent.
func (p *Progress) Percent() int {
	return p.step * 100 / p.total
}
