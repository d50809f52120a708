package progress

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
)

// DefaultStepInterval is the pause between two steps.
const DefaultStepInterval = 50 * time.Millisecond

// ErrAlreadyRunning is returned by Start while a run is in progress.
var ErrAlreadyRunning = errors.New("VDF simulation already running")

// Status is a snapshot of the runner.
type Status struct {
	Running bool   `json:"running"`
	Step    int    `json:"step"`
	Total   int    `json:"total"`
	Percent int    `json:"percent"`
	Done    bool   `json:"done"`
	Message string `json:"message,omitempty"`
}

// Runner paces a Progress with a clock.
type Runner struct {
	sync.Mutex

	clock    clock.Clock
	interval time.Duration
	steps    int

	progress   *Progress
	running    bool
	vdfSeconds float64

	subscribers map[int]chan Status
	nextID      int

	logger *logrus.Entry
}

// NewRunner creates a Runner. Pass clock.New() in production and
// clock.NewMock() in tests.
func NewRunner(clk clock.Clock, interval time.Duration, steps int, logger *logrus.Entry) *Runner {
	if interval <= 0 {
		interval = DefaultStepInterval
	}
	if steps <= 0 {
		steps = DefaultSteps
	}
	return &Runner{
		clock:       clk,
		interval:    interval,
		steps:       steps,
		subscribers: make(map[int]chan Status),
		logger:      logger,
	}
}

// Duration is the fixed wall time of one run.
func (r *Runner) Duration() time.Duration {
	return r.interval * time.Duration(r.steps)
}

// Start begins a new run for the given VDF delay. The ticker is created before
// Start returns, so the first step is due exactly one interval later.
func (r *Runner) Start(vdfSeconds float64) error {
	r.Lock()
	defer r.Unlock()

	if r.running {
		return ErrAlreadyRunning
	}

	r.progress = NewProgress(r.steps)
	r.running = true
	r.vdfSeconds = vdfSeconds

	ticker := r.clock.Ticker(r.interval)

	r.logger.WithFields(logrus.Fields{
		"vdf_seconds": vdfSeconds,
		"steps":       r.steps,
		"duration":    r.Duration(),
	}).Debug("Starting VDF simulation")

	go r.run(ticker)

	return nil
}

func (r *Runner) run(ticker *clock.Ticker) {
	defer ticker.Stop()

	for range ticker.C {
		r.Lock()
		done := r.progress.Tick()
		if done {
			r.running = false
		}
		status := r.status()
		r.publish(status)
		r.Unlock()

		if done {
			r.logger.Debug(status.Message)
			return
		}
	}
}

// Status returns the current snapshot. Before the first run it reports zero
// steps and not done.
func (r *Runner) Status() Status {
	r.Lock()
	defer r.Unlock()
	return r.status()
}

func (r *Runner) status() Status {
	if r.progress == nil {
		return Status{Total: r.steps}
	}

	s := Status{
		Running: r.running,
		Step:    r.progress.Step(),
		Total:   r.progress.Total(),
		Percent: r.progress.Percent(),
		Done:    r.progress.Done(),
	}
	if s.Done {
		s.Message = CompletionMessage(r.vdfSeconds)
	}
	return s
}

// Reset forgets a finished run so the indicator disappears. It returns false,
// and changes nothing, while a run is active.
func (r *Runner) Reset() bool {
	r.Lock()
	defer r.Unlock()

	if r.running {
		return false
	}
	r.progress = nil
	r.vdfSeconds = 0
	return true
}

// Subscribe registers an observer of step updates. The returned function
// unregisters it. Each step is delivered at most once; updates are dropped if
// the observer falls a full run behind.
func (r *Runner) Subscribe() (<-chan Status, func()) {
	r.Lock()
	defer r.Unlock()

	id := r.nextID
	r.nextID++

	ch := make(chan Status, r.steps+1)
	r.subscribers[id] = ch

	return ch, func() {
		r.Lock()
		defer r.Unlock()
		delete(r.subscribers, id)
	}
}

func (r *Runner) publish(s Status) {
	for _, ch := range r.subscribers {
		select {
		case ch <- s:
		default:
		}
	}
}

// CompletionMessage is shown once every step has run.
func CompletionMessage(vdfSeconds float64) string {
	return fmt.Sprintf("VDF computation complete! All nodes finished together after %g seconds.", vdfSeconds)
}
