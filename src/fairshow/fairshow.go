// Package fairshow assembles a presentation server from a Config: the session
// store, whose sessions each own a VDF progress runner, and the HTTP service.
package fairshow

import (
	"github.com/benbjohnson/clock"
	"github.com/mosaicnetworks/fairshow/src/config"
	"github.com/mosaicnetworks/fairshow/src/page"
	"github.com/mosaicnetworks/fairshow/src/progress"
	"github.com/mosaicnetworks/fairshow/src/service"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Fairshow is a presentation server.
type Fairshow struct {
	Config   *config.Config
	Clock    clock.Clock
	Sessions *page.Store
	Service  *service.Service

	logger *logrus.Entry
}

// NewFairshow creates an uninitialized server. Set Clock before Init to drive
// the progress animation from a mock.
func NewFairshow(conf *config.Config) *Fairshow {
	return &Fairshow{
		Config: conf,
	}
}

func (f *Fairshow) initStore() error {
	if f.Clock == nil {
		f.Clock = clock.New()
	}

	if f.Config.StepInterval <= 0 {
		return errors.Errorf("step interval must be positive, got %v", f.Config.StepInterval)
	}
	if f.Config.Steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", f.Config.Steps)
	}
	if f.Config.MaxSessions <= 0 {
		return errors.Errorf("max sessions must be positive, got %d", f.Config.MaxSessions)
	}

	logger := f.logger.WithField("component", "progress")

	f.Sessions = page.NewStore(f.Config.MaxSessions, func(id string) *progress.Runner {
		return progress.NewRunner(
			f.Clock,
			f.Config.StepInterval,
			f.Config.Steps,
			logger.WithField("session", id),
		)
	})

	return nil
}

func (f *Fairshow) initService() error {
	if f.Config.ServiceAddr == "" {
		return errors.New("no service address")
	}

	f.Service = service.NewService(
		f.Config.ServiceAddr,
		f.Sessions,
		f.logger.WithField("component", "service"),
	)

	return nil
}

// Init wires every component.
func (f *Fairshow) Init() error {
	f.logger = f.Config.Logger()

	if err := f.initStore(); err != nil {
		return errors.Wrap(err, "initializing session store")
	}

	if err := f.initService(); err != nil {
		return errors.Wrap(err, "initializing service")
	}

	f.logger.WithFields(logrus.Fields{
		"service_addr":  f.Config.ServiceAddr,
		"step_interval": f.Config.StepInterval,
		"steps":         f.Config.Steps,
		"max_sessions":  f.Config.MaxSessions,
	}).Debug("Initialized fairshow")

	return nil
}

// Run serves the presentation. This is a blocking call.
func (f *Fairshow) Run() error {
	return f.Service.Serve()
}
