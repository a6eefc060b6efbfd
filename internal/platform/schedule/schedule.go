package schedule

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one scheduled unit of work.
type Job func(ctx context.Context) error

// Scheduler runs jobs on cron specs until Stop is called.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
	ctx  context.Context
}

func New(ctx context.Context, log *zap.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), log: log, ctx: ctx}
}

// Add registers job under spec. Failures are logged and never stop the schedule.
func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		if err := job(s.ctx); err != nil {
			s.log.Error("scheduled job failed", zap.String("job", name), zap.Error(err))
			return
		}
		s.log.Info("scheduled job done", zap.String("job", name))
	})
	if err != nil {
		return fmt.Errorf("schedule %s %q: %w", name, spec, err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
