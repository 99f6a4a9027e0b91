// Package schedule runs a job on a cron schedule, used for periodic
// stats snapshots.
package schedule

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a single job on a cron schedule
type Scheduler struct {
	schedule cron.Schedule
	job      func()

	running  bool
	mu       sync.Mutex
	stopChan chan struct{}
}

// ParseCron parses a standard five-field cron expression
func ParseCron(expr string) (cron.Schedule, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	return parser.Parse(expr)
}

// New creates a scheduler for the given cron expression and job
func New(expr string, job func()) (*Scheduler, error) {
	sched, err := ParseCron(expr)
	if err != nil {
		return nil, fmt.Errorf("parsing cron %q: %w", expr, err)
	}

	return &Scheduler{
		schedule: sched,
		job:      job,
		stopChan: make(chan struct{}),
	}, nil
}

// NextRun returns the next scheduled run time
func (s *Scheduler) NextRun() time.Time {
	return s.schedule.Next(time.Now())
}

// Start launches the run loop. Calling Start on a running scheduler is
// a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true

	go s.loop()
}

// Stop terminates the run loop
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stopChan)
}

func (s *Scheduler) loop() {
	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			s.job()
		}
	}
}
