package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestParseCron(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr bool
	}{
		{"0 * * * *", false},
		{"*/5 * * * *", false},
		{"0 0 * * 1", false},
		{"not a cron", true},
		{"* * *", true},
	}

	for _, tt := range tests {
		_, err := ParseCron(tt.expr)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCron(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
		}
	}
}

func TestNew_InvalidExpr(t *testing.T) {
	if _, err := New("bogus", func() {}); err == nil {
		t.Error("expected error for invalid cron expression")
	}
}

func TestScheduler_NextRun(t *testing.T) {
	s, err := New("0 * * * *", func() {})
	if err != nil {
		t.Fatal(err)
	}

	next := s.NextRun()
	if !next.After(time.Now()) {
		t.Errorf("NextRun() = %v, want a future time", next)
	}
	if next.Minute() != 0 {
		t.Errorf("NextRun() minute = %d, want 0", next.Minute())
	}
}

type fixedDelay struct {
	delay time.Duration
}

func (f fixedDelay) Next(t time.Time) time.Time {
	return t.Add(f.delay)
}

func TestScheduler_RunsJob(t *testing.T) {
	var runs atomic.Int32

	s := &Scheduler{
		schedule: fixedDelay{delay: 20 * time.Millisecond},
		job:      func() { runs.Add(1) },
		stopChan: make(chan struct{}),
	}

	s.Start()
	defer s.Stop()

	deadline := time.After(2 * time.Second)
	for runs.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("job ran %d times, want at least 2", runs.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestScheduler_StopHaltsJob(t *testing.T) {
	var runs atomic.Int32

	s := &Scheduler{
		schedule: fixedDelay{delay: 10 * time.Millisecond},
		job:      func() { runs.Add(1) },
		stopChan: make(chan struct{}),
	}

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(50 * time.Millisecond)
	if got := runs.Load(); got != after {
		t.Errorf("job kept running after Stop: %d -> %d", after, got)
	}

	// Stopping twice must not panic
	s.Stop()
}

func TestScheduler_StartTwice(t *testing.T) {
	s, err := New("0 * * * *", func() {})
	if err != nil {
		t.Fatal(err)
	}
	s.Start()
	s.Start()
	s.Stop()
}
