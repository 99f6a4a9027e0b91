package notify

import (
	"errors"
	"testing"
)

type recordingNotifier struct {
	sent []Notification
	err  error
}

func (r *recordingNotifier) Send(n Notification) error {
	r.sent = append(r.sent, n)
	return r.err
}

func TestMultiNotifier_SendsToAll(t *testing.T) {
	a := &recordingNotifier{}
	b := &recordingNotifier{}

	m := NewMultiNotifier(a, b)
	n := Notification{Title: "Snapshot", Message: "120 files", Type: NotifySuccess}

	if err := m.Send(n); err != nil {
		t.Fatal(err)
	}

	if len(a.sent) != 1 || len(b.sent) != 1 {
		t.Errorf("sent counts = %d, %d, want 1, 1", len(a.sent), len(b.sent))
	}
	if a.sent[0].Title != "Snapshot" {
		t.Errorf("Title = %q, want Snapshot", a.sent[0].Title)
	}
}

func TestMultiNotifier_ContinuesOnError(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("boom")}
	ok := &recordingNotifier{}

	m := NewMultiNotifier(failing, ok)

	err := m.Send(Notification{Title: "T"})
	if err == nil {
		t.Error("expected error from failing notifier")
	}
	if len(ok.sent) != 1 {
		t.Error("later notifiers should still receive the notification")
	}
}

func TestDesktopNotifier_Disabled(t *testing.T) {
	d := NewDesktopNotifier(false)
	if err := d.Send(Notification{Title: "T", Message: "M"}); err != nil {
		t.Errorf("disabled notifier should not error: %v", err)
	}
}

func TestNoopNotifier(t *testing.T) {
	if err := (NoopNotifier{}).Send(Notification{}); err != nil {
		t.Errorf("NoopNotifier.Send() = %v, want nil", err)
	}
}

func TestFromConfig(t *testing.T) {
	if _, ok := FromConfig(false).(NoopNotifier); !ok {
		t.Errorf("FromConfig(false) = %T, want NoopNotifier", FromConfig(false))
	}
	if _, ok := FromConfig(true).(*MultiNotifier); !ok {
		t.Errorf("FromConfig(true) = %T, want *MultiNotifier", FromConfig(true))
	}
	if err := FromConfig(false).Send(Notification{Title: "T"}); err != nil {
		t.Errorf("disabled stack should not error: %v", err)
	}
}
