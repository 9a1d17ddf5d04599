package reminder

import (
	"sync"
	"testing"

	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) Notify(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, title)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func TestMessageForHour(t *testing.T) {
	tests := []struct {
		hour      int
		wantTitle string
	}{
		{9, "Grab a Special Deal!"},
		{17, "Are you hungry?"},
		{20, "Eat and Repeat!"},
		{13, "Eat and Repeat!"},
	}
	for _, tt := range tests {
		title, message := MessageForHour(tt.hour)
		if title != tt.wantTitle {
			t.Errorf("MessageForHour(%d) title = %q, want %q", tt.hour, title, tt.wantTitle)
		}
		if message == "" {
			t.Errorf("MessageForHour(%d) returned empty message", tt.hour)
		}
	}
}

func TestScheduler_EnabledGate(t *testing.T) {
	notifier := &recordingNotifier{}
	sched := NewScheduler(notifier, zap.NewNop())

	sched.fire(9)
	if notifier.count() != 0 {
		t.Errorf("disabled scheduler delivered %d reminders, want 0", notifier.count())
	}

	sched.SetEnabled(true)
	sched.fire(9)
	sched.fire(17)
	if notifier.count() != 2 {
		t.Errorf("enabled scheduler delivered %d reminders, want 2", notifier.count())
	}

	sched.SetEnabled(false)
	sched.fire(20)
	if notifier.count() != 2 {
		t.Errorf("re-disabled scheduler delivered %d reminders, want still 2", notifier.count())
	}
}
