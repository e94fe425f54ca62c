// Package notify schedules best-effort local reminder alerts. Scheduled
// alerts live only as long as the process; a restart loses them even though
// the reminder entries themselves stay stored.
package notify

import (
	"sync"
	"time"

	"github.com/gen2brain/beeep"
)

// Title is the fixed title of every reminder notification.
const Title = "Voice OS Reminder"

// Notifier raises one local notification. Delivery is fire-and-forget.
type Notifier interface {
	Notify(title, body string) error
}

type desktopNotifier struct{}

func (desktopNotifier) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Scheduler arms one-shot callbacks for future trigger times. It owns its
// timers for the process lifetime; Stop cancels anything still pending.
type Scheduler struct {
	mu       sync.Mutex
	notifier Notifier
	now      func() time.Time
	timers   map[*time.Timer]struct{}
	stopped  bool
}

func NewScheduler(n Notifier) *Scheduler {
	if n == nil {
		n = desktopNotifier{}
	}
	return &Scheduler{
		notifier: n,
		now:      time.Now,
		timers:   make(map[*time.Timer]struct{}),
	}
}

// Schedule arms a notification with the given body text at the target time.
// A target in the past or present is a no-op, not an error. Reports whether
// an alert was armed.
func (s *Scheduler) Schedule(text string, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}

	delay := at.Sub(s.now())
	if delay <= 0 {
		return false
	}

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, t)
		s.mu.Unlock()
		// If notifications are unavailable the fire silently has no
		// visible effect.
		_ = s.notifier.Notify(Title, text)
	})
	s.timers[t] = struct{}{}
	return true
}

// Pending reports how many alerts are still armed.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels all pending alerts. The scheduler accepts no new work after.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for t := range s.timers {
		t.Stop()
		delete(s.timers, t)
	}
}
