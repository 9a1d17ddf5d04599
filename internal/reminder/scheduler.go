package reminder

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Sai-Chandu-Mallelli/canteen-client/internal/ports"
)

// Reminder hours, local time.
const (
	morningHour = 9
	eveningHour = 17
	nightHour   = 20
)

// MessageForHour picks the promotional copy delivered at the given hour.
func MessageForHour(hour int) (title, message string) {
	switch hour {
	case morningHour:
		return "Grab a Special Deal!", "Start your day with our delicious breakfast specials!"
	case eveningHour:
		return "Are you hungry?", "Grab a tasty deal from the Canteen Menu!"
	default:
		return "Eat and Repeat!", "Don't miss out the snacks and specials!"
	}
}

// Scheduler delivers daily meal reminders through a notifier. Reminders can
// be toggled at runtime; a disabled scheduler keeps its cron entries but
// swallows the deliveries, matching the enabled-flag check the delivery
// path performs.
type Scheduler struct {
	notifier ports.NotifierPort
	logger   *zap.Logger
	cron     *cron.Cron

	mu      sync.Mutex
	enabled bool
}

func NewScheduler(notifier ports.NotifierPort, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		notifier: notifier,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start registers the daily entries and starts the cron loop.
func (s *Scheduler) Start() error {
	for _, hour := range []int{morningHour, eveningHour, nightHour} {
		h := hour
		if _, err := s.cron.AddFunc(fmt.Sprintf("0 %d * * *", h), func() { s.fire(h) }); err != nil {
			return err
		}
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) fire(hour int) {
	s.mu.Lock()
	enabled := s.enabled
	s.mu.Unlock()
	if !enabled {
		return
	}
	title, message := MessageForHour(hour)
	s.notifier.Notify(title, message)
	s.logger.Debug("reminder delivered", zap.Int("hour", hour), zap.String("title", title))
}

// SetEnabled toggles reminder delivery.
func (s *Scheduler) SetEnabled(enabled bool) {
	s.mu.Lock()
	s.enabled = enabled
	s.mu.Unlock()
}

// Enabled reports whether reminders are delivered.
func (s *Scheduler) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Stop cancels the cron loop; running deliveries finish first.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
