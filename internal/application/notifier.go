package application

import (
	"sync"
	"time"

	"petverse/internal/domain/entities"
	"petverse/internal/ports/output"
)

// NotificationDuration is how long a notification stays visible.
const NotificationDuration = 3 * time.Second

// Notifier owns the single transient banner. A new notification preempts the
// visible one; there is no queue.
type Notifier struct {
	surface   output.ToastSurface
	scheduler output.Scheduler
	duration  time.Duration

	mu         sync.Mutex
	generation uint64
	current    *entities.Notification
}

func NewNotifier(surface output.ToastSurface, scheduler output.Scheduler, duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = NotificationDuration
	}
	return &Notifier{
		surface:   surface,
		scheduler: scheduler,
		duration:  duration,
	}
}

// Notify shows message, replacing whatever is on screen.
func (n *Notifier) Notify(message string, severity entities.Severity) {
	n.mu.Lock()
	n.generation++
	gen := n.generation
	note := entities.Notification{Message: message, Severity: severity}
	n.current = &note
	n.surface.ShowToast(note)
	n.mu.Unlock()

	// Timers are fire-once; a stale one sees a newer generation and does nothing.
	n.scheduler.AfterFunc(n.duration, func() { n.dismiss(gen) })
}

// Current returns the visible notification, if any.
func (n *Notifier) Current() (entities.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return entities.Notification{}, false
	}
	return *n.current, true
}

func (n *Notifier) dismiss(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.generation || n.current == nil {
		return
	}
	n.current = nil
	n.surface.HideToast()
}
