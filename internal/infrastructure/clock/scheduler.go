package clock

import (
	"time"

	"petverse/internal/ports/output"
)

var _ output.Scheduler = Scheduler{}

// Scheduler runs callbacks on the runtime timer.
type Scheduler struct{}

func (Scheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
