package clock

import (
	"testing"
	"time"
)

func TestScheduler_AfterFunc(t *testing.T) {
	done := make(chan struct{})
	Scheduler{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not run")
	}
}
