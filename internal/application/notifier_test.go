package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petverse/internal/domain/entities"
)

func TestNotifier_NewMessagePreemptsAndStaleTimerIsIgnored(t *testing.T) {
	req := require.New(t)
	toast := &fakeToast{}
	sched := &fakeScheduler{}
	n := NewNotifier(toast, sched, time.Second)

	n.Notify("first", entities.SeverityInfo)
	n.Notify("second", entities.SeverityError)

	req.Len(toast.Shown(), 2)
	current, ok := n.Current()
	req.True(ok)
	req.Equal("second", current.Message)
	req.Equal(entities.SeverityError, current.Severity)

	// the first timer belongs to a replaced message
	sched.Fire(0)
	req.Zero(toast.Hides())
	_, ok = n.Current()
	req.True(ok)

	sched.Fire(1)
	req.Equal(1, toast.Hides())
	_, ok = n.Current()
	req.False(ok)
}

func TestNotifier_DefaultDuration(t *testing.T) {
	sched := &fakeScheduler{}
	n := NewNotifier(&fakeToast{}, sched, 0)

	n.Notify("hello", entities.SeveritySuccess)

	require.Equal(t, []time.Duration{NotificationDuration}, sched.Delays())
}

func TestNotifier_CurrentEmptyAtStart(t *testing.T) {
	n := NewNotifier(&fakeToast{}, &fakeScheduler{}, time.Second)
	_, ok := n.Current()
	require.False(t, ok)
}
