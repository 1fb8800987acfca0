package discord

import (
	"context"
	"time"
)

// pageIdleTimeout is how long an inactive user's page stays in memory. Its
// identity and language survive in storage.
const pageIdleTimeout = time.Hour

// RunScheduledTasks evicts idle user pages every 10 minutes until ctx is done.
func (h *Handler) RunScheduledTasks(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.evictIdle(h.now())
		}
	}
}

func (h *Handler) evictIdle(now time.Time) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	evicted := 0
	for userID, up := range h.pages {
		if now.Sub(up.lastSeen) < pageIdleTimeout {
			continue
		}
		delete(h.pages, userID)
		evicted++
	}
	if evicted > 0 {
		h.log.Info("discord: evicted idle pages", "count", evicted)
	}
	return evicted
}
