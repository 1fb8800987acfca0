package application

import (
	"context"
	"sync"

	"petverse/internal/domain"
	"petverse/internal/ports/input"
)

var _ input.AssistantUseCase = (*Assistant)(nil)

// Assistant owns the chat panel. Each Open replaces the conversation with a
// new ChatSession.
type Assistant struct {
	identity *IdentityStore
	deps     chatDeps

	// openMu serializes Open; mu only guards session so the surface is never
	// called while it is held.
	openMu  sync.Mutex
	mu      sync.Mutex
	session *ChatSession
}

func NewAssistant(identity *IdentityStore, deps chatDeps) *Assistant {
	return &Assistant{identity: identity, deps: deps}
}

// Open shows the panel with a fresh conversation. Without an identity the
// panel stays closed and the user is told to log in.
func (a *Assistant) Open(ctx context.Context) error {
	if !a.identity.Require(a.deps.msgs.text("action.chat", nil)) {
		return domain.ErrIdentityRequired
	}

	a.openMu.Lock()
	defer a.openMu.Unlock()

	if prev := a.Session(); prev != nil {
		prev.close()
	}
	a.deps.surface.ShowPanel()
	s := newChatSession(a.deps)

	a.mu.Lock()
	a.session = s
	a.mu.Unlock()

	a.deps.log.DebugContext(ctx, "chat panel opened", "chat_session", s.ID().String())
	return nil
}

// Session returns the conversation of the open panel, or nil.
func (a *Assistant) Session() *ChatSession {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// Submit forwards input to the open conversation. Input typed while the
// panel is closed is ignored.
func (a *Assistant) Submit(ctx context.Context, raw string) error {
	s := a.Session()
	if s == nil {
		return nil
	}
	return s.Submit(ctx, raw)
}

// Wait blocks until the open conversation has no pending relay.
func (a *Assistant) Wait() {
	if s := a.Session(); s != nil {
		s.Wait()
	}
}
