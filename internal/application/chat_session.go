package application

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"petverse/internal/domain"
	"petverse/internal/domain/entities"
	"petverse/internal/ports/input"
	"petverse/internal/ports/output"
)

// DefaultChatTimeout bounds a single relay to the chat endpoint.
const DefaultChatTimeout = 15 * time.Second

var _ input.ChatUseCase = (*ChatSession)(nil)

// ChatSession is one conversation in the assistant panel. It starts in
// PhaseAwaitingLanguage and moves to PhaseActive once a valid code is typed;
// it never goes back.
type ChatSession struct {
	id        uuid.UUID
	transport output.ChatTransport
	surface   output.ChatSurface
	notifier  *Notifier
	msgs      messages
	timeout   time.Duration
	log       *slog.Logger
	now       func() time.Time

	mu         sync.Mutex
	phase      domain.Phase
	language   domain.Locale
	transcript []entities.Message
	pending    bool
	closed     bool
	inflight   sync.WaitGroup

	// outbox holds messages not yet handed to the surface. The surface is
	// only called with mu released, by one goroutine at a time.
	outbox     []entities.Message
	delivering bool
}

type chatDeps struct {
	transport output.ChatTransport
	surface   output.ChatSurface
	notifier  *Notifier
	msgs      messages
	timeout   time.Duration
	log       *slog.Logger
	now       func() time.Time
}

// newChatSession clears the panel and greets the user.
func newChatSession(d chatDeps) *ChatSession {
	if d.timeout <= 0 {
		d.timeout = DefaultChatTimeout
	}
	if d.now == nil {
		d.now = time.Now
	}
	id := uuid.New()
	c := &ChatSession{
		id:        id,
		transport: d.transport,
		surface:   d.surface,
		notifier:  d.notifier,
		msgs:      d.msgs,
		timeout:   d.timeout,
		log:       d.log.With("chat_session", id.String()),
		now:       d.now,
		phase:     domain.PhaseAwaitingLanguage,
	}

	c.surface.ClearMessages()
	greeting := c.greeting()
	c.mu.Lock()
	c.appendLocked(entities.AuthorAssistant, greeting)
	c.unlockAndDeliver()
	return c
}

func (c *ChatSession) ID() uuid.UUID { return c.id }

func (c *ChatSession) Phase() domain.Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Language returns the selected language; ok is false until the session is active.
func (c *ChatSession) Language() (domain.Locale, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.language, c.phase == domain.PhaseActive
}

func (c *ChatSession) Transcript() []entities.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.transcript)
}

// Submit processes one line typed by the user. Blank input is ignored. While
// a reply is pending, input in the active phase is refused with
// domain.ErrReplyPending and nothing is echoed. Transport failures never
// surface here; they become an assistant message. A closed session ignores
// input.
func (c *ChatSession) Submit(ctx context.Context, raw string) error {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	if c.phase == domain.PhaseActive && c.pending {
		lang := c.language
		c.mu.Unlock()
		c.notifier.Notify(c.msgs.in(lang, "chat.wait", nil), entities.SeverityInfo)
		return domain.ErrReplyPending
	}

	c.appendLocked(entities.AuthorUser, text)

	if c.phase == domain.PhaseAwaitingLanguage {
		c.selectLanguageLocked(text)
		c.unlockAndDeliver()
		return nil
	}

	c.pending = true
	lang := c.language
	c.inflight.Add(1)
	c.unlockAndDeliver()

	go c.relay(ctx, text, lang)
	return nil
}

// Wait blocks until the pending relay, if any, has completed.
func (c *ChatSession) Wait() {
	c.inflight.Wait()
}

// close detaches the session from the panel; late replies are dropped.
func (c *ChatSession) close() {
	c.mu.Lock()
	c.closed = true
	c.outbox = nil
	c.mu.Unlock()
}

func (c *ChatSession) selectLanguageLocked(text string) {
	locale, err := domain.ParseLocale(text)
	if err != nil {
		c.appendLocked(entities.AuthorAssistant, c.msgs.text("chat.language_invalid", map[string]any{"Codes": domain.CodeList()}))
		return
	}
	c.language = locale
	c.phase = domain.PhaseActive
	c.log.Info("chat language selected", "lang", locale.String())
	c.appendLocked(entities.AuthorAssistant, c.msgs.in(locale, "chat.language_selected", nil))
}

func (c *ChatSession) relay(ctx context.Context, text string, lang domain.Locale) {
	defer c.inflight.Done()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	var answer string
	reply, err := c.transport.Send(ctx, output.ChatRequest{Message: text, Lang: lang.String()})
	switch {
	case err != nil:
		c.log.Warn("chat relay failed", "lang", lang.String(), "error", err)
		answer = c.msgs.in(lang, "chat.server_error", nil)
	case reply.Reply == nil || strings.TrimSpace(*reply.Reply) == "":
		answer = c.msgs.in(lang, "chat.no_reply", nil)
	default:
		answer = *reply.Reply
	}

	c.mu.Lock()
	c.pending = false
	if c.closed {
		c.mu.Unlock()
		c.log.Debug("dropping reply for closed chat session")
		return
	}
	c.appendLocked(entities.AuthorAssistant, answer)
	c.unlockAndDeliver()
}

// appendLocked records a message and queues it for the surface. mu must be
// held.
func (c *ChatSession) appendLocked(author entities.Author, text string) {
	m := entities.Message{Author: author, Text: text, At: c.now()}
	c.transcript = append(c.transcript, m)
	c.outbox = append(c.outbox, m)
}

// unlockAndDeliver releases mu and flushes the outbox in order. When another
// goroutine is already delivering, it picks up the queued messages instead.
func (c *ChatSession) unlockAndDeliver() {
	if c.delivering {
		c.mu.Unlock()
		return
	}
	c.delivering = true
	for len(c.outbox) > 0 && !c.closed {
		batch := c.outbox
		c.outbox = nil
		c.mu.Unlock()
		for _, m := range batch {
			c.surface.AppendMessage(m)
		}
		c.mu.Lock()
	}
	c.outbox = nil
	c.delivering = false
	c.mu.Unlock()
}

func (c *ChatSession) greeting() string {
	var options strings.Builder
	for _, l := range domain.SupportedLocales {
		fmt.Fprintf(&options, "%s %s – %s\n", flag(l), strings.ToUpper(l.String()), l.NativeName())
	}
	return c.msgs.text("chat.greeting", map[string]any{
		"Options": strings.TrimSuffix(options.String(), "\n"),
	})
}

func flag(l domain.Locale) string {
	if l == domain.LocaleEnglish {
		return "🇬🇧"
	}
	return "🇮🇳"
}
