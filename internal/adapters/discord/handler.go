package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"petverse/internal/adapters/web"
	"petverse/internal/application"
	"petverse/internal/domain"
	"petverse/internal/infrastructure/clock"
	"petverse/internal/ports/output"
)

// StoreFactory returns the storage namespace of one scope.
type StoreFactory func(scope string) output.KeyValueStore

// userPage is the page state of one Discord user.
type userPage struct {
	page     *application.Page
	surface  *Surface
	lastSeen time.Time
}

// Handler handles Discord interactions using use cases.
type Handler struct {
	sender     Sender
	stores     StoreFactory
	transport  output.ChatTransport
	translator output.T
	dictionary domain.Dictionary
	pageConfig application.PageConfig
	log        *slog.Logger
	now        func() time.Time

	loading singleflight.Group
	mu      sync.Mutex
	pages   map[string]*userPage
}

// NewHandler creates a Handler.
func NewHandler(
	sender Sender,
	stores StoreFactory,
	transport output.ChatTransport,
	translator output.T,
	dictionary domain.Dictionary,
	pageConfig application.PageConfig,
	log *slog.Logger,
) *Handler {
	return &Handler{
		sender:     sender,
		stores:     stores,
		transport:  transport,
		translator: translator,
		dictionary: dictionary,
		pageConfig: pageConfig,
		log:        log,
		now:        time.Now,
		pages:      map[string]*userPage{},
	}
}

// pageFor returns the user's page, loading it on first use. Loading runs
// without h.mu so other users are not blocked on one user's store; concurrent
// first interactions of one user share a single load.
func (h *Handler) pageFor(ctx context.Context, userID string) (*userPage, error) {
	if up, ok := h.existingPage(userID); ok {
		return up, nil
	}

	v, err, _ := h.loading.Do(userID, func() (any, error) {
		if up, ok := h.existingPage(userID); ok {
			return up, nil
		}
		up, err := h.loadPage(ctx, userID)
		if err != nil {
			return nil, err
		}
		h.mu.Lock()
		up.lastSeen = h.now()
		h.pages[userID] = up
		h.mu.Unlock()
		return up, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*userPage), nil
}

func (h *Handler) loadPage(ctx context.Context, userID string) (*userPage, error) {
	doc, err := web.DefaultPage()
	if err != nil {
		return nil, err
	}
	surface := NewSurface(h.sender, userID, h.log)
	page, err := application.NewPage(application.PageDeps{
		Store:      h.stores("discord:" + userID),
		Toast:      surface,
		Header:     surface,
		Chat:       surface,
		Document:   doc,
		Navigator:  surface,
		Scheduler:  clock.Scheduler{},
		Transport:  h.transport,
		Translator: h.translator,
		Dictionary: h.dictionary,
		Logger:     h.log.With("discord_user", userID),
	}, h.pageConfig)
	if err != nil {
		return nil, fmt.Errorf("build page for %s: %w", userID, err)
	}
	if err := page.Load(ctx); err != nil {
		return nil, fmt.Errorf("load page for %s: %w", userID, err)
	}
	// The page-load render is not a user-visible event here.
	surface.Drain()

	return &userPage{page: page, surface: surface}, nil
}

// existingPage returns the user's page without creating one.
func (h *Handler) existingPage(userID string) (*userPage, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	up, ok := h.pages[userID]
	if ok {
		up.lastSeen = h.now()
	}
	return up, ok
}

func (up *userPage) text(t output.T, key string, data map[string]any) string {
	return t.T(up.page.Locale.Current().String(), key, data)
}
