package application

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"petverse/internal/domain"
	"petverse/internal/domain/entities"
	"petverse/internal/ports/input"
	"petverse/internal/ports/output"
)

var _ input.IdentityUseCase = (*IdentityStore)(nil)

// IdentityListener is called after every identity change.
type IdentityListener func(name string, ok bool)

type IdentityOptions struct {
	LogoutTarget string
	LogoutDelay  time.Duration
}

// IdentityStore owns the current-user token. The in-memory copy is the source
// of truth for readers; every write goes through to the KeyValueStore.
type IdentityStore struct {
	store     output.KeyValueStore
	notifier  *Notifier
	navigator output.Navigator
	scheduler output.Scheduler
	msgs      messages
	opts      IdentityOptions
	log       *slog.Logger

	// writeMu serializes Login/Logout so memory and storage agree on the last writer.
	writeMu   sync.Mutex
	mu        sync.RWMutex
	current   *string
	listeners []IdentityListener
}

func NewIdentityStore(
	store output.KeyValueStore,
	notifier *Notifier,
	navigator output.Navigator,
	scheduler output.Scheduler,
	msgs messages,
	opts IdentityOptions,
	log *slog.Logger,
) *IdentityStore {
	return &IdentityStore{
		store:     store,
		notifier:  notifier,
		navigator: navigator,
		scheduler: scheduler,
		msgs:      msgs,
		opts:      opts,
		log:       log,
	}
}

// Load reads the persisted identity. Called once per page load.
func (s *IdentityStore) Load(ctx context.Context) error {
	name, ok, err := s.store.Get(ctx, domain.StorageKeyUser)
	if err != nil {
		return fmt.Errorf("load identity: %w", err)
	}
	s.mu.Lock()
	if ok {
		s.current = &name
	} else {
		s.current = nil
	}
	s.mu.Unlock()
	return nil
}

func (s *IdentityStore) Current() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return "", false
	}
	return *s.current, true
}

// Subscribe registers l for identity changes. Listeners run synchronously,
// before Login or Logout returns.
func (s *IdentityStore) Subscribe(l IdentityListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Login sets the active identity. The name is not validated here.
func (s *IdentityStore) Login(ctx context.Context, name string) error {
	s.writeMu.Lock()
	s.mu.Lock()
	s.current = &name
	s.mu.Unlock()
	err := s.store.Set(ctx, domain.StorageKeyUser, name)
	s.writeMu.Unlock()

	s.log.Info("identity set", "user", name)
	s.publish()
	if err != nil {
		return fmt.Errorf("login: persist identity: %w", err)
	}
	return nil
}

// Logout clears the active identity, says goodbye and schedules the
// navigation to the landing page. Without an identity it does nothing.
func (s *IdentityStore) Logout(ctx context.Context) error {
	s.writeMu.Lock()
	s.mu.Lock()
	prev := s.current
	s.current = nil
	s.mu.Unlock()
	if prev == nil {
		s.writeMu.Unlock()
		return nil
	}
	err := s.store.Remove(ctx, domain.StorageKeyUser)
	s.writeMu.Unlock()

	if strings.TrimSpace(*prev) == "" {
		s.notifier.Notify(s.msgs.text("auth.goodbye_generic", nil), entities.SeveritySuccess)
	} else {
		s.notifier.Notify(s.msgs.text("auth.goodbye", map[string]any{"Name": *prev}), entities.SeveritySuccess)
	}
	s.log.Info("identity cleared", "user", *prev)
	s.publish()

	target := s.opts.LogoutTarget
	s.scheduler.AfterFunc(s.opts.LogoutDelay, func() { s.navigator.Navigate(target) })

	if err != nil {
		return fmt.Errorf("logout: remove identity: %w", err)
	}
	return nil
}

// Require reports whether an identity is active. Without one, it tells the
// user to log in before performing action.
func (s *IdentityStore) Require(action string) bool {
	if _, ok := s.Current(); ok {
		return true
	}
	s.notifier.Notify(s.msgs.text("auth.login_required", map[string]any{"Action": action}), entities.SeverityError)
	return false
}

func (s *IdentityStore) publish() {
	s.mu.RLock()
	listeners := slices.Clone(s.listeners)
	s.mu.RUnlock()
	name, ok := s.Current()
	for _, l := range listeners {
		l(name, ok)
	}
}
