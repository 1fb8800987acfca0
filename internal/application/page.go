package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"petverse/internal/domain"
	"petverse/internal/ports/output"
)

// PageDeps are the collaborators a page is built on. Every field except
// Logger is required.
type PageDeps struct {
	Store      output.KeyValueStore
	Toast      output.ToastSurface
	Header     output.HeaderSurface
	Chat       output.ChatSurface
	Document   output.Document
	Navigator  output.Navigator
	Scheduler  output.Scheduler
	Transport  output.ChatTransport
	Translator output.T
	Dictionary domain.Dictionary
	Logger     *slog.Logger
}

type PageConfig struct {
	ChatIconPolicy       domain.ChatIconPolicy
	LoginTarget          string
	LogoutTarget         string
	LogoutDelay          time.Duration
	NotificationDuration time.Duration
	ChatTimeout          time.Duration
}

// Page wires the components of one page view (or one remote user).
type Page struct {
	Notifier  *Notifier
	Locale    *LocaleEngine
	Identity  *IdentityStore
	Auth      *AuthUIBinder
	Assistant *Assistant
}

// NewPage validates deps and builds the components. It fails instead of
// producing a page with dead handlers.
func NewPage(deps PageDeps, cfg PageConfig) (*Page, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	notifier := NewNotifier(deps.Toast, deps.Scheduler, cfg.NotificationDuration)
	locale := NewLocaleEngine(deps.Store, deps.Document, deps.Dictionary, notifier, deps.Translator, log)
	msgs := messages{t: deps.Translator, locale: locale}

	identity := NewIdentityStore(deps.Store, notifier, deps.Navigator, deps.Scheduler, msgs, IdentityOptions{
		LogoutTarget: cfg.LogoutTarget,
		LogoutDelay:  cfg.LogoutDelay,
	}, log)
	auth := NewAuthUIBinder(identity, notifier, deps.Header, deps.Navigator, msgs, cfg.ChatIconPolicy, cfg.LoginTarget)
	identity.Subscribe(func(string, bool) { auth.Render() })
	locale.Subscribe(func(domain.Locale) { auth.Render() })

	assistant := NewAssistant(identity, chatDeps{
		transport: deps.Transport,
		surface:   deps.Chat,
		notifier:  notifier,
		msgs:      msgs,
		timeout:   cfg.ChatTimeout,
		log:       log,
	})

	return &Page{
		Notifier:  notifier,
		Locale:    locale,
		Identity:  identity,
		Auth:      auth,
		Assistant: assistant,
	}, nil
}

// Load runs the page-load sequence: identity, locale, header.
func (p *Page) Load(ctx context.Context) error {
	if err := p.Identity.Load(ctx); err != nil {
		return err
	}
	if err := p.Locale.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize locale: %w", err)
	}
	p.Auth.Render()
	return nil
}

func (d PageDeps) validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"Store", d.Store != nil},
		{"Toast", d.Toast != nil},
		{"Header", d.Header != nil},
		{"Chat", d.Chat != nil},
		{"Document", d.Document != nil},
		{"Navigator", d.Navigator != nil},
		{"Scheduler", d.Scheduler != nil},
		{"Transport", d.Transport != nil},
		{"Translator", d.Translator != nil},
		{"Dictionary", d.Dictionary != nil},
	}
	var errs []error
	for _, c := range checks {
		if !c.ok {
			errs = append(errs, fmt.Errorf("%w: %s", domain.ErrNilCollaborator, c.name))
		}
	}
	return errors.Join(errs...)
}
