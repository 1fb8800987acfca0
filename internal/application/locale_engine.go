package application

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"petverse/internal/domain"
	"petverse/internal/domain/entities"
	"petverse/internal/ports/input"
	"petverse/internal/ports/output"
)

var _ input.LocaleUseCase = (*LocaleEngine)(nil)

// LocaleEngine owns the current locale and re-renders the document's marked
// nodes from the dictionary. Missing entries leave nodes untouched.
type LocaleEngine struct {
	store      output.KeyValueStore
	document   output.Document
	dictionary domain.Dictionary
	notifier   *Notifier
	t          output.T
	log        *slog.Logger

	mu          sync.Mutex
	current     domain.Locale
	initialized bool
	listeners   []func(domain.Locale)
}

func NewLocaleEngine(
	store output.KeyValueStore,
	document output.Document,
	dictionary domain.Dictionary,
	notifier *Notifier,
	t output.T,
	log *slog.Logger,
) *LocaleEngine {
	return &LocaleEngine{
		store:      store,
		document:   document,
		dictionary: dictionary,
		notifier:   notifier,
		t:          t,
		log:        log,
		current:    domain.DefaultLocale,
	}
}

func (e *LocaleEngine) Current() domain.Locale {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Subscribe registers l for locale changes. Listeners run synchronously after
// the document is re-rendered, before SetLocale returns.
func (e *LocaleEngine) Subscribe(l func(domain.Locale)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()
}

// Initialize applies the persisted preference without announcing it.
func (e *LocaleEngine) Initialize(ctx context.Context) error {
	e.mu.Lock()
	if e.initialized {
		e.mu.Unlock()
		return domain.ErrAlreadyInitialized
	}
	e.initialized = true
	e.mu.Unlock()

	preferred := domain.DefaultLocale
	saved, ok, err := e.store.Get(ctx, domain.StorageKeyLanguage)
	if err != nil {
		e.log.Warn("reading language preference failed, using default", "error", err)
	} else if ok {
		if l, perr := domain.ParseLocale(saved); perr == nil {
			preferred = l
		} else {
			e.log.Warn("ignoring unsupported language preference", "value", saved)
		}
	}

	e.document.SelectLocale(preferred.String())
	return e.SetLocale(ctx, preferred.String(), false)
}

// SetLocale persists code, re-renders the document and, when announce is
// set, raises one notification naming the language.
func (e *LocaleEngine) SetLocale(ctx context.Context, code string, announce bool) error {
	locale, err := domain.ParseLocale(code)
	if err != nil {
		return err
	}

	persistErr := e.store.Set(ctx, domain.StorageKeyLanguage, locale.String())

	e.mu.Lock()
	e.current = locale
	e.render(locale)
	listeners := slices.Clone(e.listeners)
	e.mu.Unlock()

	for _, l := range listeners {
		l(locale)
	}

	if announce {
		e.notifier.Notify(e.t.T(locale.String(), "locale.changed", map[string]any{
			"Language": locale.EnglishName(),
		}), entities.SeverityInfo)
	}

	if persistErr != nil {
		return fmt.Errorf("set locale %s: persist preference: %w", locale, persistErr)
	}
	return nil
}

func (e *LocaleEngine) render(locale domain.Locale) {
	missing := 0
	for _, node := range e.document.TranslatableNodes() {
		value, ok := e.dictionary.Lookup(locale, node.Key())
		if !ok {
			missing++
			continue
		}
		switch node.Kind() {
		case output.NodeInput:
			node.SetPlaceholder(value)
		case output.NodeTitle:
			node.SetText(value)
			e.document.SetTitle(value)
		default:
			node.SetText(value)
		}
	}
	if missing > 0 {
		e.log.Debug("translations missing", "lang", locale.String(), "count", missing)
	}
}
