package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"petverse/internal/adapters/terminal"
	"petverse/internal/adapters/web"
	"petverse/internal/application"
	"petverse/internal/bootstrap"
	"petverse/internal/config"
	"petverse/internal/domain"
	"petverse/internal/infrastructure/clock"
	"petverse/internal/infrastructure/i18n"
	"petverse/internal/infrastructure/logging"
	"petverse/internal/infrastructure/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := loadDocument(cfg.PageTemplate)
	if err != nil {
		return err
	}
	pageSurface, err := web.Mount(doc)
	if err != nil {
		return err
	}
	screen := terminal.NewSurface(pageSurface, os.Stdout)

	translator := i18n.NewTranslator(domain.DefaultLocale.String(), log)
	dictionary, err := i18n.LoadDictionary(log)
	if err != nil {
		return err
	}

	page, err := application.NewPage(application.PageDeps{
		Store:      store.Scope(cfg.StorageScope),
		Toast:      screen,
		Header:     screen,
		Chat:       screen,
		Document:   doc,
		Navigator:  screen,
		Scheduler:  clock.Scheduler{},
		Transport:  transport.NewHTTPChatTransport(cfg.ChatEndpoint, cfg.ChatTimeout),
		Translator: translator,
		Dictionary: dictionary,
		Logger:     log,
	}, bootstrap.PageConfig(cfg))
	if err != nil {
		return fmt.Errorf("build page: %w", err)
	}
	if err := page.Load(ctx); err != nil {
		return fmt.Errorf("load page: %w", err)
	}

	log.Info("🐾 PetVerse ready", "storage", cfg.StorageDriver, "chat_endpoint", cfg.ChatEndpoint)
	return terminal.NewREPL(page, pageSurface, translator, os.Stdout, log).Run(ctx, os.Stdin)
}

func loadDocument(path string) (*web.Document, error) {
	if path == "" {
		return web.DefaultPage()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page template: %w", err)
	}
	defer f.Close()
	return web.Parse(f)
}
