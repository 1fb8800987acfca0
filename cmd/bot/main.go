package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"petverse/internal/adapters/discord"
	"petverse/internal/bootstrap"
	"petverse/internal/config"
	"petverse/internal/domain"
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
	if err := cfg.RequireDiscord(); err != nil {
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

	dictionary, err := i18n.LoadDictionary(log)
	if err != nil {
		return err
	}

	bot, err := discord.NewBot(
		cfg,
		store.Scope,
		transport.NewHTTPChatTransport(cfg.ChatEndpoint, cfg.ChatTimeout),
		i18n.NewTranslator(domain.DefaultLocale.String(), log),
		dictionary,
		bootstrap.PageConfig(cfg),
		log,
	)
	if err != nil {
		return err
	}
	return bot.Start(ctx)
}
