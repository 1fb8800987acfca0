package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"petverse/internal/application"
	"petverse/internal/config"
	"petverse/internal/domain"
	"petverse/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	log     *slog.Logger
}

// NewBot creates a Bot and wires ports: output adapters -> application (pages) -> handler.
func NewBot(
	cfg *config.Config,
	stores StoreFactory,
	transport output.ChatTransport,
	translator output.T,
	dictionary domain.Dictionary,
	pageConfig application.PageConfig,
	log *slog.Logger,
) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("création de la session Discord: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

	handler := NewHandler(s, stores, transport, translator, dictionary, pageConfig, log)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
		log:     log,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handler.HandleDirectMessage)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == commandName {
			b.handler.HandleCommand(s, i)
		}
	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, i)
	}
}

// Start runs the bot until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range Commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.DiscordGuildID, cmd); err != nil {
			b.log.Warn("⚠️ registering command failed", "command", cmd.Name, "error", err)
		}
	}

	go b.handler.RunScheduledTasks(ctx)

	b.log.Info("🤖 Bot online, press CTRL+C to quit")
	<-ctx.Done()
	return nil
}
