package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"petverse/internal/adapters/forms"
	"petverse/internal/domain"
	"petverse/internal/domain/entities"
	pkgdiscord "petverse/pkg/discord"
)

const (
	commandName    = "petverse"
	loginModalID   = "petverse_login_modal"
	loginNameInput = "name"
)

// Commands returns the slash commands the bot registers.
func Commands() []*discordgo.ApplicationCommand {
	languageChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.SupportedLocales))
	for _, l := range domain.SupportedLocales {
		languageChoices = append(languageChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (%s)", l.NativeName(), l.EnglishName()),
			Value: l.String(),
		})
	}
	return []*discordgo.ApplicationCommand{{
		Name:        commandName,
		Description: "PetVerse assistant",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "login",
				Description: "Log in with a display name",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        loginNameInput,
					Description: "Your display name (leave empty to open the form)",
				}},
			},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "logout", Description: "Log out"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "me", Description: "Show who you are logged in as"},
			{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "chat", Description: "Open the AI assistant in your DMs"},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "lang",
				Description: "Change your language",
				Options: []*discordgo.ApplicationCommandOption{{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "code",
					Description: "Language",
					Required:    true,
					Choices:     languageChoices,
				}},
			},
		},
	}}
}

func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]

	up, err := h.pageFor(ctx, interactionUserID(i))
	if err != nil {
		h.log.Error("discord: page unavailable", "error", err)
		respondEphemeral(s, i.Interaction, "❌")
		return
	}

	var extra []string
	switch sub.Name {
	case "login":
		name := optionString(sub.Options, loginNameInput)
		if name == "" {
			h.openLoginModal(s, i)
			return
		}
		h.login(ctx, up, name)
	case "logout":
		if err := up.page.Auth.ClickLogout(ctx); err != nil {
			h.log.Error("discord: logout failed", "error", err)
		}
	case "me":
		up.page.Auth.ClickLoginLink()
		extra = append(extra, up.surface.Header().LinkLabel)
	case "chat":
		err := up.page.Assistant.Open(ctx)
		if err != nil && !errors.Is(err, domain.ErrIdentityRequired) {
			h.log.Error("discord: open chat failed", "error", err)
		}
	case "lang":
		code := optionString(sub.Options, "code")
		err := up.page.Locale.SetLocale(ctx, code, true)
		if errors.Is(err, domain.ErrUnsupportedLocale) {
			extra = append(extra, pkgdiscord.DomainErrorMessage(h.translator, up.page.Locale.Current().String(), err))
		} else if err != nil {
			h.log.Error("discord: set language failed", "error", err)
		}
	}
	respondQueued(s, i.Interaction, up.surface, extra...)
}

func (h *Handler) openLoginModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: loginModalID,
			Title:    "PetVerse – Login",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{CustomID: loginNameInput, Label: "Name", Style: discordgo.TextInputShort, Required: true, MinLength: 2, MaxLength: 32, Placeholder: "Asha"},
				}},
			},
		},
	})
}

// login validates the form the way the login page does, then sets the identity.
func (h *Handler) login(ctx context.Context, up *userPage, raw string) {
	form, err := forms.ParseLogin(raw)
	if err != nil {
		up.page.Notifier.Notify(up.text(h.translator, "auth.invalid_name", nil), entities.SeverityError)
		return
	}
	if err := up.page.Identity.Login(ctx, form.Name); err != nil {
		h.log.Error("discord: login failed", "error", err)
		return
	}
	up.page.Notifier.Notify(up.text(h.translator, "auth.logged_in", map[string]any{"Name": form.Name}), entities.SeveritySuccess)
}

func optionString(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, o := range opts {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue()
		}
	}
	return ""
}
