package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"

	"petverse/internal/domain"
	pkgdiscord "petverse/pkg/discord"
)

// HandleDirectMessage relays a DM to the user's open assistant.
func (h *Handler) HandleDirectMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID != "" {
		return
	}
	up, ok := h.existingPage(m.Author.ID)
	if !ok || up.page.Assistant.Session() == nil {
		hint := h.translator.T(domain.DefaultLocale.String(), "chat.closed", nil)
		if ok {
			hint = up.text(h.translator, "chat.closed", nil)
		}
		_, _ = s.ChannelMessageSend(m.ChannelID, hint+" (/petverse chat)")
		return
	}

	err := up.page.Assistant.Submit(context.Background(), m.Content)
	if err != nil && !errors.Is(err, domain.ErrReplyPending) {
		h.log.Error("discord: chat submit failed", "error", err)
	}

	// Notifications raised outside an interaction go straight to the DM.
	notes, links := up.surface.Drain()
	if embed := pkgdiscord.BuildNotificationEmbed(notes); embed != nil {
		_, _ = s.ChannelMessageSendEmbed(m.ChannelID, embed)
	}
	if len(links) > 0 {
		_, _ = s.ChannelMessageSend(m.ChannelID, strings.TrimSpace(formatLinks(links)))
	}
}
