package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "petverse/pkg/discord"
)

// HandleModalSubmit route les différents modals en fonction de leur CustomID.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	switch data.CustomID {
	case loginModalID:
		ctx := context.Background()
		up, err := h.pageFor(ctx, interactionUserID(i))
		if err != nil {
			h.log.Error("discord: page unavailable", "error", err)
			respondEphemeral(s, i.Interaction, "❌")
			return
		}
		h.login(ctx, up, pkgdiscord.ExtractTextInput(data, loginNameInput))
		respondQueued(s, i.Interaction, up.surface)
	default:
		// Modal inconnu : on ignore silencieusement pour rester robuste.
	}
}
