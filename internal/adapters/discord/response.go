package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "petverse/pkg/discord"
)

// Member > User
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// respondQueued answers with whatever the user's surface queued while the
// interaction ran.
func respondQueued(s *discordgo.Session, i *discordgo.Interaction, surface *Surface, extra ...string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: queuedResponse(surface, extra...),
	})
}

// queuedResponse drains surface into an ephemeral reply: the notification
// still on screen as an embed, navigations as links, plus extra lines.
func queuedResponse(surface *Surface, extra ...string) *discordgo.InteractionResponseData {
	notes, links := surface.Drain()
	lines := append([]string{}, extra...)
	if l := formatLinks(links); l != "" {
		lines = append(lines, l)
	}
	var embeds []*discordgo.MessageEmbed
	if e := pkgdiscord.BuildNotificationEmbed(notes); e != nil {
		embeds = append(embeds, e)
	}
	content := strings.Join(lines, "\n")
	if content == "" && len(embeds) == 0 {
		content = "✅"
	}
	return &discordgo.InteractionResponseData{
		Content: content,
		Embeds:  embeds,
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}
