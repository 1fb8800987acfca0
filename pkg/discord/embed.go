package discord

import (
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"petverse/internal/domain/entities"
)

const (
	embedColor        = 0x7C5CFF
	embedColorSuccess = 0x3BA55C
	embedColorError   = 0xFF6B6B
	embedTitle        = "🐾 PetVerse AI"
	maxEmbedText      = 4096
)

// SeverityColor mirrors the toast palette of the web page.
func SeverityColor(sev entities.Severity) int {
	switch sev {
	case entities.SeverityError:
		return embedColorError
	case entities.SeveritySuccess:
		return embedColorSuccess
	default:
		return embedColor
	}
}

// BuildAssistantEmbed renders one assistant message.
func BuildAssistantEmbed(m entities.Message) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       embedTitle,
		Description: truncate(m.Text, maxEmbedText),
		Color:       embedColor,
		Timestamp:   m.At.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// BuildNotificationEmbed renders the notification a toast would still show:
// a newer one replaces the older ones. It returns nil when notes is empty.
func BuildNotificationEmbed(notes []entities.Notification) *discordgo.MessageEmbed {
	if len(notes) == 0 {
		return nil
	}
	n := notes[len(notes)-1]
	return &discordgo.MessageEmbed{
		Description: truncate(n.Message, maxEmbedText),
		Color:       SeverityColor(n.Severity),
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit-len("…")]
	for !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return strings.TrimRight(cut, " ") + "…"
}
