package discord

import (
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"petverse/internal/domain/entities"
)

// fakeSender records what would be posted to Discord.
type fakeSender struct {
	mu         sync.Mutex
	channelErr error
	opened     int
	sent       map[string][]*discordgo.MessageEmbed
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: map[string][]*discordgo.MessageEmbed{}}
}

func (f *fakeSender) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	f.opened++
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent[channelID] = append(f.sent[channelID], embed)
	return &discordgo.Message{ChannelID: channelID}, nil
}

func (f *fakeSender) Sent(channelID string) []*discordgo.MessageEmbed {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[channelID]
}

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestSurface_AssistantMessagesGoToDM(t *testing.T) {
	req := require.New(t)
	sender := newFakeSender()
	s := NewSurface(sender, "42", discard())

	s.AppendMessage(entities.Message{Author: entities.AuthorUser, Text: "hello"})
	s.AppendMessage(entities.Message{Author: entities.AuthorAssistant, Text: "Woof!"})
	s.AppendMessage(entities.Message{Author: entities.AuthorAssistant, Text: "Anything else?"})

	sent := sender.Sent("dm-42")
	req.Len(sent, 2)
	req.Equal("Woof!", sent[0].Description)
	req.Equal(1, sender.opened)
}

func TestSurface_DMFailureIsLogged(t *testing.T) {
	sender := newFakeSender()
	sender.channelErr = errors.New("cannot DM")
	s := NewSurface(sender, "42", discard())

	s.AppendMessage(entities.Message{Author: entities.AuthorAssistant, Text: "Woof!"})

	require.Empty(t, sender.Sent("dm-42"))
}

func TestSurface_DrainQueuedDirectives(t *testing.T) {
	req := require.New(t)
	s := NewSurface(newFakeSender(), "42", discard())

	s.ShowToast(entities.Notification{Message: "one", Severity: entities.SeverityInfo})
	s.HideToast()
	s.ShowToast(entities.Notification{Message: "two", Severity: entities.SeveritySuccess})
	s.Navigate("/")
	s.RenderHeader(entities.HeaderView{LinkLabel: "Welcome, Asha 👋"})

	notes, links := s.Drain()
	req.Len(notes, 2)
	req.Equal([]string{"/"}, links)
	req.Equal("Welcome, Asha 👋", s.Header().LinkLabel)

	notes, links = s.Drain()
	req.Empty(notes)
	req.Empty(links)
}

func TestFormatLinks(t *testing.T) {
	require.Empty(t, formatLinks(nil))
	require.Equal(t, "🔗 /login · /", formatLinks([]string{"/login", "/"}))
}
