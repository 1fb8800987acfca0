package discord

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"petverse/internal/domain/entities"
	"petverse/internal/ports/output"
	pkgdiscord "petverse/pkg/discord"
)

var (
	_ output.ToastSurface  = (*Surface)(nil)
	_ output.HeaderSurface = (*Surface)(nil)
	_ output.ChatSurface   = (*Surface)(nil)
	_ output.Navigator     = (*Surface)(nil)
)

// Sender is the part of discordgo.Session the surface needs.
type Sender interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Surface is the UI of one Discord user. Notifications and navigations are
// queued until the current interaction answers; assistant messages go to the
// user's DM channel.
type Surface struct {
	sender Sender
	userID string
	log    *slog.Logger

	mu          sync.Mutex
	dmChannelID string
	header      entities.HeaderView
	notes       []entities.Notification
	links       []string
}

func NewSurface(sender Sender, userID string, log *slog.Logger) *Surface {
	return &Surface{sender: sender, userID: userID, log: log}
}

func (s *Surface) ShowToast(n entities.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, n)
}

// HideToast is a no-op: ephemeral replies are dismissed by the user.
func (s *Surface) HideToast() {}

func (s *Surface) RenderHeader(view entities.HeaderView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.header = view
}

func (s *Surface) Header() entities.HeaderView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.header
}

// ShowPanel is a no-op: the DM channel is the panel.
func (s *Surface) ShowPanel() {}

// ClearMessages is a no-op: Discord history is not ours to delete.
func (s *Surface) ClearMessages() {}

// AppendMessage posts assistant messages to the DM channel. The user's own
// messages are already visible there.
func (s *Surface) AppendMessage(m entities.Message) {
	if !m.IsAssistant() {
		return
	}
	channelID, err := s.dmChannel()
	if err != nil {
		s.log.Error("discord: open DM channel failed", "user", s.userID, "error", err)
		return
	}
	if _, err := s.sender.ChannelMessageSendEmbed(channelID, pkgdiscord.BuildAssistantEmbed(m)); err != nil {
		s.log.Error("discord: send assistant message failed", "user", s.userID, "error", err)
	}
}

func (s *Surface) Navigate(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = append(s.links, target)
}

// Drain returns and clears the queued notifications and navigation links.
func (s *Surface) Drain() ([]entities.Notification, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes, links := s.notes, s.links
	s.notes, s.links = nil, nil
	return notes, links
}

func (s *Surface) dmChannel() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dmChannelID != "" {
		return s.dmChannelID, nil
	}
	ch, err := s.sender.UserChannelCreate(s.userID)
	if err != nil {
		return "", err
	}
	s.dmChannelID = ch.ID
	return ch.ID, nil
}

func formatLinks(links []string) string {
	if len(links) == 0 {
		return ""
	}
	return "🔗 " + strings.Join(links, " · ")
}
