package application

import (
	"context"

	"petverse/internal/domain"
	"petverse/internal/domain/entities"
	"petverse/internal/ports/input"
	"petverse/internal/ports/output"
)

var _ input.AuthUIUseCase = (*AuthUIBinder)(nil)

// AuthUIBinder projects the identity onto the header. It keeps no state of
// its own, so Render can be called as often as needed.
type AuthUIBinder struct {
	identity    *IdentityStore
	notifier    *Notifier
	header      output.HeaderSurface
	navigator   output.Navigator
	msgs        messages
	policy      domain.ChatIconPolicy
	loginTarget string
}

func NewAuthUIBinder(
	identity *IdentityStore,
	notifier *Notifier,
	header output.HeaderSurface,
	navigator output.Navigator,
	msgs messages,
	policy domain.ChatIconPolicy,
	loginTarget string,
) *AuthUIBinder {
	return &AuthUIBinder{
		identity:    identity,
		notifier:    notifier,
		header:      header,
		navigator:   navigator,
		msgs:        msgs,
		policy:      policy,
		loginTarget: loginTarget,
	}
}

// View computes the header directives for the current identity.
func (b *AuthUIBinder) View() entities.HeaderView {
	name, ok := b.identity.Current()
	if ok {
		return entities.HeaderView{
			LinkLabel:       b.msgs.text("auth.welcome", map[string]any{"Name": name}),
			LinkAction:      entities.LinkAcknowledge,
			LogoutVisible:   true,
			ChatIconVisible: true,
		}
	}
	return entities.HeaderView{
		LinkLabel:       b.msgs.text("auth.login_label", nil),
		LinkTarget:      b.loginTarget,
		LinkAction:      entities.LinkNavigate,
		LogoutVisible:   false,
		ChatIconVisible: b.policy != domain.ChatIconRequiresIdentity,
	}
}

func (b *AuthUIBinder) Render() {
	b.header.RenderHeader(b.View())
}

// ClickLoginLink handles a click on the header link.
func (b *AuthUIBinder) ClickLoginLink() {
	if name, ok := b.identity.Current(); ok {
		b.notifier.Notify(b.msgs.text("auth.already_logged_in", map[string]any{"Name": name}), entities.SeverityInfo)
		return
	}
	b.navigator.Navigate(b.loginTarget)
}

// ClickLogout logs out and re-renders the header.
func (b *AuthUIBinder) ClickLogout(ctx context.Context) error {
	err := b.identity.Logout(ctx)
	b.Render()
	return err
}
