package discord

import (
	"petverse/internal/domain"
	"petverse/internal/ports/output"
)

// TranslationKey maps a domain error code to the key of its user-facing
// message.
func TranslationKey(code string) string {
	switch code {
	case "identity_required":
		return "auth.login_required"
	case "reply_pending":
		return "chat.wait"
	case "transport":
		return "chat.server_error"
	case "unsupported_locale":
		return "locale.invalid"
	default:
		return "error.generic"
	}
}

// DomainErrorMessage resolves err to a user-facing message. Only the chat
// requires an identity, so identity errors name that action.
func DomainErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	return t.T(locale, TranslationKey(domain.Code(err)), map[string]any{
		"Codes":  domain.CodeList(),
		"Action": t.T(locale, "action.chat", nil),
	})
}
