package domain

import "errors"

// Domain errors.
var (
	ErrIdentityRequired   = errors.New("identity required")
	ErrReplyPending       = errors.New("a reply is still pending")
	ErrTransport          = errors.New("chat transport failure")
	ErrUnsupportedLocale  = errors.New("unsupported locale")
	ErrAlreadyInitialized = errors.New("locale engine already initialized")
	ErrMissingElement     = errors.New("required element missing")
	ErrNilCollaborator    = errors.New("required collaborator is nil")
)

// Code returns the stable code of a domain error, or "" for foreign errors.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIdentityRequired):
		return "identity_required"
	case errors.Is(err, ErrReplyPending):
		return "reply_pending"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrUnsupportedLocale):
		return "unsupported_locale"
	case errors.Is(err, ErrAlreadyInitialized):
		return "already_initialized"
	case errors.Is(err, ErrMissingElement):
		return "missing_element"
	case errors.Is(err, ErrNilCollaborator):
		return "nil_collaborator"
	default:
		return ""
	}
}
