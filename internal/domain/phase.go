package domain

// Phase is the state of a chat session.
type Phase int

const (
	PhaseAwaitingLanguage Phase = iota
	PhaseActive
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingLanguage:
		return "AWAITING_LANGUAGE"
	case PhaseActive:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}

// ChatIconPolicy decides when the assistant entry icon is shown.
type ChatIconPolicy string

const (
	ChatIconAlways           ChatIconPolicy = "always"
	ChatIconRequiresIdentity ChatIconPolicy = "requires_identity"
)

// Persisted storage keys.
const (
	StorageKeyUser     = "petpal_user"
	StorageKeyLanguage = "preferred_language"
)
