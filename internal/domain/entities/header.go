package entities

// LinkAction tells the header link what a click does.
type LinkAction string

const (
	LinkNavigate    LinkAction = "navigate"
	LinkAcknowledge LinkAction = "acknowledge"
)

// HeaderView is the set of directives the auth binder issues to the header.
type HeaderView struct {
	LinkLabel       string
	LinkTarget      string // empty when LinkAction is LinkAcknowledge
	LinkAction      LinkAction
	LogoutVisible   bool
	ChatIconVisible bool
}
