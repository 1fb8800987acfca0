package output

import (
	"time"

	"petverse/internal/domain/entities"
)

// ToastSurface renders the single transient banner.
type ToastSurface interface {
	ShowToast(n entities.Notification)
	HideToast()
}

// HeaderSurface applies the auth binder directives to the page header.
type HeaderSurface interface {
	RenderHeader(view entities.HeaderView)
}

// ChatSurface is the assistant panel.
type ChatSurface interface {
	ShowPanel()
	ClearMessages()
	AppendMessage(m entities.Message)
}

// NodeKind decides which property of a node receives a translation.
type NodeKind int

const (
	NodeText NodeKind = iota
	NodeInput
	NodeTitle
)

// Node is a document node marked with a translation key.
type Node interface {
	Key() string
	Kind() NodeKind
	SetText(s string)
	SetPlaceholder(s string)
}

// Document is the markup the locale engine re-renders.
type Document interface {
	TranslatableNodes() []Node
	SetTitle(s string)
	// SelectLocale reflects the current locale into the language selector,
	// if the document has one.
	SelectLocale(code string)
}

// Scheduler runs fire-once callbacks after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}
