package web

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"petverse/internal/domain/entities"
	"petverse/internal/ports/output"
)

// Element ids the page must provide.
const (
	IDLoginLink    = "loginLink"
	IDLogoutItem   = "logoutItem"
	IDLogoutLink   = "logoutLink"
	IDToast        = "toast"
	IDChatIcon     = "chatbotFloatingIcon"
	IDChatPanel    = "chatbotPanel"
	IDChatMessages = "chatMessagesAI"
	IDChatInput    = "chatInputAI"
	IDChatSend     = "sendChatBtnAI"
)

// RequiredIDs lists every id Mount checks. The toast is created on demand.
var RequiredIDs = []string{
	IDLoginLink, IDLogoutItem, IDLogoutLink,
	IDChatIcon, IDChatPanel, IDChatMessages, IDChatInput, IDChatSend,
}

//go:embed templates/index.html
var defaultPage []byte

// DefaultPage parses the bundled page template.
func DefaultPage() (*Document, error) {
	return Parse(bytes.NewReader(defaultPage))
}

var (
	_ output.ToastSurface  = (*Surface)(nil)
	_ output.HeaderSurface = (*Surface)(nil)
	_ output.ChatSurface   = (*Surface)(nil)
	_ output.Navigator     = (*Surface)(nil)
)

// Surface applies UI directives to a Document.
type Surface struct {
	doc *Document

	mu       sync.Mutex
	location string
}

// Mount binds a surface to doc, failing if doc lacks a required element.
func Mount(doc *Document) (*Surface, error) {
	if doc == nil {
		return nil, fmt.Errorf("mount page: nil document")
	}
	if err := doc.Require(RequiredIDs...); err != nil {
		return nil, fmt.Errorf("mount page: %w", err)
	}
	return &Surface{doc: doc}, nil
}

func (s *Surface) Document() *Document { return s.doc }

func (s *Surface) RenderHeader(view entities.HeaderView) {
	s.doc.update(IDLoginLink, func(n *html.Node) {
		setText(n, view.LinkLabel)
		if view.LinkAction == entities.LinkNavigate {
			setAttr(n, "href", view.LinkTarget)
		} else {
			setAttr(n, "href", "javascript:void(0)")
		}
		setAttr(n, "data-action", string(view.LinkAction))
	})
	s.doc.update(IDLogoutItem, func(n *html.Node) {
		setAttr(n, "style", display(view.LogoutVisible, "block"))
	})
	s.doc.update(IDChatIcon, func(n *html.Node) {
		setAttr(n, "style", display(view.ChatIconVisible, "flex"))
	})
}

func (s *Surface) ShowToast(note entities.Notification) {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	toast := s.doc.byID(IDToast)
	if toast == nil {
		toast = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
		setAttr(toast, "id", IDToast)
		body := s.doc.find(func(n *html.Node) bool { return n.DataAtom == atom.Body })
		if body == nil {
			body = s.doc.root
		}
		body.AppendChild(toast)
	}
	setText(toast, note.Message)
	setAttr(toast, "class", "toast show")
	setAttr(toast, "data-severity", string(note.Severity))
}

func (s *Surface) HideToast() {
	s.doc.update(IDToast, func(n *html.Node) {
		setAttr(n, "class", "toast")
	})
}

func (s *Surface) ShowPanel() {
	s.doc.update(IDChatPanel, func(n *html.Node) {
		setAttr(n, "style", "display:flex")
	})
}

func (s *Surface) ClearMessages() {
	s.doc.update(IDChatMessages, removeChildren)
}

func (s *Surface) AppendMessage(m entities.Message) {
	class := "chatBubble userBubble"
	if m.IsAssistant() {
		class = "chatBubble botBubble"
	}
	s.doc.update(IDChatMessages, func(n *html.Node) {
		bubble := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
		setAttr(bubble, "class", class)
		bubble.AppendChild(&html.Node{Type: html.TextNode, Data: m.Text})
		n.AppendChild(bubble)
	})
}

// Navigate records the new location; the hosting front-end decides what a
// navigation means.
func (s *Surface) Navigate(target string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = target
}

func (s *Surface) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// Visible reports whether the element's inline style hides it.
func (s *Surface) Visible(id string) bool {
	style, _ := s.doc.Attr(id, "style")
	return style != "display:none"
}

// ToastText returns the visible toast message, or "".
func (s *Surface) ToastText() string {
	class, _ := s.doc.Attr(IDToast, "class")
	if class != "toast show" {
		return ""
	}
	return s.doc.Text(IDToast)
}

// Bubbles returns the text of every chat bubble, oldest first.
func (s *Surface) Bubbles() []string {
	s.doc.mu.Lock()
	defer s.doc.mu.Unlock()
	panel := s.doc.byID(IDChatMessages)
	if panel == nil {
		return nil
	}
	var out []string
	for c := panel.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, textContent(c))
		}
	}
	return out
}

func display(visible bool, mode string) string {
	if visible {
		return "display:" + mode
	}
	return "display:none"
}
