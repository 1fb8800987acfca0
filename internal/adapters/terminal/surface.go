package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"

	"petverse/internal/adapters/web"
	"petverse/internal/domain/entities"
	"petverse/internal/ports/output"
)

var (
	_ output.ToastSurface  = (*Surface)(nil)
	_ output.HeaderSurface = (*Surface)(nil)
	_ output.ChatSurface   = (*Surface)(nil)
	_ output.Navigator     = (*Surface)(nil)
)

// Surface mirrors every directive into the page document and echoes it to
// the terminal.
type Surface struct {
	page *web.Surface

	mu  sync.Mutex
	out io.Writer
}

func NewSurface(page *web.Surface, out io.Writer) *Surface {
	return &Surface{page: page, out: out}
}

func (s *Surface) ShowToast(n entities.Notification) {
	s.page.ShowToast(n)
	s.println(severityStyle(n.Severity).Sprintf("🔔 %s", n.Message))
}

func (s *Surface) HideToast() {
	s.page.HideToast()
}

func (s *Surface) RenderHeader(view entities.HeaderView) {
	s.page.RenderHeader(view)
	line := fmt.Sprintf("[%s]", view.LinkLabel)
	if view.LogoutVisible {
		line += " [Logout]"
	}
	if view.ChatIconVisible {
		line += " [🐾]"
	}
	s.println(color.Gray.Sprint(line))
}

func (s *Surface) ShowPanel() {
	s.page.ShowPanel()
	s.println(color.Bold.Sprint("── PetVerse AI ──"))
}

func (s *Surface) ClearMessages() {
	s.page.ClearMessages()
}

func (s *Surface) AppendMessage(m entities.Message) {
	s.page.AppendMessage(m)
	if m.IsAssistant() {
		s.println(color.Magenta.Sprintf("🤖 %s", m.Text))
		return
	}
	s.println(color.Blue.Sprintf("🙂 %s", m.Text))
}

func (s *Surface) Navigate(target string) {
	s.page.Navigate(target)
	s.println(color.Yellow.Sprintf("→ %s", target))
}

func (s *Surface) println(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, line)
}

func severityStyle(sev entities.Severity) color.Color {
	switch sev {
	case entities.SeverityError:
		return color.Red
	case entities.SeveritySuccess:
		return color.Green
	default:
		return color.Cyan
	}
}
