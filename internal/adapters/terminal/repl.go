package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"petverse/internal/adapters/forms"
	"petverse/internal/adapters/web"
	"petverse/internal/application"
	"petverse/internal/domain"
	"petverse/internal/domain/entities"
	"petverse/internal/ports/output"
)

const help = `Commands:
  /login <name>   log in (the login page form)
  /logout         click the logout link
  /me             click the header link
  /chat           click the assistant icon
  /lang <code>    switch language (en, hi, mr, kn)
  /page           print the translated page
  /html           print the page markup
  /quit           leave
Anything else is sent to the open assistant.`

// REPL drives a Page from line-based input, one event per line.
type REPL struct {
	page    *application.Page
	surface *web.Surface
	t       output.T
	out     io.Writer
	log     *slog.Logger
}

func NewREPL(page *application.Page, surface *web.Surface, t output.T, out io.Writer, log *slog.Logger) *REPL {
	return &REPL{page: page, surface: surface, t: t, out: out, log: log}
}

// Run reads commands from in until EOF, /quit or ctx is done. Pending chat
// replies are awaited before returning.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(r.out, help)
	defer r.page.Assistant.Wait()

	lines := make(chan string)
	errc := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			if quit := r.Handle(ctx, line); quit {
				return nil
			}
		}
	}
}

// Handle processes one input line and reports whether the user asked to quit.
func (r *REPL) Handle(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "/") {
		if err := r.page.Assistant.Submit(ctx, line); err != nil && !errors.Is(err, domain.ErrReplyPending) {
			r.log.Error("chat submit failed", "error", err)
		}
		return false
	}

	cmd, arg, _ := strings.Cut(strings.TrimPrefix(trimmed, "/"), " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(cmd) {
	case "login":
		r.login(ctx, arg)
	case "logout":
		if err := r.page.Auth.ClickLogout(ctx); err != nil {
			r.log.Error("logout failed", "error", err)
		}
	case "me":
		r.page.Auth.ClickLoginLink()
	case "chat":
		if !r.surface.Visible(web.IDChatIcon) {
			fmt.Fprintln(r.out, r.text("chat.icon_hidden"))
			return false
		}
		if err := r.page.Assistant.Open(ctx); err != nil && !errors.Is(err, domain.ErrIdentityRequired) {
			r.log.Error("open chat failed", "error", err)
		}
	case "lang":
		r.setLanguage(ctx, arg)
	case "page":
		r.printPage()
	case "html":
		if err := r.surface.Document().Render(r.out); err != nil {
			r.log.Error("render page failed", "error", err)
		}
		fmt.Fprintln(r.out)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintln(r.out, help)
	}
	return false
}

func (r *REPL) login(ctx context.Context, raw string) {
	form, err := forms.ParseLogin(raw)
	if err != nil {
		r.page.Notifier.Notify(r.text("auth.invalid_name"), entities.SeverityError)
		return
	}
	if err := r.page.Identity.Login(ctx, form.Name); err != nil {
		r.log.Error("login failed", "error", err)
		return
	}
	msg := r.t.T(r.page.Locale.Current().String(), "auth.logged_in", map[string]any{"Name": form.Name})
	r.page.Notifier.Notify(msg, entities.SeveritySuccess)
}

func (r *REPL) setLanguage(ctx context.Context, code string) {
	err := r.page.Locale.SetLocale(ctx, code, true)
	switch {
	case errors.Is(err, domain.ErrUnsupportedLocale):
		r.page.Notifier.Notify(r.text("locale.invalid"), entities.SeverityError)
	case err != nil:
		r.log.Error("set language failed", "error", err)
	}
}

func (r *REPL) printPage() {
	doc := r.surface.Document()
	fmt.Fprintf(r.out, "# %s\n", doc.Title())
	for _, key := range []string{"nav.home", "nav.pets", "nav.volunteer", "nav.donate", "nav.community", "nav.lostfound", "hero.title", "hero.subtitle", "chat.placeholder", "footer.copy"} {
		fmt.Fprintf(r.out, "  %-16s %s\n", key, doc.KeyText(key))
	}
}

// text renders a system message in the page locale.
func (r *REPL) text(key string) string {
	return r.t.T(r.page.Locale.Current().String(), key, map[string]any{"Codes": domain.CodeList()})
}
