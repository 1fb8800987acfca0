package application

import (
	"petverse/internal/domain"
	"petverse/internal/ports/output"
)

// LocaleSource reports the locale user-facing messages are rendered in.
type LocaleSource interface {
	Current() domain.Locale
}

type messages struct {
	t      output.T
	locale LocaleSource
}

func (m messages) text(key string, data map[string]any) string {
	return m.t.T(m.locale.Current().String(), key, data)
}

func (m messages) in(l domain.Locale, key string, data map[string]any) string {
	return m.t.T(l.String(), key, data)
}
