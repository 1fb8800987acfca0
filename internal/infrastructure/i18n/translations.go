package i18n

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"petverse/internal/domain"
	"petverse/internal/ports/output"
)

//go:embed active.*.toml page.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.Translator port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer, used for
// system messages (notifications, assistant texts).
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             *slog.Logger
}

// NewTranslator builds a Translator backed by go-i18n using the given default
// locale (e.g. "en").
//
// It loads translations from the embedded active.*.toml files.
func NewTranslator(defaultLocale string, log *slog.Logger) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, l := range domain.SupportedLocales {
		file := fmt.Sprintf("active.%s.toml", l)
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Warn("i18n: failed to load message file", "file", file, "error", err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		log:             log,
	}
}

// T renders the message identified by key for the given locale.
// If the key is not found for locale, it falls back to the default locale,
// then finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	if locale != "" && locale != t.defaultLanguage.String() {
		msg, err := t.localize(locale, key, data)
		if err == nil {
			return msg
		}
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) {
			t.log.Warn("i18n: localize failed", "key", key, "locale", locale, "error", err)
			return key
		}
	}

	msg, err := t.localize(t.defaultLanguage.String(), key, data)
	if err != nil {
		t.log.Warn("i18n: localize failed", "key", key, "locale", t.defaultLanguage.String(), "error", err)
		return key
	}
	return msg
}

// localize resolves key against a single language, without the bundle
// matcher picking another one.
func (t *Translator) localize(lang, key string, data map[string]any) (string, error) {
	return i18n.NewLocalizer(t.bundle, lang).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}
