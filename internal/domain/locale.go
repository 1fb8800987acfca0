package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale is one of the supported language codes.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleHindi   Locale = "hi"
	LocaleMarathi Locale = "mr"
	LocaleKannada Locale = "kn"

	DefaultLocale = LocaleEnglish
)

// SupportedLocales is the closed set of codes, in display order.
var SupportedLocales = []Locale{LocaleEnglish, LocaleHindi, LocaleMarathi, LocaleKannada}

// ParseLocale matches raw against the supported codes, ignoring case and
// surrounding whitespace.
func ParseLocale(raw string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(raw)))
	if !lo.Contains(SupportedLocales, l) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, raw)
	}
	return l, nil
}

func (l Locale) String() string { return string(l) }

// Tag returns the BCP 47 tag of the locale.
func (l Locale) Tag() language.Tag {
	return language.Make(string(l))
}

// EnglishName is the human readable name used in announcements ("Kannada").
func (l Locale) EnglishName() string {
	if name := display.English.Languages().Name(l.Tag()); name != "" {
		return name
	}
	return strings.ToUpper(string(l))
}

// NativeName is the name of the language written in itself ("ಕನ್ನಡ").
func (l Locale) NativeName() string {
	if name := display.Self.Name(l.Tag()); name != "" {
		return name
	}
	return l.EnglishName()
}

// CodeList renders the supported codes as "EN / HI / MR / KN".
func CodeList() string {
	return strings.Join(lo.Map(SupportedLocales, func(l Locale, _ int) string {
		return strings.ToUpper(string(l))
	}), " / ")
}
