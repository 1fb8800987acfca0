package i18n

import (
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"

	"petverse/internal/domain"
)

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestTranslator_T(t *testing.T) {
	tr := NewTranslator("en", discard())

	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]any
		want   string
	}{
		{"english", "en", "chat.no_reply", nil, "⚠ No reply"},
		{"kannada", "kn", "chat.no_reply", nil, "⚠ ಉತ್ತರವಿಲ್ಲ"},
		{"template data", "en", "auth.welcome", map[string]any{"Name": "Asha"}, "Welcome, Asha 👋"},
		{"partial locale falls back to english", "mr", "chat.no_reply", nil, "⚠ No reply"},
		{"empty locale uses default", "", "chat.server_error", nil, "❌ Server error"},
		{"unknown key returns the key", "en", "no.such.key", nil, "no.such.key"},
		{"empty key", "en", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tr.T(tt.locale, tt.key, tt.data))
		})
	}
}

// Every message of the default file must render in every locale, either
// translated or in English.
func TestTranslator_EveryLocaleRendersEveryMessage(t *testing.T) {
	raw, err := localeFS.ReadFile("active.en.toml")
	require.NoError(t, err)
	english := map[string]string{}
	require.NoError(t, toml.Unmarshal(raw, &english))
	require.Contains(t, english, "chat.greeting")

	tr := NewTranslator("en", discard())
	data := map[string]any{
		"Name":     "Asha",
		"Action":   "chat",
		"Codes":    domain.CodeList(),
		"Options":  "EN – English",
		"Language": "Kannada",
	}
	for _, l := range domain.SupportedLocales {
		for key := range english {
			got := tr.T(l.String(), key, data)
			require.NotEqual(t, key, got, "%s/%s", l, key)
			require.NotContains(t, got, "<no value>", "%s/%s", l, key)
		}
	}
}

func TestTranslator_MarathiFallsBackPerMessage(t *testing.T) {
	tr := NewTranslator("en", discard())

	// translated in the partial file
	require.Equal(t, "❌ सर्व्हर त्रुटी", tr.T("mr", "chat.server_error", nil))
	// absent from it
	require.Equal(t, "❗ Please choose a valid language: EN / HI / MR / KN",
		tr.T("mr", "chat.language_invalid", map[string]any{"Codes": domain.CodeList()}))
	require.Contains(t, tr.T("mr", "chat.greeting", map[string]any{"Options": "MR – मराठी"}), "MR – मराठी")
}

func TestLoadDictionary_Embedded(t *testing.T) {
	req := require.New(t)
	dict, err := LoadDictionary(discard())
	req.NoError(err)

	for _, l := range domain.SupportedLocales {
		req.Contains(dict, l)
	}
	v, ok := dict.Lookup(domain.LocaleEnglish, "title.home")
	req.True(ok)
	req.Equal("PetVerse – Adopt, Care, Connect", v)

	_, ok = dict.Lookup(domain.LocaleMarathi, "hero.title")
	req.False(ok)
	_, ok = dict.Lookup(domain.LocaleMarathi, "nav.home")
	req.True(ok)
}

func TestLoadDictionary_MissingAndBrokenFiles(t *testing.T) {
	t.Run("missing file gives empty entries", func(t *testing.T) {
		fsys := fstest.MapFS{
			"page.en.toml": {Data: []byte(`"nav.home" = "Home"`)},
		}
		dict, err := loadDictionary(fsys, discard())
		require.NoError(t, err)
		require.Equal(t, "Home", dict[domain.LocaleEnglish]["nav.home"])
		require.Empty(t, dict[domain.LocaleKannada])
	})

	t.Run("broken file fails", func(t *testing.T) {
		fsys := fstest.MapFS{
			"page.hi.toml": {Data: []byte(`"nav.home" = `)},
		}
		_, err := loadDictionary(fsys, discard())
		require.ErrorContains(t, err, "page.hi.toml")
	})
}
