package i18n

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pelletier/go-toml/v2"

	"petverse/internal/domain"
)

// LoadDictionary reads the embedded page.<code>.toml files. A locale without
// a file gets an empty entry, so every lookup for it fails open.
func LoadDictionary(log *slog.Logger) (domain.Dictionary, error) {
	return loadDictionary(localeFS, log)
}

func loadDictionary(fsys fs.FS, log *slog.Logger) (domain.Dictionary, error) {
	dict := make(domain.Dictionary, len(domain.SupportedLocales))
	for _, l := range domain.SupportedLocales {
		file := fmt.Sprintf("page.%s.toml", l)
		raw, err := fs.ReadFile(fsys, file)
		if err != nil {
			log.Warn("i18n: no page dictionary", "lang", l.String(), "error", err)
			dict[l] = map[string]string{}
			continue
		}
		entries := map[string]string{}
		if err := toml.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", file, err)
		}
		dict[l] = entries
	}
	return dict, nil
}
