package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"petverse/internal/domain"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StorageBadger   = "badger"
	StoragePostgres = "postgres"
)

type Config struct {
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"badger"`
	BadgerPath    string `env:"BADGER_PATH" envDefault:".petverse"`
	DatabaseURL   string `env:"DATABASE_URL"`
	StorageScope  string `env:"STORAGE_SCOPE" envDefault:"default"`

	ChatEndpoint string        `env:"CHAT_ENDPOINT" envDefault:"http://127.0.0.1:5000/api/chat"`
	ChatTimeout  time.Duration `env:"CHAT_TIMEOUT" envDefault:"15s"`

	ChatIconVisibility domain.ChatIconPolicy `env:"CHAT_ICON_VISIBILITY" envDefault:"always"`
	LoginTarget        string                `env:"LOGIN_TARGET" envDefault:"/login"`
	LogoutTarget       string                `env:"LOGOUT_TARGET" envDefault:"/"`
	LogoutDelay        time.Duration         `env:"LOGOUT_DELAY" envDefault:"1500ms"`
	NotificationTTL    time.Duration         `env:"NOTIFICATION_DURATION" envDefault:"3s"`
	PageTemplate       string                `env:"PAGE_TEMPLATE"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DiscordToken   string `env:"DISCORD_TOKEN"`
	DiscordGuildID string `env:"DISCORD_GUILD_ID"`
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireDiscord checks the settings only the Discord front-end needs.
func (c *Config) RequireDiscord() error {
	if strings.TrimSpace(c.DiscordToken) == "" {
		return fmt.Errorf("config: DISCORD_TOKEN est requis et ne peut pas être vide")
	}
	for _, r := range c.DiscordGuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DISCORD_GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
		}
	}
	return nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StorageBadger:
		if strings.TrimSpace(c.BadgerPath) == "" {
			return fmt.Errorf("config: BADGER_PATH est requis avec STORAGE_DRIVER=badger")
		}
	case StoragePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
			c.DatabaseURL = "postgres://localhost:5432/petverse?sslmode=disable"
		}
		if err := checkURL("DATABASE_URL", c.DatabaseURL); err != nil {
			return err
		}
	default:
		return fmt.Errorf("config: STORAGE_DRIVER inconnu %q (memory, badger, postgres)", c.StorageDriver)
	}

	if strings.TrimSpace(c.StorageScope) == "" {
		return fmt.Errorf("config: STORAGE_SCOPE ne peut pas être vide")
	}

	if err := checkURL("CHAT_ENDPOINT", c.ChatEndpoint); err != nil {
		return err
	}
	if c.ChatTimeout <= 0 {
		return fmt.Errorf("config: CHAT_TIMEOUT doit être positif")
	}

	switch c.ChatIconVisibility {
	case domain.ChatIconAlways, domain.ChatIconRequiresIdentity:
	default:
		return fmt.Errorf("config: CHAT_ICON_VISIBILITY invalide %q (always, requires_identity)", c.ChatIconVisibility)
	}

	if c.LogoutDelay < 0 {
		return fmt.Errorf("config: LOGOUT_DELAY ne peut pas être négatif")
	}
	if c.NotificationTTL <= 0 {
		return fmt.Errorf("config: NOTIFICATION_DURATION doit être positif")
	}

	return nil
}

func checkURL(name, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s invalide (%q): %w", name, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: %s invalide (%q): scheme ou host manquant", name, raw)
	}
	return nil
}
