package bootstrap

import (
	"petverse/internal/application"
	"petverse/internal/config"
)

// PageConfig maps the loaded configuration onto the page settings.
func PageConfig(cfg *config.Config) application.PageConfig {
	return application.PageConfig{
		ChatIconPolicy:       cfg.ChatIconVisibility,
		LoginTarget:          cfg.LoginTarget,
		LogoutTarget:         cfg.LogoutTarget,
		LogoutDelay:          cfg.LogoutDelay,
		NotificationDuration: cfg.NotificationTTL,
		ChatTimeout:          cfg.ChatTimeout,
	}
}
