package bootstrap

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petverse/internal/config"
	"petverse/internal/domain"
)

func TestOpenStorage(t *testing.T) {
	drivers := []string{config.StorageMemory, config.StorageBadger}
	for _, driver := range drivers {
		t.Run(driver, func(t *testing.T) {
			req := require.New(t)
			ctx := context.Background()
			cfg := &config.Config{StorageDriver: driver, BadgerPath: t.TempDir()}

			s, err := OpenStorage(ctx, cfg, slog.New(slog.DiscardHandler))
			req.NoError(err)
			defer s.Close()

			alice, bob := s.Scope("alice"), s.Scope("bob")
			req.NoError(alice.Set(ctx, domain.StorageKeyUser, "Alice"))
			_, ok, err := bob.Get(ctx, domain.StorageKeyUser)
			req.NoError(err)
			req.False(ok)
			v, ok, err := s.Scope("alice").Get(ctx, domain.StorageKeyUser)
			req.NoError(err)
			req.True(ok)
			req.Equal("Alice", v)
		})
	}
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, err := OpenStorage(context.Background(), &config.Config{StorageDriver: "redis"}, slog.New(slog.DiscardHandler))
	require.ErrorContains(t, err, "redis")
}

func TestPageConfig(t *testing.T) {
	cfg := &config.Config{
		ChatIconVisibility: domain.ChatIconRequiresIdentity,
		LoginTarget:        "/login",
		LogoutTarget:       "/bye",
		LogoutDelay:        time.Second,
		NotificationTTL:    2 * time.Second,
		ChatTimeout:        5 * time.Second,
	}

	pc := PageConfig(cfg)

	require.Equal(t, domain.ChatIconRequiresIdentity, pc.ChatIconPolicy)
	require.Equal(t, "/bye", pc.LogoutTarget)
	require.Equal(t, 2*time.Second, pc.NotificationDuration)
	require.Equal(t, 5*time.Second, pc.ChatTimeout)
}
