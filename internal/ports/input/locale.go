package input

import (
	"context"

	"petverse/internal/domain"
)

type LocaleUseCase interface {
	Initialize(ctx context.Context) error
	SetLocale(ctx context.Context, code string, announce bool) error
	Current() domain.Locale
}
