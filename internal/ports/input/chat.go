package input

import (
	"context"

	"petverse/internal/domain"
	"petverse/internal/domain/entities"
)

type ChatUseCase interface {
	Submit(ctx context.Context, raw string) error
	Phase() domain.Phase
	Language() (domain.Locale, bool)
	Transcript() []entities.Message
	Wait()
}

// AssistantUseCase owns the chat panel lifecycle: every Open starts a fresh
// conversation.
type AssistantUseCase interface {
	Open(ctx context.Context) error
	Submit(ctx context.Context, raw string) error
}
