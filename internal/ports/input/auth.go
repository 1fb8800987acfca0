package input

import "context"

type AuthUIUseCase interface {
	Render()
	ClickLoginLink()
	ClickLogout(ctx context.Context) error
}
