package input

import "context"

type IdentityUseCase interface {
	Current() (string, bool)
	Login(ctx context.Context, name string) error
	Logout(ctx context.Context) error
	Require(action string) bool
}
