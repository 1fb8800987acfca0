package forms

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginForm is what a user types on the login page.
type LoginForm struct {
	Name string `validate:"required,min=2,max=32,excludesall=<>\"'"`
}

// ParseLogin trims raw and validates it as a display name.
func ParseLogin(raw string) (LoginForm, error) {
	form := LoginForm{Name: strings.TrimSpace(raw)}
	if err := validate.Struct(form); err != nil {
		return LoginForm{}, err
	}
	return form, nil
}
