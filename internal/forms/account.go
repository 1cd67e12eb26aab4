package forms

import "strings"

// Passwords are never trimmed.

type Login struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"min=6"`
}

func (f Login) Validate() error {
	return check(Login{
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
	})
}

type Register struct {
	Name     string `form:"name" validate:"required,max=100"`
	Email    string `form:"email" validate:"required,email,max=255"`
	Password string `form:"password" validate:"min=6"`
}

func (f Register) Validate() error {
	return check(Register{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
	})
}
