package forms

import "strings"

type Contact struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email,max=255"`
	Phone   string `form:"phone" validate:"min=10,max=15"`
	Message string `form:"message" validate:"required,max=1000"`
}

func (f Contact) Validate() error {
	return check(Contact{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Message: strings.TrimSpace(f.Message),
	})
}
