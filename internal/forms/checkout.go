package forms

import "strings"

// Checkout is the customer detail form submitted with an order.
type Checkout struct {
	Name         string `form:"name" validate:"required,max=100"`
	Email        string `form:"email" validate:"required,email,max=255"`
	Phone        string `form:"phone" validate:"min=10,max=15"`
	Address      string `form:"address" validate:"required,max=500"`
	Instructions string `form:"instructions" validate:"max=1000"`
}

// Validate checks trimmed values; Instructions is checked as entered. It
// returns FieldErrors or nil.
func (f Checkout) Validate() error {
	trimmed := f
	trimmed.Name = strings.TrimSpace(f.Name)
	trimmed.Email = strings.TrimSpace(f.Email)
	trimmed.Phone = strings.TrimSpace(f.Phone)
	trimmed.Address = strings.TrimSpace(f.Address)

	return check(trimmed)
}
