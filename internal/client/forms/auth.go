package forms

import "github.com/dmitrijs2005/gobarber/internal/client/models"

const MinPasswordLength = 6

// Field names, shared with the screens that render errors next to inputs.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

var SignInSchema = Schema{
	{Name: FieldEmail, Rules: []Rule{Required("Email is required"), Email("Enter a valid email")}},
	{Name: FieldPassword, Rules: []Rule{MinLength(MinPasswordLength, "Password is required")}},
}

var SignUpSchema = Schema{
	{Name: FieldName, Rules: []Rule{Required("Name is required")}},
	{Name: FieldEmail, Rules: []Rule{Required("Email is required"), Email("Enter a valid email")}},
	{Name: FieldPassword, Rules: []Rule{MinLength(MinPasswordLength, "At least 6 characters")}},
}

func ValidateCredentials(c models.Credentials) error {
	return SignInSchema.Validate(map[string]string{
		FieldEmail:    c.Email,
		FieldPassword: c.Password,
	})
}

func ValidateSignUp(d models.SignUpData) error {
	return SignUpSchema.Validate(map[string]string{
		FieldName:     d.Name,
		FieldEmail:    d.Email,
		FieldPassword: d.Password,
	})
}
