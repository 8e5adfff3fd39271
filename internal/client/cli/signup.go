package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gobarber/internal/client/forms"
	"github.com/dmitrijs2005/gobarber/internal/client/models"
	"github.com/dmitrijs2005/gobarber/internal/common"
)

func (a *App) renderSignUp() {
	fmt.Fprintln(a.out, titleStyle.Render("Create your account"))
	fmt.Fprintln(a.out, "Commands: register, back, exit")
}

// SignUp collects name, e-mail and password and registers the account
// directly with the API. On success it alerts and goes back to sign in.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "E-mail", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	data := models.SignUpData{Name: name, Email: email, Password: string(password)}

	if err := forms.ValidateSignUp(data); err != nil {
		a.showFieldErrors(err, forms.FieldName, forms.FieldEmail, forms.FieldPassword)
		return err
	}

	if err := a.api.CreateUser(ctx, data); err != nil {
		a.log.Warn(ctx, "sign up failed", "error", err)
		a.alert("Registration error", "An error occurred while signing up, try again.")
		return err
	}

	a.log.Info(ctx, "account created")
	fmt.Fprintln(a.out, successStyle.Render("Registration complete"))
	fmt.Fprintln(a.out, "Welcome")
	a.goBack(ctx)
	return nil
}

// Back returns to the previous screen.
func (a *App) Back(ctx context.Context) error {
	a.goBack(ctx)
	return nil
}
