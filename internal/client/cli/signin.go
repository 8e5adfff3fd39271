package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gobarber/internal/client/forms"
	"github.com/dmitrijs2005/gobarber/internal/client/models"
	"github.com/dmitrijs2005/gobarber/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) renderSignIn() {
	fmt.Fprintln(a.out, titleStyle.Render("Sign in"))
	fmt.Fprintln(a.out, "Commands: signin, signup, forgot, exit")
}

// SignIn collects credentials, validates them and signs in. Validation
// problems are shown per field and nothing is sent. API failures end in a
// generic alert. On success the Dashboard becomes the root screen.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "E-mail", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	credentials := models.Credentials{Email: email, Password: string(password)}

	if err := forms.ValidateCredentials(credentials); err != nil {
		a.showFieldErrors(err, forms.FieldEmail, forms.FieldPassword)
		return err
	}

	if err := a.session.SignIn(ctx, credentials); err != nil {
		a.log.Warn(ctx, "sign in failed", "error", err)
		a.alert("Authentication error", "An error occurred while signing in, check your credentials.")
		return err
	}

	a.resetTo(ctx, RouteDashboard)
	return nil
}

// ForgotPassword is a placeholder until password recovery exists on the API.
func (a *App) ForgotPassword(ctx context.Context) error {
	fmt.Fprintln(a.out, "Password recovery is not available yet.")
	return nil
}

// GoToSignUp opens the registration screen.
func (a *App) GoToSignUp(ctx context.Context) error {
	a.navigate(ctx, RouteSignUp)
	return nil
}
