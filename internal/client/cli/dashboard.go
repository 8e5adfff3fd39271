package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gobarber/internal/client/models"
)

func (a *App) renderDashboard(ctx context.Context) {
	user, _ := a.session.User()
	fmt.Fprintf(a.out, "%s\n%s\n", titleStyle.Render("Welcome,"), userNameStyle.Render(user.Name))
	fmt.Fprintln(a.out, "Commands: providers, profile, signout, exit")
	_ = a.Providers(ctx)
}

// Providers fetches and prints the provider list. A failed fetch is shown as
// an alert and leaves the list empty.
func (a *App) Providers(ctx context.Context) error {
	providers, err := a.api.ListProviders(ctx)
	if err != nil {
		a.log.Warn(ctx, "providers not loaded", "error", err)
		a.alert("Providers unavailable", "Could not load the providers list, try again.")
		return err
	}

	a.log.Debug(ctx, "providers loaded", "count", len(providers))
	a.printProviders(providers)
	return nil
}

func (a *App) printProviders(providers []models.Provider) {
	if len(providers) == 0 {
		fmt.Fprintln(a.out, metaStyle.Render("No providers yet."))
		return
	}

	fmt.Fprintln(a.out, titleStyle.Render("Providers"))
	for _, p := range providers {
		fmt.Fprintf(a.out, "  %s\n", p.Name)
		fmt.Fprintf(a.out, "    %s\n", metaStyle.Render("Monday to Friday"))
		fmt.Fprintf(a.out, "    %s\n", metaStyle.Render("8am to 6pm"))
	}
}

// Profile shows the signed-in user.
func (a *App) Profile(ctx context.Context) error {
	user, ok := a.session.User()
	if !ok {
		return nil
	}
	fmt.Fprintln(a.out, titleStyle.Render("Profile"))
	fmt.Fprintf(a.out, "  Name:   %s\n", user.Name)
	fmt.Fprintf(a.out, "  E-mail: %s\n", user.Email)
	if user.AvatarURL != "" {
		fmt.Fprintf(a.out, "  Avatar: %s\n", user.AvatarURL)
	}
	return nil
}

// SignOut ends the session and returns to the sign in screen.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		a.log.Error(ctx, "sign out failed", "error", err)
		a.alert("Sign out error", "Could not sign out, try again.")
		return err
	}
	a.resetTo(ctx, RouteSignIn)
	return nil
}
