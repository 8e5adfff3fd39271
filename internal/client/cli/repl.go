package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	route() Route

	SignIn(ctx context.Context) error
	GoToSignUp(ctx context.Context) error
	ForgotPassword(ctx context.Context) error

	SignUp(ctx context.Context) error
	Back(ctx context.Context) error

	Providers(ctx context.Context) error
	Profile(ctx context.Context) error
	SignOut(ctx context.Context) error
}

var helpByRoute = map[Route]string{
	RouteSignIn:    "Available commands: signin, signup, forgot, exit",
	RouteSignUp:    "Available commands: register, back, exit",
	RouteDashboard: "Available commands: providers, profile, signout, exit",
}

// runREPL reads one command per line and dispatches it to the screen on top
// of the navigation stack. Commands that do not belong to the current screen
// are reported as unknown. The loop exits on EOF, on "exit"/"quit", or when
// ctx is done.
//
// Prompt & Commands
//
//	SignIn:
//	  - signin | login     - enter credentials and sign in
//	  - signup             - open the registration screen
//	  - forgot             - password recovery (not available yet)
//
//	SignUp:
//	  - register           - enter name, e-mail and password
//	  - back               - return to sign in
//
//	Dashboard:
//	  - providers | list   - reload the providers list
//	  - profile            - show the signed-in user
//	  - signout | logout   - sign out
//
//	Everywhere: help, exit | quit
//
// Errors returned by handlers are ignored here; handlers report to the user
// themselves and the same screen stays open for another try.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(out, "gobarber (%s)> ", a.route())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			fmt.Fprintln(out, helpByRoute[a.route()])
			continue
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		}

		if !dispatch(ctx, a, cmd) {
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}

// dispatch runs cmd on the current screen and reports whether it exists there.
func dispatch(ctx context.Context, a execIface, cmd string) bool {
	switch a.route() {
	case RouteSignIn:
		switch cmd {
		case "signin", "login":
			_ = a.SignIn(ctx)
		case "signup":
			_ = a.GoToSignUp(ctx)
		case "forgot":
			_ = a.ForgotPassword(ctx)
		default:
			return false
		}

	case RouteSignUp:
		switch cmd {
		case "register":
			_ = a.SignUp(ctx)
		case "back":
			_ = a.Back(ctx)
		default:
			return false
		}

	case RouteDashboard:
		switch cmd {
		case "providers", "list":
			_ = a.Providers(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "signout", "logout":
			_ = a.SignOut(ctx)
		default:
			return false
		}

	default:
		return false
	}
	return true
}
