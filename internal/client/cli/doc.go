// Package cli provides the interactive GoBarber terminal client.
//
// It wires configuration, local storage, the API client and the session
// manager, then runs a REPL that presents three screens:
//
//   - SignIn:    sign in with e-mail and password, or go to SignUp
//   - SignUp:    create an account, then return to SignIn
//   - Dashboard: greet the user, list providers, show profile, sign out
//
// The root screen is picked once the stored session has been restored:
// Dashboard when a user is signed in, SignIn otherwise.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
