package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gobarber/internal/client/client"
	"github.com/dmitrijs2005/gobarber/internal/client/config"
	"github.com/dmitrijs2005/gobarber/internal/client/repositories/storage"
	"github.com/dmitrijs2005/gobarber/internal/client/services"
	"github.com/dmitrijs2005/gobarber/internal/logging"
)

type App struct {
	config  *config.Config
	session services.SessionService
	api     client.Client
	db      *sql.DB
	log     logging.Logger
	nav     *Navigator
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp builds the process-wide session and API client. The session is the
// token source of the API client, so requests always carry the current token.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	var session *services.SessionManager
	api, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout, client.TokenSourceFunc(func() string {
		return session.Token()
	}), log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	session = services.NewSessionManager(api, storage.NewSQLiteRepository(db), log)

	return &App{
		config:  c,
		session: session,
		api:     api,
		db:      db,
		log:     log,
		nav:     NewNavigator(RouteSignIn),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores the stored session, opens the root screen and blocks in the
// REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, titleStyle.Render("GoBarber"))
	a.start(ctx)
	runREPL(ctx, a, a.reader, a.out)
}

// start waits for the session to load and picks the root screen.
func (a *App) start(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "stored session not restored", "error", err)
	}

	select {
	case <-a.session.Ready():
	case <-ctx.Done():
		return
	}

	a.resetTo(ctx, a.rootRoute())
}

func (a *App) rootRoute() Route {
	if a.session.State() == services.StateAuthenticated {
		return RouteDashboard
	}
	return RouteSignIn
}

func (a *App) route() Route {
	return a.nav.Current()
}

func (a *App) navigate(ctx context.Context, route Route) {
	a.nav.Navigate(route)
	a.enter(ctx)
}

func (a *App) resetTo(ctx context.Context, route Route) {
	a.nav.Reset(route)
	a.enter(ctx)
}

func (a *App) goBack(ctx context.Context) {
	if a.nav.GoBack() {
		a.enter(ctx)
	}
}

// enter renders the screen on top of the stack.
func (a *App) enter(ctx context.Context) {
	a.log.Debug(ctx, "screen", "route", a.route())
	switch a.route() {
	case RouteSignIn:
		a.renderSignIn()
	case RouteSignUp:
		a.renderSignUp()
	case RouteDashboard:
		a.renderDashboard(ctx)
	}
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
