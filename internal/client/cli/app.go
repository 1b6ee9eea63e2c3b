package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apetrenko/eventhub/internal/client/api"
	"github.com/apetrenko/eventhub/internal/client/config"
	"github.com/apetrenko/eventhub/internal/client/models"
	"github.com/apetrenko/eventhub/internal/client/repositories/state"
	"github.com/apetrenko/eventhub/internal/client/services"
	"github.com/apetrenko/eventhub/internal/client/session"
	"github.com/apetrenko/eventhub/internal/logging"

	_ "modernc.org/sqlite"
)

// EventService is the event-lookup surface the shell depends on.
type EventService interface {
	Search(ctx context.Context, filters models.SearchFilters) ([]models.EventResult, error)
	GetByID(ctx context.Context, id string) (models.EventResult, error)
}

// UserService is the auth/favorites surface the shell depends on.
type UserService interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Favorites(ctx context.Context, userID string) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, userID string, event models.FavoriteSnapshot) error
	RemoveFavorite(ctx context.Context, userID, eventID string) error
}

type favoriteStats struct {
	Total    int
	Upcoming int
	Past     int
}

// App owns the shell state. Exactly one of results/lastErr is populated
// after a search; the dashboard flag only switches the rendered view and
// never touches session or results.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store
	events  EventService
	users   UserService

	reader *bufio.Reader
	out    io.Writer

	results   []models.EventResult
	favorites []models.Favorite
	stats     favoriteStats
	dashboard bool
	lastErr   string
}

// NewApp wires the whole client together: state database, session store,
// API gateway with the unauthorized hook, and the domain services.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := state.Open(ctx, cfg.StateDBPath)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(state.NewSQLiteRepository(db), log)
	store.Restore(ctx)

	app := &App{
		config:  cfg,
		log:     log,
		session: store,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	gateway := api.New(cfg.APIBaseURL, store.Token,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
		api.WithOnUnauthorized(app.onUnauthorized),
	)

	app.events = services.NewEventService(gateway)
	app.users = services.NewUserService(gateway, store)

	return app, nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	if s := a.session.Current(); !s.Anonymous() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", s.User.Username)
	}
	fmt.Fprintln(a.out, "Event Hub shell (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// onUnauthorized is the gateway's 401 hook: the session is cleared and
// the user lands back in the anonymous main view, whatever command was
// running.
func (a *App) onUnauthorized() {
	ctx := context.Background()
	if err := a.session.Clear(ctx); err != nil {
		a.log.Warn(ctx, "session clear after 401 failed", "error", err)
	}
	a.dashboard = false
	a.favorites = nil
	a.stats = favoriteStats{}
	fmt.Fprintln(a.out, "Session expired. Please log in again.")
}

func (a *App) isLoggedIn() bool {
	return !a.session.Current().Anonymous()
}

func (a *App) inDashboard() bool {
	return a.dashboard
}

func (a *App) status() string {
	s := ""
	if cur := a.session.Current(); !cur.Anonymous() {
		s = cur.User.Username
	}
	if a.dashboard {
		if s != "" {
			s += " "
		}
		s += "dashboard"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// setResults and setError keep results and lastErr mutually exclusive.
func (a *App) setResults(results []models.EventResult) {
	a.results = results
	a.lastErr = ""
}

func (a *App) setError(msg string) {
	a.lastErr = msg
	a.results = nil
}
