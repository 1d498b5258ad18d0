package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/streetbite/streetbite/internal/client/api"
	"github.com/streetbite/streetbite/internal/client/config"
	"github.com/streetbite/streetbite/internal/client/models"
	"github.com/streetbite/streetbite/internal/client/session"
	"github.com/streetbite/streetbite/internal/client/storage"
	"github.com/streetbite/streetbite/internal/client/theme"
	"github.com/streetbite/streetbite/internal/logging"
)

// App wires the stores, the API client and the REPL together. It also
// implements session.Navigator: the active command branch is this
// application's notion of "which screen group is showing".
type App struct {
	config  *config.Config
	log     logging.Logger
	api     api.Client
	session *session.Store
	themes  *theme.Store
	gate    *session.Gate
	kv      *storage.SQLiteKV
	reader  *bufio.Reader
	branch  session.Branch
	liked   models.LikedSet
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	kv, err := storage.OpenSQLite(ctx, cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}

	sess := session.NewStore(kv, log)
	themes := theme.NewStore(kv, nil, log)
	apiClient := api.NewHTTPClient(cfg.ServerEndpointAddr, cfg.RequestTimeout, sess.Token, log)

	a := &App{
		config:  cfg,
		log:     log,
		api:     apiClient,
		session: sess,
		themes:  themes,
		kv:      kv,
		reader:  bufio.NewReader(os.Stdin),
		branch:  session.BranchLogin,
		liked:   models.NewLikedSet(),
	}
	a.gate = session.NewGate(sess, a, log)
	return a, nil
}

// Branch implements session.Navigator.
func (a *App) Branch() session.Branch {
	return a.branch
}

// Navigate implements session.Navigator.
func (a *App) Navigate(b session.Branch) {
	if a.branch == b {
		return
	}
	a.branch = b
	if b == session.BranchMain {
		fmt.Println("Signed in - switching to the main menu")
	} else {
		fmt.Println("Please log in or register")
	}
}

// Run restores persisted state and enters the REPL. The session restore
// happens before any command is accepted; the gate picks the starting
// branch from its outcome.
func (a *App) Run(ctx context.Context) {
	defer a.kv.Close()

	a.session.Restore(ctx)
	a.themes.Load(ctx)
	a.gate.Evaluate(ctx)

	fmt.Println("Welcome to streetbite (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Name
	}
	if scheme := a.themes.ColorScheme(); scheme != "" {
		if s != "" {
			s += " "
		}
		s += string(scheme)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
