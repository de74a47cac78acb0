package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/vibelook/vibelook/internal/client/api"
	"github.com/vibelook/vibelook/internal/client/config"
	"github.com/vibelook/vibelook/internal/client/services"
	"github.com/vibelook/vibelook/internal/client/session"
	"github.com/vibelook/vibelook/internal/logging"
)

// App wires the services behind the interactive shell. One App instance
// serves one terminal session.
type App struct {
	config  *config.Config
	session *session.Session

	auth        services.AuthService
	wardrobe    services.WardrobeService
	suggestions services.SuggestionService
	looks       services.LookService
	profile     services.ProfileService
	brands      services.BrandService

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the application from the resolved configuration: opens the
// durable session, constructs the shared API gateway, and binds every
// service to it.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	sess := session.Open(cfg.SessionFile)
	client := api.NewHTTPClient(cfg.BaseURL, cfg.ExtraHeaders, sess)

	return &App{
		config:      cfg,
		session:     sess,
		auth:        services.NewAuthService(client, sess),
		wardrobe:    services.NewWardrobeService(client, sess, log),
		suggestions: services.NewSuggestionService(client, sess, log),
		looks:       services.NewLookService(client, sess, log),
		profile:     services.NewProfileService(client, sess, log),
		brands:      services.NewBrandService(),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}
}

// Run starts the shell and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(a.reader)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "signed in"
	}
	return "guest"
}
