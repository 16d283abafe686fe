package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/healthlens/healthlens-go/pkg/apiclient"
	"github.com/healthlens/healthlens-go/pkg/config"
	"github.com/healthlens/healthlens-go/pkg/credentials"
	"github.com/healthlens/healthlens-go/pkg/environment"
	"github.com/healthlens/healthlens-go/pkg/logger"
	"github.com/healthlens/healthlens-go/pkg/notifier"
	"github.com/healthlens/healthlens-go/pkg/router"
	"github.com/healthlens/healthlens-go/pkg/session"
)

// Config is the client configuration, loaded from the environment and an
// optional .env file.
type Config struct {
	APIBaseURL     string        `env:"HEALTHLENS_API_URL" envDefault:"http://localhost:8000"`
	Timeout        time.Duration `env:"HEALTHLENS_TIMEOUT" envDefault:"30s"`
	CredentialFile string        `env:"HEALTHLENS_CREDENTIAL_FILE"`
	RoutesFile     string        `env:"HEALTHLENS_ROUTES_FILE"`
	Environment    string        `env:"HEALTHLENS_ENV" envDefault:"development"`
}

// App bundles the wired client components shared by every command.
type App struct {
	Config   Config
	Logger   *slog.Logger
	Creds    credentials.Store
	Client   *apiclient.Client
	Sessions *session.Store
	Notifier *notifier.Center
	Router   *router.Router
}

// NewApp loads configuration and wires the client stack: credential file
// store, API client, session store, notification center and router.
func NewApp() (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	env := environment.Parse(cfg.Environment)
	log := logger.New(logger.WithEnvironment(env, "healthlens"))

	credentialFile := cfg.CredentialFile
	if credentialFile == "" {
		var err error
		credentialFile, err = credentials.DefaultCredentialFile("healthlens")
		if err != nil {
			return nil, err
		}
	}
	creds := credentials.NewFileStore(credentialFile)

	client, err := apiclient.New(cfg.APIBaseURL,
		apiclient.WithTokenSource(credentials.TokenSource(creds)),
		apiclient.WithTimeout(cfg.Timeout),
		apiclient.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	sessions := session.New(client, creds, session.WithLogger(log))
	center := notifier.NewCenter(notifier.WithLogger(log))

	routerOpts := []router.Option{router.WithNotifier(center)}
	if cfg.RoutesFile != "" {
		f, err := os.Open(cfg.RoutesFile)
		if err != nil {
			return nil, fmt.Errorf("open routes file: %w", err)
		}
		table, err := router.LoadTable(f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		routerOpts = append(routerOpts, router.WithTable(table))
	}

	return &App{
		Config:   cfg,
		Logger:   log,
		Creds:    creds,
		Client:   client,
		Sessions: sessions,
		Notifier: center,
		Router:   router.New(sessions, routerOpts...),
	}, nil
}

// Close releases app resources.
func (a *App) Close() {
	a.Notifier.Close()
}
