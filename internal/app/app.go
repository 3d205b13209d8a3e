package app

import (
	"context"
	"net/http"
	"time"

	"github.com/BrayanU12/BudgetMate/internal/config"
	"github.com/BrayanU12/BudgetMate/internal/database"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, database, router, scheduler, and server
// lifecycle.
type Application struct {
	cfg       config.Application
	router    *mux.Router
	srv       *http.Server
	scheduler *cron.Cron
	deps      *Dependencies
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	// DB + migrations
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	// db will be closed when server shuts down; defer not possible here, leave to process exit.
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (services, handlers...)
	deps := BuildDependencies(db, cfg)

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	srv := &http.Server{
		Handler:      r,
		Addr:         ":8181",
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{
		cfg:       cfg,
		router:    r,
		srv:       srv,
		scheduler: cron.New(),
		deps:      deps,
	}, nil
}

// Run starts the weekly score snapshot job and the HTTP server, and blocks.
func (a *Application) Run() error {
	if _, err := a.scheduler.AddFunc("@weekly", func() {
		if err := a.deps.ScoreService.SnapshotAll(context.Background()); err != nil {
			log.Errorf("weekly score snapshot failed: %v", err)
		}
	}); err != nil {
		return err
	}
	a.scheduler.Start()

	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
