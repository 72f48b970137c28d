package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/hidrodema/obra-forms/app"
	"github.com/hidrodema/obra-forms/config"
	"github.com/hidrodema/obra-forms/database"
	"github.com/hidrodema/obra-forms/draft"
	"github.com/hidrodema/obra-forms/forms"
	"github.com/hidrodema/obra-forms/log"
	"github.com/hidrodema/obra-forms/mailer"
	"github.com/hidrodema/obra-forms/notify"
	"github.com/hidrodema/obra-forms/routes"
	"github.com/hidrodema/obra-forms/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	drafts, err := draft.NewFiles(cfg.DataDir)
	if err != nil {
		log.Fatal("main.drafts:", err)
	}

	app := app.App{
		Store:    store.New(db),
		Drafts:   drafts,
		Registry: forms.DefaultRegistry(),
		Notifier: notify.New(cfg.Notify, mailer.New(cfg.SMTP)),
		Config:   cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
