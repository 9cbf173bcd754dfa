// Package bootstrap wires configuration, logging, and the API client into a
// smoke-check run against the configured backend.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"healthcare-assistant-client/config"
	"healthcare-assistant-client/internal/client"
	"healthcare-assistant-client/internal/session"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for a smoke-check run.
type App struct {
	Config  *config.Config
	Client  *client.Client
	Session session.Store
	Log     *logrus.Logger
}

// New creates an App with all dependencies initialized.
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.Log)
	log.WithField("base_url", cfg.API.BaseURL).Info("Configuration loaded")

	return &App{
		Config:  cfg,
		Client:  client.New(cfg.API, log),
		Session: session.NewFileStore(cfg.Session.File),
		Log:     log,
	}, nil
}

func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// Run checks the backend's health, root info, and doctor directory. It
// returns an error when the backend is unreachable; application-level
// failures inside envelopes are logged but not fatal.
func (app *App) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), app.Config.API.Timeout)
	defer cancel()

	health, err := app.Client.System.Health(ctx)
	if err != nil {
		app.Log.Errorf("Health check failed: %v", err)
		return err
	}
	app.Log.WithFields(logrus.Fields{
		"status":   health.Status,
		"database": health.Database,
	}).Info("Backend is reachable")

	info, err := app.Client.System.Info(ctx)
	if err != nil {
		app.Log.Errorf("Info request failed: %v", err)
		return err
	}
	app.Log.WithField("version", info.Version).Info("Backend identified")

	doctors, err := app.Client.Doctor.GetAll(ctx)
	if err != nil {
		app.Log.Errorf("Doctor listing failed: %v", err)
		return err
	}
	if data, err := doctors.Result(); err != nil {
		app.Log.Warnf("Doctor listing returned failure: %v", err)
	} else if data != nil {
		app.Log.WithField("count", len(data.Doctors)).Info("Doctor directory loaded")
	}

	app.Log.Info("Smoke check complete")
	return nil
}
