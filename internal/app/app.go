package app

import (
	"io"
	"log/slog"
)

// App encapsulates the generator's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the generator. Logs go to logW through an
// isolated logger configured from cfg.
func NewApp(logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		logger: logger,
		config: cfg,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
