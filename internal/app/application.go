// Package app wires configuration, logging, the session store, and the
// external-service clients into one injectable application object. Nothing
// here reaches for globals; the TUI and the CLI commands receive the same
// Application.
package app

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/raghavdwd/folio/internal/activity"
	"github.com/raghavdwd/folio/internal/assistant"
	"github.com/raghavdwd/folio/internal/session"
	"github.com/raghavdwd/folio/internal/shorturl"
)

type Application struct {
	Config     Config
	Log        *logrus.Logger
	Session    *session.Store
	Links      *shorturl.Client
	Activity   *activity.Client
	Assistant  assistant.Completer
	Transcript *assistant.Transcript
}

// NewApplication builds the object graph from config. Without an assistant
// API key the chat tab runs against the offline mock completer instead of
// failing at startup.
func NewApplication(cfg Config) *Application {
	log := newLogger(cfg.LogLevel)

	var completer assistant.Completer
	if cfg.AssistantKey == "" {
		completer = assistant.MockCompleter{}
	} else {
		completer = assistant.NewClient(cfg.AssistantKey, cfg.AssistantModel, "")
	}

	return &Application{
		Config:     cfg,
		Log:        log,
		Session:    session.NewStore(cfg.TokenPath),
		Links:      shorturl.NewClient(cfg.APIBase, log),
		Activity:   activity.NewClient(cfg.ContribBase, cfg.GitHubUser, log),
		Assistant:  completer,
		Transcript: assistant.NewTranscript(completer),
	}
}

// newLogger returns a JSON logger on stderr; stdout belongs to the TUI.
func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	// The alternate screen and log lines fight over the terminal; keep logs
	// quiet unless a file sink is requested.
	if path := os.Getenv("FOLIO_LOG_FILE"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			log.SetOutput(f)
		}
	} else if lvl < logrus.DebugLevel {
		log.SetOutput(io.Discard)
	}
	return log
}
