package main

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/prixroxx/UniversalLanguageTranslator/internal/config"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/language"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/logger"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/session"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/translator"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/types"
)

// msgNoAPIKey is shown instead of attempting a request when no credential
// is configured.
const msgNoAPIKey = "⚠️ no API key configured — set " + config.EnvAPIKey + " to start translating"

// msgBusy is returned when a submission arrives while a request is in flight.
const msgBusy = "⏳ a translation is already in progress"

// App is the top-level pipeline handler. It owns one session and one
// engine, runs the build→translate→parse→format pipeline for each user
// input, and converts every pipeline error into a chat-visible message so
// nothing crashes the session.
type App struct {
	cfg     *types.Config
	engine  translator.Engine
	session *session.Session

	// inFlight refuses overlapping submissions on the same session.
	inFlight atomic.Bool
}

// NewApp wires an App from configuration. When no API key is available the
// engine is left nil and HandleInput reports the cannot-proceed state
// without touching the network.
func NewApp(ctx context.Context, cfg *types.Config) (*App, error) {
	app := &App{
		cfg:     cfg,
		session: session.New(),
	}

	if cfg.APIKey == "" {
		logger.Warn("no API key configured, translation disabled")
		return app, nil
	}

	switch cfg.Engine {
	case config.EngineEino:
		engine, err := translator.NewEinoEngine(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.engine = engine
	default:
		app.engine = translator.NewHTTPEngine(cfg)
	}

	logger.Info("app initialized",
		logger.String("sessionID", app.session.ID()),
		logger.String("engine", cfg.Engine))

	return app, nil
}

// Session returns the session owned by this App.
func (a *App) Session() *session.Session {
	return a.session
}

// HandleInput runs one full pipeline pass for a user submission and returns
// the assistant reply that was appended to the transcript. Every run
// appends exactly one (user, assistant) message pair; a history entry is
// appended only when the run fully succeeds.
func (a *App) HandleInput(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if !a.inFlight.CompareAndSwap(false, true) {
		return msgBusy
	}
	defer a.inFlight.Store(false)

	a.session.AppendUserMessage(text)

	if a.engine == nil {
		a.session.AppendAssistantMessage(msgNoAPIKey)
		return msgNoAPIKey
	}

	target := a.session.TargetLanguage()

	raw, err := a.engine.Translate(ctx, text, target.Name)
	if err != nil {
		return a.fail(err)
	}

	result, err := translator.ParseResponse(raw)
	if err != nil {
		return a.fail(err)
	}

	reply := translator.FormatResult(result)
	a.session.AppendAssistantMessage(reply)
	a.session.RecordTranslation(types.HistoryEntry{
		SourceText:       text,
		TranslatedText:   result.PrimaryTranslation,
		DetectedLanguage: result.DetectedLanguage,
		TargetLanguage:   target.Name,
	})

	logger.Info("translation completed",
		logger.String("detected", result.DetectedLanguage),
		logger.String("target", target.Name),
		logger.Float64("confidence", result.Confidence))

	return reply
}

// fail converts a pipeline error into the assistant error message and
// appends it to the transcript. The history is never touched on failure.
func (a *App) fail(err error) string {
	logger.Error("translation pipeline failed", err)
	reply := translator.FormatError(err)
	a.session.AppendAssistantMessage(reply)
	return reply
}

// SetTargetLanguage updates the session's target language; unknown names
// fail closed without changing the current target.
func (a *App) SetTargetLanguage(name string) error {
	return a.session.SetTargetLanguage(name)
}

// ClearHistory empties the session's translation history.
func (a *App) ClearHistory() {
	a.session.ClearHistory()
}

// RecentHistory returns the most recent translations, newest first.
func (a *App) RecentHistory() []types.HistoryEntry {
	return a.session.RecentHistory(session.DefaultRecentLimit)
}

// Languages returns the supported target languages in registry order.
func (a *App) Languages() []language.Language {
	return language.All()
}
