package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"architect/internal/architect"
	"architect/internal/gateway/config"
	"architect/internal/gateway/handler"
	"architect/internal/gateway/middleware"
	"architect/internal/gateway/server"
	llmclient "architect/internal/llmClient"
)

type App struct {
	server *server.Server
	stores *gatewayStores
	llm    llmclient.LLMClient
	log    zerolog.Logger
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := newLogger(cfg.Env)

	stores, err := initStores(cfg, log)
	if err != nil {
		return nil, err
	}

	llm, err := llmclient.New(ctx, llmclient.Settings{
		Provider:    cfg.LLM.Provider,
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	})
	if err != nil {
		stores.Close()
		return nil, fmt.Errorf("failed to init llm client: %w", err)
	}
	log.Info().Str("model", llm.Name()).Msg("llm client ready")

	orchestrator := architect.NewOrchestrator(stores.threads, llm, stores.archive, log)
	svc := handler.NewService(orchestrator, stores.threads, log)
	mux := handler.BuildMux(svc)
	srv := server.New(cfg.Port, middleware.CORS(mux), log)

	return &App{
		server: srv,
		stores: stores,
		llm:    llm,
		log:    log,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	_ = a.llm.Close()
	a.stores.Close()
	return err
}

func (a *App) Logger() zerolog.Logger { return a.log }

func newLogger(env string) zerolog.Logger {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
