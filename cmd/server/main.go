package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kundank11/GemFlow/internal/api"
	"github.com/kundank11/GemFlow/internal/chat"
	"github.com/kundank11/GemFlow/internal/config"
	"github.com/kundank11/GemFlow/internal/llm"
	"github.com/kundank11/GemFlow/internal/store"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not loaded", zap.Error(err))
	}

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var st store.Store
	if cfg.DatabaseURL != "" {
		st, err = store.NewPostgres(ctx, cfg.DatabaseURL)
	} else {
		st, err = store.NewSQLite(cfg.SQLitePath)
	}
	if err != nil {
		logger.Fatal("failed to initialize store", zap.Error(err))
	}
	defer st.Close()

	var gen llm.Generator
	switch cfg.Provider {
	case config.ProviderOpenAI:
		gen, err = llm.NewOpenAI(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
	default:
		gen, err = llm.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	if err != nil {
		logger.Fatal("failed to initialize model client", zap.Error(err))
	}

	service := chat.New(st, gen, logger)
	handler := api.NewHandler(service, st, logger)
	router := api.NewRouter(handler, logger)

	logger.Info("starting server",
		zap.String("addr", cfg.Addr),
		zap.String("model", gen.Model()))
	if err := router.Run(cfg.Addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
