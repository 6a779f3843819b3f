package main

import (
	"context"

	"github.com/faqforge/faqforge/internal/anthropic"
	"github.com/faqforge/faqforge/internal/auth"
	"github.com/faqforge/faqforge/internal/cache"
	"github.com/faqforge/faqforge/internal/config"
	"github.com/faqforge/faqforge/internal/database"
	"github.com/faqforge/faqforge/internal/faq"
	"github.com/faqforge/faqforge/internal/handler"
	"github.com/faqforge/faqforge/internal/logger"
	"github.com/faqforge/faqforge/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, rdb); err != nil {
		sugar.Fatal(err)
	}
	defer rdb.Close()

	repo := repository.NewRepository(pool)
	sessions := cache.NewSessionStore(rdb)
	completer := anthropic.NewClient(cfg.Anthropic.APIKey, cfg.Anthropic.Model, cfg.Anthropic.Timeout)
	pipeline := faq.NewPipeline(completer, log)

	h := &handler.Handler{
		Logger:      log,
		Users:       &repo.User,
		Generations: &repo.Generation,
		Sessions:    sessions,
		TokenMaker:  auth.NewJWTMaker(cfg.JWT.Secret),
		AccessTTL:   cfg.JWT.AccessTokenTTL,
		RefreshTTL:  cfg.JWT.RefreshTokenTTL,
		Pipeline:    pipeline,
	}

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
