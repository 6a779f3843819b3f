package database

import (
	"context"

	"github.com/faqforge/faqforge/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, dbCfg config.DBConfig) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbCfg.DSN)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = dbCfg.MaxConns
	cfg.MaxConnLifetime = dbCfg.MaxConnLifetime
	return pgxpool.NewWithConfig(ctx, cfg)
}
