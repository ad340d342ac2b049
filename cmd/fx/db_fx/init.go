package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripcraft/internal/config"
	"tripcraft/internal/infra"
	"tripcraft/internal/repositories"
)

var Module = fx.Provide(provideGenerationLogRepo)

// provideGenerationLogRepo falls back to a no-op recorder when POSTGRES_URL is unset.
func provideGenerationLogRepo(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (repositories.GenerationLogRepositoryInterface, error) {
	if cfg.PostgresURL == "" {
		logger.Info("POSTGRES_URL not set; generation audit log disabled")
		return repositories.NoopGenerationLogRepository{}, nil
	}

	db, err := infra.InitPostgresql(cfg.PostgresURL, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
	return repositories.NewGenerationLogRepository(db), nil
}
