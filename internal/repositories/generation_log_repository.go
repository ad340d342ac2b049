package repositories

import (
	"context"

	"gorm.io/gorm"

	"tripcraft/internal/models/db_models"
)

type GenerationLogRepositoryInterface interface {
	CreateGenerationLog(ctx context.Context, entry *db_models.GenerationLog) error
}

type GenerationLogRepository struct {
	db *gorm.DB
}

func NewGenerationLogRepository(db *gorm.DB) *GenerationLogRepository {
	return &GenerationLogRepository{db: db}
}

func (r *GenerationLogRepository) CreateGenerationLog(ctx context.Context, entry *db_models.GenerationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// NoopGenerationLogRepository is used when no database is configured.
type NoopGenerationLogRepository struct{}

func (NoopGenerationLogRepository) CreateGenerationLog(ctx context.Context, entry *db_models.GenerationLog) error {
	return nil
}
