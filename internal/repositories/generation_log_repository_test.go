package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tripcraft/internal/models/db_models"
)

// setupTestDB connects to the database named by TEST_POSTGRES_URL and skips
// the test when it is not set.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_URL")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_URL not set; skipping DB-backed tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&db_models.GenerationLog{}))

	t.Cleanup(func() {
		db.Exec("TRUNCATE TABLE generation_logs")
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestCreateGenerationLog(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGenerationLogRepository(db)

	entry := &db_models.GenerationLog{
		TraceID:       "trace-1",
		Destination:   "Kyoto",
		RequestedDays: 3,
		Mode:          "structured",
		Model:         "gemini-2.5-flash",
		Outcome:       "structured",
		CitationCount: 2,
		LatencyMs:     1200,
	}
	require.NoError(t, repo.CreateGenerationLog(context.Background(), entry))
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.NotZero(t, entry.CreatedAt)

	var stored db_models.GenerationLog
	require.NoError(t, db.First(&stored, "id = ?", entry.ID).Error)
	assert.Equal(t, "Kyoto", stored.Destination)
	assert.Equal(t, 2, stored.CitationCount)
}

func TestNoopGenerationLogRepository(t *testing.T) {
	var repo GenerationLogRepositoryInterface = NoopGenerationLogRepository{}
	assert.NoError(t, repo.CreateGenerationLog(context.Background(), &db_models.GenerationLog{}))
}
