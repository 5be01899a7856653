package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
)

func TestGetSettingNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("FROM store_settings WHERE key = $1")).
		WithArgs("missing_key").
		WillReturnError(sql.ErrNoRows)

	repo := NewSettingsRepository()
	_, err := repo.Get(context.Background(), "missing_key")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSetting(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (key)")).
		WithArgs("report_archive_folder", "1AbCdEfGh").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("report_archive_folder", "1AbCdEfGh", "2025-03-01T00:00:00Z"))

	repo := NewSettingsRepository()
	s, err := repo.Upsert(context.Background(), &models.UpsertSettingRequest{
		Key:   " report_archive_folder ",
		Value: "1AbCdEfGh",
	})

	require.NoError(t, err)
	assert.Equal(t, "report_archive_folder", s.Key)
	assert.Equal(t, "1AbCdEfGh", s.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertSettingRequiresKey(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewSettingsRepository()
	_, err := repo.Upsert(context.Background(), &models.UpsertSettingRequest{Value: "x"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "key is required")
}
