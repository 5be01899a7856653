package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/boilermanc/atlurbanfarms-sub005/db"
	"github.com/boilermanc/atlurbanfarms-sub005/models"
)

// SettingsRepository handles database operations for store settings
type SettingsRepository struct{}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// Ensure SettingsRepository implements SettingsRepositoryInterface
var _ SettingsRepositoryInterface = (*SettingsRepository)(nil)

// List returns all settings ordered by key
func (r *SettingsRepository) List(ctx context.Context) ([]models.StoreSetting, error) {
	log.Printf("📦 ListSettings")

	query := `SELECT key, value, updated_at FROM store_settings ORDER BY key ASC`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ ListSettings: Error querying settings: %v", err)
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	var settings []models.StoreSetting
	for rows.Next() {
		var s models.StoreSetting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			log.Printf("❌ ListSettings: Error scanning row: %v", err)
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ ListSettings: Error iterating rows: %v", err)
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	log.Printf("✅ ListSettings: Found %d settings", len(settings))
	return settings, nil
}

// Get returns one setting by key
func (r *SettingsRepository) Get(ctx context.Context, key string) (*models.StoreSetting, error) {
	log.Printf("📦 GetSetting: key=%s", key)

	query := `SELECT key, value, updated_at FROM store_settings WHERE key = $1`

	var s models.StoreSetting
	err := db.DB.QueryRowContext(ctx, query, key).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("❌ GetSetting: Setting %s not found", key)
			return nil, fmt.Errorf("setting %q not found", key)
		}
		log.Printf("❌ GetSetting: Error fetching setting: %v", err)
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	log.Printf("✅ GetSetting: %s=%s", s.Key, s.Value)
	return &s, nil
}

// Upsert creates or replaces a setting
func (r *SettingsRepository) Upsert(ctx context.Context, req *models.UpsertSettingRequest) (*models.StoreSetting, error) {
	log.Printf("📦 UpsertSetting: key=%s", req.Key)

	if strings.TrimSpace(req.Key) == "" {
		log.Printf("❌ UpsertSetting: key is required")
		return nil, fmt.Errorf("key is required")
	}

	query := `
		INSERT INTO store_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING key, value, updated_at
	`

	var s models.StoreSetting
	err := db.DB.QueryRowContext(ctx, query, strings.TrimSpace(req.Key), req.Value).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		log.Printf("❌ UpsertSetting: Error upserting setting: %v", err)
		return nil, fmt.Errorf("failed to upsert setting: %w", err)
	}

	log.Printf("✅ UpsertSetting: %s=%s", s.Key, s.Value)
	return &s, nil
}
