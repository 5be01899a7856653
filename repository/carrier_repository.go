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

// CarrierConfigurationRepository handles database operations for carrier configurations
type CarrierConfigurationRepository struct{}

// NewCarrierConfigurationRepository creates a new CarrierConfigurationRepository
func NewCarrierConfigurationRepository() *CarrierConfigurationRepository {
	return &CarrierConfigurationRepository{}
}

// Ensure CarrierConfigurationRepository implements CarrierConfigurationRepositoryInterface
var _ CarrierConfigurationRepositoryInterface = (*CarrierConfigurationRepository)(nil)

const carrierColumns = `id, carrier_code, display_name, enabled, markup_percent, handling_fee, created_at, updated_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCarrierRow(row rowScanner) (*models.CarrierConfiguration, error) {
	var c models.CarrierConfiguration
	err := row.Scan(
		&c.ID,
		&c.CarrierCode,
		&c.DisplayName,
		&c.Enabled,
		&c.MarkupPercent,
		&c.HandlingFee,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all carrier configurations
func (r *CarrierConfigurationRepository) List(ctx context.Context) ([]models.CarrierConfiguration, error) {
	log.Printf("📦 ListCarrierConfigurations")

	query := fmt.Sprintf("SELECT %s FROM carrier_configurations ORDER BY carrier_code ASC", carrierColumns)

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ ListCarrierConfigurations: Error querying: %v", err)
		return nil, fmt.Errorf("failed to query carrier configurations: %w", err)
	}
	defer rows.Close()

	var configs []models.CarrierConfiguration
	for rows.Next() {
		c, err := scanCarrierRow(rows)
		if err != nil {
			log.Printf("❌ ListCarrierConfigurations: Error scanning row: %v", err)
			return nil, fmt.Errorf("failed to scan carrier configuration: %w", err)
		}
		configs = append(configs, *c)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ ListCarrierConfigurations: Error iterating rows: %v", err)
		return nil, fmt.Errorf("failed to read carrier configurations: %w", err)
	}

	log.Printf("✅ ListCarrierConfigurations: Found %d configurations", len(configs))
	return configs, nil
}

// ListEnabled returns only the carrier configurations offered at checkout
func (r *CarrierConfigurationRepository) ListEnabled(ctx context.Context) ([]models.CarrierConfiguration, error) {
	log.Printf("📦 ListEnabledCarrierConfigurations")

	query := fmt.Sprintf("SELECT %s FROM carrier_configurations WHERE enabled = true ORDER BY carrier_code ASC", carrierColumns)

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ ListEnabledCarrierConfigurations: Error querying: %v", err)
		return nil, fmt.Errorf("failed to query carrier configurations: %w", err)
	}
	defer rows.Close()

	var configs []models.CarrierConfiguration
	for rows.Next() {
		c, err := scanCarrierRow(rows)
		if err != nil {
			log.Printf("❌ ListEnabledCarrierConfigurations: Error scanning row: %v", err)
			return nil, fmt.Errorf("failed to scan carrier configuration: %w", err)
		}
		configs = append(configs, *c)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ ListEnabledCarrierConfigurations: Error iterating rows: %v", err)
		return nil, fmt.Errorf("failed to read carrier configurations: %w", err)
	}

	log.Printf("✅ ListEnabledCarrierConfigurations: Found %d configurations", len(configs))
	return configs, nil
}

// Create creates a new carrier configuration
func (r *CarrierConfigurationRepository) Create(ctx context.Context, req *models.CreateCarrierConfigurationRequest) (*models.CarrierConfiguration, error) {
	log.Printf("📦 CreateCarrierConfiguration: code=%s", req.CarrierCode)

	if strings.TrimSpace(req.CarrierCode) == "" {
		log.Printf("❌ CreateCarrierConfiguration: carrierCode is required")
		return nil, fmt.Errorf("carrierCode is required")
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		log.Printf("❌ CreateCarrierConfiguration: displayName is required")
		return nil, fmt.Errorf("displayName is required")
	}
	if req.MarkupPercent.IsNegative() {
		log.Printf("❌ CreateCarrierConfiguration: markupPercent must not be negative")
		return nil, fmt.Errorf("markupPercent must not be negative")
	}
	if req.HandlingFee.IsNegative() {
		log.Printf("❌ CreateCarrierConfiguration: handlingFee must not be negative")
		return nil, fmt.Errorf("handlingFee must not be negative")
	}

	query := fmt.Sprintf(`
		INSERT INTO carrier_configurations (carrier_code, display_name, enabled, markup_percent, handling_fee, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s
	`, carrierColumns)

	c, err := scanCarrierRow(db.DB.QueryRowContext(ctx, query,
		strings.ToLower(strings.TrimSpace(req.CarrierCode)),
		req.DisplayName,
		req.Enabled,
		req.MarkupPercent,
		req.HandlingFee,
	))
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			log.Printf("❌ CreateCarrierConfiguration: Carrier %s already exists", req.CarrierCode)
			return nil, fmt.Errorf("carrier %s already exists", req.CarrierCode)
		}
		log.Printf("❌ CreateCarrierConfiguration: Error inserting: %v", err)
		return nil, fmt.Errorf("failed to insert carrier configuration: %w", err)
	}

	log.Printf("✅ CreateCarrierConfiguration: Created configuration id=%d", c.ID)
	return c, nil
}

// Update updates a carrier configuration; only non-nil fields change
func (r *CarrierConfigurationRepository) Update(ctx context.Context, id int64, req *models.UpdateCarrierConfigurationRequest) (*models.CarrierConfiguration, error) {
	log.Printf("📦 UpdateCarrierConfiguration: id=%d", id)

	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	if req.DisplayName != nil {
		setClauses = append(setClauses, fmt.Sprintf("display_name = $%d", argIndex))
		args = append(args, *req.DisplayName)
		argIndex++
	}
	if req.Enabled != nil {
		setClauses = append(setClauses, fmt.Sprintf("enabled = $%d", argIndex))
		args = append(args, *req.Enabled)
		argIndex++
	}
	if req.MarkupPercent != nil {
		if req.MarkupPercent.IsNegative() {
			log.Printf("❌ UpdateCarrierConfiguration: markupPercent must not be negative")
			return nil, fmt.Errorf("markupPercent must not be negative")
		}
		setClauses = append(setClauses, fmt.Sprintf("markup_percent = $%d", argIndex))
		args = append(args, *req.MarkupPercent)
		argIndex++
	}
	if req.HandlingFee != nil {
		if req.HandlingFee.IsNegative() {
			log.Printf("❌ UpdateCarrierConfiguration: handlingFee must not be negative")
			return nil, fmt.Errorf("handlingFee must not be negative")
		}
		setClauses = append(setClauses, fmt.Sprintf("handling_fee = $%d", argIndex))
		args = append(args, *req.HandlingFee)
		argIndex++
	}

	if len(setClauses) == 0 {
		log.Printf("❌ UpdateCarrierConfiguration: No fields to update")
		return nil, fmt.Errorf("no fields to update")
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE carrier_configurations
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argIndex, carrierColumns)

	c, err := scanCarrierRow(db.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("❌ UpdateCarrierConfiguration: Configuration %d not found", id)
			return nil, fmt.Errorf("carrier configuration with id %d not found", id)
		}
		log.Printf("❌ UpdateCarrierConfiguration: Error updating: %v", err)
		return nil, fmt.Errorf("failed to update carrier configuration: %w", err)
	}

	log.Printf("✅ UpdateCarrierConfiguration: Updated configuration id=%d", c.ID)
	return c, nil
}
