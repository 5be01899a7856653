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

// PickupLocationRepository handles database operations for pickup locations
type PickupLocationRepository struct{}

// NewPickupLocationRepository creates a new PickupLocationRepository
func NewPickupLocationRepository() *PickupLocationRepository {
	return &PickupLocationRepository{}
}

// Ensure PickupLocationRepository implements PickupLocationRepositoryInterface
var _ PickupLocationRepositoryInterface = (*PickupLocationRepository)(nil)

const pickupLocationColumns = `id, name, address_line1, COALESCE(address_line2, ''), city, state, postal_code, COALESCE(instructions, ''), active, created_at, updated_at`

func scanPickupLocationRow(row rowScanner) (*models.PickupLocation, error) {
	var l models.PickupLocation
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.AddressLine1,
		&l.AddressLine2,
		&l.City,
		&l.State,
		&l.PostalCode,
		&l.Instructions,
		&l.Active,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns pickup locations, optionally only active ones
func (r *PickupLocationRepository) List(ctx context.Context, activeOnly bool) ([]models.PickupLocation, error) {
	log.Printf("📦 ListPickupLocations: activeOnly=%v", activeOnly)

	query := fmt.Sprintf("SELECT %s FROM pickup_locations", pickupLocationColumns)
	if activeOnly {
		query += " WHERE active = true"
	}
	query += " ORDER BY name ASC"

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ ListPickupLocations: Error querying: %v", err)
		return nil, fmt.Errorf("failed to query pickup locations: %w", err)
	}
	defer rows.Close()

	var locations []models.PickupLocation
	for rows.Next() {
		l, err := scanPickupLocationRow(rows)
		if err != nil {
			log.Printf("❌ ListPickupLocations: Error scanning row: %v", err)
			return nil, fmt.Errorf("failed to scan pickup location: %w", err)
		}
		locations = append(locations, *l)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ ListPickupLocations: Error iterating rows: %v", err)
		return nil, fmt.Errorf("failed to read pickup locations: %w", err)
	}

	log.Printf("✅ ListPickupLocations: Found %d locations", len(locations))
	return locations, nil
}

// GetByID returns one pickup location
func (r *PickupLocationRepository) GetByID(ctx context.Context, id int64) (*models.PickupLocation, error) {
	log.Printf("📦 GetPickupLocation: id=%d", id)

	query := fmt.Sprintf("SELECT %s FROM pickup_locations WHERE id = $1", pickupLocationColumns)

	l, err := scanPickupLocationRow(db.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("❌ GetPickupLocation: Location %d not found", id)
			return nil, fmt.Errorf("pickup location with id %d not found", id)
		}
		log.Printf("❌ GetPickupLocation: Error fetching location: %v", err)
		return nil, fmt.Errorf("failed to get pickup location: %w", err)
	}

	log.Printf("✅ GetPickupLocation: Found %s", l.Name)
	return l, nil
}

// Create creates a new pickup location
func (r *PickupLocationRepository) Create(ctx context.Context, req *models.CreatePickupLocationRequest) (*models.PickupLocation, error) {
	log.Printf("📦 CreatePickupLocation: name=%s", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		log.Printf("❌ CreatePickupLocation: name is required")
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(req.AddressLine1) == "" {
		log.Printf("❌ CreatePickupLocation: addressLine1 is required")
		return nil, fmt.Errorf("addressLine1 is required")
	}
	if strings.TrimSpace(req.City) == "" || strings.TrimSpace(req.State) == "" {
		log.Printf("❌ CreatePickupLocation: city and state are required")
		return nil, fmt.Errorf("city and state are required")
	}

	query := fmt.Sprintf(`
		INSERT INTO pickup_locations (name, address_line1, address_line2, city, state, postal_code, instructions, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, NOW(), NOW())
		RETURNING %s
	`, pickupLocationColumns)

	l, err := scanPickupLocationRow(db.DB.QueryRowContext(ctx, query,
		req.Name,
		req.AddressLine1,
		sql.NullString{String: req.AddressLine2, Valid: req.AddressLine2 != ""},
		req.City,
		req.State,
		req.PostalCode,
		sql.NullString{String: req.Instructions, Valid: req.Instructions != ""},
	))
	if err != nil {
		log.Printf("❌ CreatePickupLocation: Error inserting: %v", err)
		return nil, fmt.Errorf("failed to insert pickup location: %w", err)
	}

	log.Printf("✅ CreatePickupLocation: Created location id=%d", l.ID)
	return l, nil
}

// Update updates a pickup location; only non-nil fields change
func (r *PickupLocationRepository) Update(ctx context.Context, id int64, req *models.UpdatePickupLocationRequest) (*models.PickupLocation, error) {
	log.Printf("📦 UpdatePickupLocation: id=%d", id)

	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if req.Name != nil {
		addClause("name", *req.Name)
	}
	if req.AddressLine1 != nil {
		addClause("address_line1", *req.AddressLine1)
	}
	if req.AddressLine2 != nil {
		addClause("address_line2", *req.AddressLine2)
	}
	if req.City != nil {
		addClause("city", *req.City)
	}
	if req.State != nil {
		addClause("state", *req.State)
	}
	if req.PostalCode != nil {
		addClause("postal_code", *req.PostalCode)
	}
	if req.Instructions != nil {
		addClause("instructions", *req.Instructions)
	}
	if req.Active != nil {
		addClause("active", *req.Active)
	}

	if len(setClauses) == 0 {
		log.Printf("❌ UpdatePickupLocation: No fields to update")
		return nil, fmt.Errorf("no fields to update")
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE pickup_locations
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argIndex, pickupLocationColumns)

	l, err := scanPickupLocationRow(db.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("❌ UpdatePickupLocation: Location %d not found", id)
			return nil, fmt.Errorf("pickup location with id %d not found", id)
		}
		log.Printf("❌ UpdatePickupLocation: Error updating: %v", err)
		return nil, fmt.Errorf("failed to update pickup location: %w", err)
	}

	log.Printf("✅ UpdatePickupLocation: Updated location id=%d", l.ID)
	return l, nil
}

// Deactivate hides a pickup location from checkout without deleting its
// history
func (r *PickupLocationRepository) Deactivate(ctx context.Context, id int64) error {
	log.Printf("📦 DeactivatePickupLocation: id=%d", id)

	query := `UPDATE pickup_locations SET active = false, updated_at = NOW() WHERE id = $1`

	result, err := db.DB.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("❌ DeactivatePickupLocation: Error updating: %v", err)
		return fmt.Errorf("failed to deactivate pickup location: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Printf("❌ DeactivatePickupLocation: Error checking result: %v", err)
		return fmt.Errorf("failed to check deactivate result: %w", err)
	}
	if affected == 0 {
		log.Printf("❌ DeactivatePickupLocation: Location %d not found", id)
		return fmt.Errorf("pickup location with id %d not found", id)
	}

	log.Printf("✅ DeactivatePickupLocation: Deactivated location id=%d", id)
	return nil
}
