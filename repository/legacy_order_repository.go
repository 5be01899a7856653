package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boilermanc/atlurbanfarms-sub005/db"
	"github.com/boilermanc/atlurbanfarms-sub005/models"
)

// LegacyOrderRepository handles database operations for the archived
// legacy_orders table. The table is read-only: the old storefront is gone
// and nothing writes to it anymore.
type LegacyOrderRepository struct{}

// NewLegacyOrderRepository creates a new LegacyOrderRepository
func NewLegacyOrderRepository() *LegacyOrderRepository {
	return &LegacyOrderRepository{}
}

// Ensure LegacyOrderRepository implements LegacyOrderRepositoryInterface
var _ LegacyOrderRepositoryInterface = (*LegacyOrderRepository)(nil)

// FetchCompletedInWindow returns completed legacy orders with their items
// for order_date in [start, end), oldest first
func (r *LegacyOrderRepository) FetchCompletedInWindow(ctx context.Context, start, end time.Time) ([]models.LegacyOrder, error) {
	log.Printf("📦 FetchCompletedInWindow: legacy orders from %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))

	query := `
		SELECT o.id, o.order_date, o.status,
		       COALESCE(o.shipping, 0), COALESCE(o.subtotal, 0),
		       COALESCE(o.tax, 0), COALESCE(o.total, 0),
		       COALESCE(o.first_name, ''), COALESCE(o.last_name, ''),
		       COALESCE(o.state, ''), COALESCE(o.shipping_method, ''),
		       i.id, i.product_name, i.quantity, i.line_total
		FROM legacy_orders o
		LEFT JOIN legacy_order_items i ON i.legacy_order_id = o.id
		WHERE o.status = 'completed' AND o.order_date >= $1 AND o.order_date < $2
		ORDER BY o.order_date ASC, o.id ASC, i.id ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		log.Printf("❌ FetchCompletedInWindow: Error querying legacy orders: %v", err)
		return nil, fmt.Errorf("failed to query legacy orders: %w", err)
	}
	defer rows.Close()

	var orders []models.LegacyOrder
	for rows.Next() {
		var o models.LegacyOrder
		var itemID, quantity sql.NullInt64
		var productName sql.NullString
		var lineTotal decimal.NullDecimal

		err := rows.Scan(
			&o.ID,
			&o.OrderDate,
			&o.Status,
			&o.Shipping,
			&o.Subtotal,
			&o.Tax,
			&o.Total,
			&o.FirstName,
			&o.LastName,
			&o.State,
			&o.ShippingMethod,
			&itemID,
			&productName,
			&quantity,
			&lineTotal,
		)
		if err != nil {
			log.Printf("❌ FetchCompletedInWindow: Error scanning row: %v", err)
			return nil, fmt.Errorf("failed to scan legacy order row: %w", err)
		}

		// Rows arrive grouped by order; start a new order when the id changes.
		if len(orders) == 0 || orders[len(orders)-1].ID != o.ID {
			orders = append(orders, o)
		}

		if itemID.Valid {
			last := &orders[len(orders)-1]
			last.Items = append(last.Items, models.LegacyOrderItem{
				ID:          itemID.Int64,
				OrderID:     o.ID,
				ProductName: productName.String,
				Quantity:    int(quantity.Int64),
				LineTotal:   lineTotal.Decimal,
			})
		}
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ FetchCompletedInWindow: Error iterating rows: %v", err)
		return nil, fmt.Errorf("failed to read legacy orders: %w", err)
	}

	log.Printf("✅ FetchCompletedInWindow: Found %d legacy orders", len(orders))
	return orders, nil
}
