package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/boilermanc/atlurbanfarms-sub005/db"
	"github.com/boilermanc/atlurbanfarms-sub005/models"
)

// OrderFilterParams represents optional filter parameters for listing orders
type OrderFilterParams struct {
	Status string
	Query  string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// validOrderStatuses are the statuses an order can be moved to
var validOrderStatuses = map[string]bool{
	"pending":          true,
	"paid":             true,
	"processing":       true,
	"shipped":          true,
	"ready_for_pickup": true,
	"completed":        true,
	"cancelled":        true,
}

// OrderRepository handles database operations for live storefront orders
type OrderRepository struct{}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

const orderWithItemsColumns = `
	o.id, o.order_number, o.created_at, o.status, o.is_pickup,
	COALESCE(o.pickup_location_id, 0),
	COALESCE(o.promotion_code, ''),
	COALESCE(o.shipping_amount, 0), COALESCE(o.discount_amount, 0),
	COALESCE(o.tax_amount, 0), COALESCE(o.total_amount, 0),
	COALESCE(o.shipping_first_name, ''), COALESCE(o.shipping_last_name, ''),
	COALESCE(o.shipping_state, ''), COALESCE(o.shipping_method, ''),
	COALESCE(o.customer_email, ''),
	i.id, i.product_name, i.quantity, i.line_total, i.image_url`

// scanOrderWithItemRows groups joined order/item rows into orders. Rows must
// be ordered by order id so items of one order arrive together.
func scanOrderWithItemRows(rows *sql.Rows) ([]models.Order, error) {
	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var itemID, quantity sql.NullInt64
		var productName, imageURL sql.NullString
		var lineTotal decimal.NullDecimal

		err := rows.Scan(
			&o.ID,
			&o.OrderNumber,
			&o.CreatedAt,
			&o.Status,
			&o.IsPickup,
			&o.PickupLocationID,
			&o.PromotionCode,
			&o.ShippingAmount,
			&o.DiscountAmount,
			&o.TaxAmount,
			&o.TotalAmount,
			&o.ShippingFirstName,
			&o.ShippingLastName,
			&o.ShippingState,
			&o.ShippingMethod,
			&o.CustomerEmail,
			&itemID,
			&productName,
			&quantity,
			&lineTotal,
			&imageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}

		if len(orders) == 0 || orders[len(orders)-1].ID != o.ID {
			orders = append(orders, o)
		}

		if itemID.Valid {
			last := &orders[len(orders)-1]
			last.Items = append(last.Items, models.OrderItem{
				ID:          itemID.Int64,
				OrderID:     o.ID,
				ProductName: productName.String,
				Quantity:    int(quantity.Int64),
				LineTotal:   lineTotal.Decimal,
				ImageURL:    imageURL.String,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}
	return orders, nil
}

// FetchReportableInWindow returns live orders with their items for
// created_at in [start, end), oldest first. Pending carts and cancelled
// orders never reach the report.
func (r *OrderRepository) FetchReportableInWindow(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	log.Printf("📦 FetchReportableInWindow: orders from %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))

	query := fmt.Sprintf(`
		SELECT %s
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status NOT IN ('pending', 'cancelled')
		  AND o.created_at >= $1 AND o.created_at < $2
		ORDER BY o.created_at ASC, o.id ASC, i.id ASC
	`, orderWithItemsColumns)

	rows, err := db.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		log.Printf("❌ FetchReportableInWindow: Error querying orders: %v", err)
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders, err := scanOrderWithItemRows(rows)
	if err != nil {
		log.Printf("❌ FetchReportableInWindow: %v", err)
		return nil, err
	}

	log.Printf("✅ FetchReportableInWindow: Found %d orders", len(orders))
	return orders, nil
}

// FetchPickupsInWindow returns open pickup orders for the manifest, with
// items and the pickup location name resolved
func (r *OrderRepository) FetchPickupsInWindow(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	log.Printf("📦 FetchPickupsInWindow: pickups from %s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))

	query := `
		SELECT o.id, o.order_number, o.created_at, o.status,
		       COALESCE(o.pickup_location_id, 0), COALESCE(pl.name, ''),
		       COALESCE(o.shipping_first_name, ''), COALESCE(o.shipping_last_name, ''),
		       COALESCE(o.customer_email, ''), COALESCE(o.total_amount, 0),
		       i.id, i.product_name, i.quantity, i.line_total, i.image_url
		FROM orders o
		LEFT JOIN pickup_locations pl ON pl.id = o.pickup_location_id
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.is_pickup = true
		  AND o.status IN ('paid', 'processing', 'ready_for_pickup')
		  AND o.created_at >= $1 AND o.created_at < $2
		ORDER BY pl.name ASC, o.created_at ASC, o.id ASC, i.id ASC
	`

	rows, err := db.DB.QueryContext(ctx, query, start, end)
	if err != nil {
		log.Printf("❌ FetchPickupsInWindow: Error querying pickup orders: %v", err)
		return nil, fmt.Errorf("failed to query pickup orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var itemID, quantity sql.NullInt64
		var productName, imageURL sql.NullString
		var lineTotal decimal.NullDecimal

		err := rows.Scan(
			&o.ID,
			&o.OrderNumber,
			&o.CreatedAt,
			&o.Status,
			&o.PickupLocationID,
			&o.PickupLocation,
			&o.ShippingFirstName,
			&o.ShippingLastName,
			&o.CustomerEmail,
			&o.TotalAmount,
			&itemID,
			&productName,
			&quantity,
			&lineTotal,
			&imageURL,
		)
		if err != nil {
			log.Printf("❌ FetchPickupsInWindow: Error scanning row: %v", err)
			return nil, fmt.Errorf("failed to scan pickup order row: %w", err)
		}

		o.IsPickup = true
		if len(orders) == 0 || orders[len(orders)-1].ID != o.ID {
			orders = append(orders, o)
		}

		if itemID.Valid {
			last := &orders[len(orders)-1]
			last.Items = append(last.Items, models.OrderItem{
				ID:          itemID.Int64,
				OrderID:     o.ID,
				ProductName: productName.String,
				Quantity:    int(quantity.Int64),
				LineTotal:   lineTotal.Decimal,
				ImageURL:    imageURL.String,
			})
		}
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ FetchPickupsInWindow: Error iterating rows: %v", err)
		return nil, fmt.Errorf("failed to read pickup orders: %w", err)
	}

	log.Printf("✅ FetchPickupsInWindow: Found %d pickup orders", len(orders))
	return orders, nil
}

// List returns orders matching the filters plus the unpaginated total count
func (r *OrderRepository) List(ctx context.Context, params OrderFilterParams) ([]models.OrderListItem, int, error) {
	log.Printf("🔍 ListOrders: status=%s, q=%s", params.Status, params.Query)

	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if params.Status != "" {
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", argIndex))
		args = append(args, params.Status)
		argIndex++
	}
	if params.Query != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(o.order_number ILIKE $%d OR o.shipping_first_name ILIKE $%d OR o.shipping_last_name ILIKE $%d OR o.customer_email ILIKE $%d)",
			argIndex, argIndex, argIndex, argIndex))
		args = append(args, "%"+params.Query+"%")
		argIndex++
	}
	if params.From != nil {
		conditions = append(conditions, fmt.Sprintf("o.created_at >= $%d", argIndex))
		args = append(args, *params.From)
		argIndex++
	}
	if params.To != nil {
		conditions = append(conditions, fmt.Sprintf("o.created_at < $%d", argIndex))
		args = append(args, *params.To)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM orders o %s", whereClause)
	var total int
	if err := db.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Printf("❌ ListOrders: Error counting orders: %v", err)
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT o.id, o.order_number, o.created_at, o.status, o.is_pickup,
		       TRIM(COALESCE(o.shipping_first_name, '') || ' ' || COALESCE(o.shipping_last_name, '')),
		       COALESCE(o.total_amount, 0),
		       COALESCE(o.shipping_method, ''),
		       (SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id)
		FROM orders o
		%s
		ORDER BY o.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ ListOrders: Error querying orders: %v", err)
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var items []models.OrderListItem
	for rows.Next() {
		var item models.OrderListItem
		err := rows.Scan(
			&item.ID,
			&item.OrderNumber,
			&item.CreatedAt,
			&item.Status,
			&item.IsPickup,
			&item.CustomerName,
			&item.TotalAmount,
			&item.ShippingMethod,
			&item.ItemCount,
		)
		if err != nil {
			log.Printf("❌ ListOrders: Error scanning row: %v", err)
			return nil, 0, fmt.Errorf("failed to scan order row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ ListOrders: Error iterating rows: %v", err)
		return nil, 0, fmt.Errorf("failed to read orders: %w", err)
	}

	log.Printf("✅ ListOrders: Found %d orders (total %d)", len(items), total)
	return items, total, nil
}

// GetByID returns one order with its line items
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	log.Printf("📦 GetOrder: id=%d", id)

	query := `
		SELECT o.id, o.order_number, o.created_at, o.status, o.is_pickup,
		       COALESCE(o.pickup_location_id, 0), COALESCE(pl.name, ''),
		       COALESCE(o.promotion_code, ''),
		       COALESCE(o.shipping_amount, 0), COALESCE(o.discount_amount, 0),
		       COALESCE(o.tax_amount, 0), COALESCE(o.total_amount, 0),
		       COALESCE(o.shipping_first_name, ''), COALESCE(o.shipping_last_name, ''),
		       COALESCE(o.shipping_state, ''), COALESCE(o.shipping_method, ''),
		       COALESCE(o.customer_email, '')
		FROM orders o
		LEFT JOIN pickup_locations pl ON pl.id = o.pickup_location_id
		WHERE o.id = $1
	`

	var o models.Order
	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CreatedAt,
		&o.Status,
		&o.IsPickup,
		&o.PickupLocationID,
		&o.PickupLocation,
		&o.PromotionCode,
		&o.ShippingAmount,
		&o.DiscountAmount,
		&o.TaxAmount,
		&o.TotalAmount,
		&o.ShippingFirstName,
		&o.ShippingLastName,
		&o.ShippingState,
		&o.ShippingMethod,
		&o.CustomerEmail,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("❌ GetOrder: Order %d not found", id)
			return nil, fmt.Errorf("order with id %d not found", id)
		}
		log.Printf("❌ GetOrder: Error fetching order: %v", err)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	itemsQuery := `
		SELECT id, order_id, product_name, quantity, line_total, COALESCE(image_url, '')
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`

	rows, err := db.DB.QueryContext(ctx, itemsQuery, id)
	if err != nil {
		log.Printf("❌ GetOrder: Error fetching items: %v", err)
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductName, &item.Quantity, &item.LineTotal, &item.ImageURL)
		if err != nil {
			log.Printf("❌ GetOrder: Error scanning item: %v", err)
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		o.Items = append(o.Items, item)
	}

	if err := rows.Err(); err != nil {
		log.Printf("❌ GetOrder: Error iterating items: %v", err)
		return nil, fmt.Errorf("failed to read order items: %w", err)
	}

	log.Printf("✅ GetOrder: Found order %s with %d items", o.OrderNumber, len(o.Items))
	return &o, nil
}

// UpdateStatus moves an order to a new status
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	log.Printf("📦 UpdateOrderStatus: id=%d, status=%s", id, status)

	if !validOrderStatuses[status] {
		log.Printf("❌ UpdateOrderStatus: Invalid status: %s", status)
		return nil, fmt.Errorf("invalid status %q", status)
	}

	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, order_number, created_at, status, is_pickup,
		          COALESCE(total_amount, 0)
	`

	var o models.Order
	err := db.DB.QueryRowContext(ctx, query, status, id).Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CreatedAt,
		&o.Status,
		&o.IsPickup,
		&o.TotalAmount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Printf("❌ UpdateOrderStatus: Order %d not found", id)
			return nil, fmt.Errorf("order with id %d not found", id)
		}
		log.Printf("❌ UpdateOrderStatus: Error updating order: %v", err)
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	log.Printf("✅ UpdateOrderStatus: Order %s is now %s", o.OrderNumber, o.Status)
	return &o, nil
}

// CreateViaProcedure submits an order through the store's create_order
// procedure. The procedure checks inventory, assigns the order number and
// writes the order and its items in one transaction; its internals belong
// to the storefront and are not duplicated here.
func (r *OrderRepository) CreateViaProcedure(ctx context.Context, payload []byte) (*models.OrderSubmissionResult, error) {
	log.Printf("📦 CreateViaProcedure: submitting payload (%d bytes)", len(payload))

	query := `SELECT order_id, order_number FROM create_order($1::jsonb)`

	var result models.OrderSubmissionResult
	err := db.DB.QueryRowContext(ctx, query, payload).Scan(&result.OrderID, &result.OrderNumber)
	if err != nil {
		log.Printf("❌ CreateViaProcedure: %v", err)
		return nil, fmt.Errorf("create_order failed: %w", err)
	}

	log.Printf("✅ CreateViaProcedure: Created order %s (id=%d)", result.OrderNumber, result.OrderID)
	return &result, nil
}
