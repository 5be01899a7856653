package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderWithItemCols = []string{
	"id", "order_number", "created_at", "status", "is_pickup",
	"pickup_location_id", "promotion_code",
	"shipping_amount", "discount_amount", "tax_amount", "total_amount",
	"shipping_first_name", "shipping_last_name", "shipping_state", "shipping_method",
	"customer_email",
	"item_id", "product_name", "quantity", "line_total", "image_url",
}

func TestFetchReportableInWindowGroupsItems(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	c1 := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	c2 := time.Date(2025, 3, 6, 16, 45, 0, 0, time.UTC)

	rows := sqlmock.NewRows(orderWithItemCols).
		AddRow(1042, "ATL-101042", c1, "paid", true, 2, "", "0", "0", "0.84", "12.84", "Dana", "Whitfield", "GA", "", "dana@example.com", 11, "Genovese Basil", 4, "11.00", "").
		AddRow(1043, "ATL-101043", c2, "shipped", false, 0, "replacement-mar", "0", "0", "0", "0", "Ruth", "Okafor", "NC", "UPS Ground", "ruth@example.com", 12, "Sun Gold Tomato", 1, "0", "").
		AddRow(1043, "ATL-101043", c2, "shipped", false, 0, "replacement-mar", "0", "0", "0", "0", "Ruth", "Okafor", "NC", "UPS Ground", "ruth@example.com", 13, "Seed Starter Kit", 1, "0", "")

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders o")).
		WithArgs(start, end).
		WillReturnRows(rows)

	repo := NewOrderRepository()
	orders, err := repo.FetchReportableInWindow(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "ATL-101042", orders[0].OrderNumber)
	assert.True(t, orders[0].IsPickup)
	assert.Equal(t, int64(2), orders[0].PickupLocationID)
	assert.Len(t, orders[0].Items, 1)

	assert.Equal(t, "replacement-mar", orders[1].PromotionCode)
	assert.Len(t, orders[1].Items, 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrdersAppliesFiltersAndPaging(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders o")).
		WithArgs("paid", "%dana%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	listCols := []string{
		"id", "order_number", "created_at", "status", "is_pickup",
		"customer_name", "total_amount", "shipping_method", "item_count",
	}
	created := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY o.created_at DESC")).
		WithArgs("paid", "%dana%", 25, 0).
		WillReturnRows(sqlmock.NewRows(listCols).
			AddRow(1042, "ATL-101042", created, "paid", false, "Dana Whitfield", "48.50", "UPS Ground", 3))

	repo := NewOrderRepository()
	items, total, err := repo.List(context.Background(), OrderFilterParams{
		Status: "paid",
		Query:  "dana",
		Limit:  25,
	})

	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, items, 1)
	assert.Equal(t, "ATL-101042", items[0].OrderNumber)
	assert.Equal(t, "Dana Whitfield", items[0].CustomerName)
	assert.Equal(t, 3, items[0].ItemCount)
	assert.True(t, items[0].TotalAmount.Equal(dec("48.50")))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrdersDefaultsLimit(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM orders o")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY o.created_at DESC")).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "order_number", "created_at", "status", "is_pickup",
			"customer_name", "total_amount", "shipping_method", "item_count",
		}))

	repo := NewOrderRepository()
	items, total, err := repo.List(context.Background(), OrderFilterParams{Limit: 9999})

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderByIDNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE o.id = $1")).
		WithArgs(int64(55)).
		WillReturnError(sql.ErrNoRows)

	repo := NewOrderRepository()
	_, err := repo.GetByID(context.Background(), 55)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewOrderRepository()
	_, err := repo.UpdateStatus(context.Background(), 7, "teleported")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestUpdateStatusSuccess(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	created := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE orders")).
		WithArgs("shipped", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_number", "created_at", "status", "is_pickup", "total_amount"}).
			AddRow(7, "ATL-100007", created, "shipped", false, "31.20"))

	repo := NewOrderRepository()
	o, err := repo.UpdateStatus(context.Background(), 7, "shipped")

	require.NoError(t, err)
	assert.Equal(t, "shipped", o.Status)
	assert.Equal(t, "ATL-100007", o.OrderNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateViaProcedure(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	payload := []byte(`{"customerEmail":"dana@example.com"}`)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT order_id, order_number FROM create_order($1::jsonb)")).
		WithArgs(payload).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "order_number"}).AddRow(1043, "ATL-101043"))

	repo := NewOrderRepository()
	result, err := repo.CreateViaProcedure(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, int64(1043), result.OrderID)
	assert.Equal(t, "ATL-101043", result.OrderNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateViaProcedureInsufficientStock(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	payload := []byte(`{"customerEmail":"dana@example.com"}`)
	mock.ExpectQuery(regexp.QuoteMeta("FROM create_order($1::jsonb)")).
		WithArgs(payload).
		WillReturnError(errors.New("ERROR: insufficient stock for product 11 (SQLSTATE P0001)"))

	repo := NewOrderRepository()
	_, err := repo.CreateViaProcedure(context.Background(), payload)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
	assert.NoError(t, mock.ExpectationsWereMet())
}
