package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LegacyOrder represents a row from the archived legacy_orders table. The
// legacy storefront recorded no pickup flag and no promotion code, so pickup
// and replacement orders can only be inferred from shipping and subtotal.
type LegacyOrder struct {
	ID             int64             `json:"id"`
	OrderDate      time.Time         `json:"orderDate"`
	Status         string            `json:"status"`
	Shipping       decimal.Decimal   `json:"shipping"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	Tax            decimal.Decimal   `json:"tax"`
	Total          decimal.Decimal   `json:"total"`
	FirstName      string            `json:"firstName,omitempty"`
	LastName       string            `json:"lastName,omitempty"`
	State          string            `json:"state,omitempty"`
	ShippingMethod string            `json:"shippingMethod,omitempty"`
	Items          []LegacyOrderItem `json:"items,omitempty"`
}

// LegacyOrderItem represents a line item on a legacy order
type LegacyOrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"orderId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
