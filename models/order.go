package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a live storefront order as stored in the orders table.
// Orders are created by the hosted checkout (or through the admin workflow)
// and carry a reliable is_pickup flag and promotion code, unlike legacy orders.
type Order struct {
	ID                int64           `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	CreatedAt         time.Time       `json:"createdAt"`
	Status            string          `json:"status"` // pending, paid, processing, shipped, ready_for_pickup, completed, cancelled
	IsPickup          bool            `json:"isPickup"`
	PickupLocationID  int64           `json:"pickupLocationId,omitempty"`
	PickupLocation    string          `json:"pickupLocation,omitempty"`
	PromotionCode     string          `json:"promotionCode,omitempty"`
	ShippingAmount    decimal.Decimal `json:"shippingAmount"`
	DiscountAmount    decimal.Decimal `json:"discountAmount"`
	TaxAmount         decimal.Decimal `json:"taxAmount"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	ShippingFirstName string          `json:"shippingFirstName,omitempty"`
	ShippingLastName  string          `json:"shippingLastName,omitempty"`
	ShippingState     string          `json:"shippingState,omitempty"`
	ShippingMethod    string          `json:"shippingMethod,omitempty"`
	CustomerEmail     string          `json:"customerEmail,omitempty"`
	Items             []OrderItem     `json:"items,omitempty"`
}

// OrderItem represents a line item on a live order
type OrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"orderId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

// OrderListItem represents an order in a list response (no line items)
type OrderListItem struct {
	ID             int64           `json:"id"`
	OrderNumber    string          `json:"orderNumber"`
	CreatedAt      time.Time       `json:"createdAt"`
	Status         string          `json:"status"`
	IsPickup       bool            `json:"isPickup"`
	CustomerName   string          `json:"customerName,omitempty"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	ItemCount      int             `json:"itemCount"`
	ShippingMethod string          `json:"shippingMethod,omitempty"`
}

// OrderListResponse represents the response for listing orders
// Example response:
// {
//   "orders": [
//     {
//       "id": 1042,
//       "orderNumber": "ATL-101042",
//       "createdAt": "2025-03-10T14:05:00Z",
//       "status": "paid",
//       "isPickup": false,
//       "customerName": "Dana Whitfield",
//       "totalAmount": "48.50",
//       "itemCount": 3,
//       "shippingMethod": "UPS Ground"
//     }
//   ],
//   "total": 128
// }
type OrderListResponse struct {
	Orders []OrderListItem `json:"orders"`
	Total  int             `json:"total"`
}

// OrderDetailResponse represents a single order with its line items
type OrderDetailResponse struct {
	Order
}

// UpdateOrderStatusRequest represents the request body for updating an order's status
// Example: {"status": "ready_for_pickup"}
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrderItemRequest is one requested line on an admin-created order
type CreateOrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// ShippingAddress carries the destination fields sent to the rate shop and
// recorded on the submitted order
type ShippingAddress struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// CreateOrderRequest represents the request body for the admin order-creation
// workflow. A pickup order carries pickupLocationId and no address or rate; a
// shipped order carries the address plus the rate the operator selected.
// Example (pickup):
// {"customerEmail": "dana@example.com", "isPickup": true, "pickupLocationId": 2,
//  "items": [{"productId": 11, "quantity": 6}]}
// Example (ship):
// {"customerEmail": "dana@example.com", "isPickup": false,
//  "address": {"firstName": "Dana", "lastName": "Whitfield", "street1": "12 Vine St",
//              "city": "Decatur", "state": "GA", "postalCode": "30030"},
//  "selectedRate": {"carrierCode": "ups", "serviceCode": "ground", "total": "8.50"},
//  "items": [{"productId": 11, "quantity": 6}]}
type CreateOrderRequest struct {
	CustomerEmail    string                   `json:"customerEmail"`
	IsPickup         bool                     `json:"isPickup"`
	PickupLocationID int64                    `json:"pickupLocationId,omitempty"`
	Address          *ShippingAddress         `json:"address,omitempty"`
	SelectedRate     *SelectedRate            `json:"selectedRate,omitempty"`
	PromotionCode    string                   `json:"promotionCode,omitempty"`
	Notes            string                   `json:"notes,omitempty"`
	Items            []CreateOrderItemRequest `json:"items"`
}

// SelectedRate is the rate the operator picked from a quote response
type SelectedRate struct {
	CarrierCode string          `json:"carrierCode"`
	ServiceCode string          `json:"serviceCode"`
	ServiceName string          `json:"serviceName,omitempty"`
	Total       decimal.Decimal `json:"total"`
}

// OrderSubmissionResult represents the response after the inventory-checked
// stored procedure accepts an order
// Example response: {"orderId": 1043, "orderNumber": "ATL-101043"}
type OrderSubmissionResult struct {
	OrderID     int64  `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}
