package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FulfillmentType classifies how an order leaves the farm
type FulfillmentType string

const (
	FulfillmentPickup      FulfillmentType = "PICKUP"
	FulfillmentReplacement FulfillmentType = "REPLACEMENT"
	FulfillmentShip        FulfillmentType = "SHIP"
)

// ReportOrder is the normalized projection every order is reduced to before
// aggregation, regardless of whether it came from the live or the legacy
// table. Monetary fields are exact decimals; quantities are tallied into
// seedling and other (accessory) buckets.
type ReportOrder struct {
	OrderID        string          `json:"orderId"`
	OrderDate      time.Time       `json:"orderDate"`
	Type           FulfillmentType `json:"type"`
	FirstName      string          `json:"firstName,omitempty"`
	LastName       string          `json:"lastName,omitempty"`
	State          string          `json:"state,omitempty"`
	SeedlingQty    int             `json:"seedlingQty"`
	OtherQty       int             `json:"otherQty"`
	SeedlingIncome decimal.Decimal `json:"seedlingIncome"`
	OtherRevenue   decimal.Decimal `json:"otherRevenue"`
	ShippingIncome decimal.Decimal `json:"shippingIncome"`
	Discount       decimal.Decimal `json:"discount"`
	Tax            decimal.Decimal `json:"tax"`
	OrderTotal     decimal.Decimal `json:"orderTotal"`
	ShippingMethod string          `json:"shippingMethod,omitempty"`
}

// ShipSizeHistogram counts shipped orders by seedling count
type ShipSizeHistogram struct {
	UpTo10 int `json:"upTo10"`
	UpTo20 int `json:"upTo20"`
	UpTo40 int `json:"upTo40"`
	Over40 int `json:"over40"`
}

// ReportTotals carries the aggregate figures shown in the summary block of
// the on-screen report and the spreadsheet
type ReportTotals struct {
	OrderCount            int               `json:"orderCount"`
	PickupCount           int               `json:"pickupCount"`
	ReplacementCount      int               `json:"replacementCount"`
	ShipCount             int               `json:"shipCount"`
	TotalSeedlings        int               `json:"totalSeedlings"`
	TotalOther            int               `json:"totalOther"`
	TotalSeedlingIncome   decimal.Decimal   `json:"totalSeedlingIncome"`
	TotalOtherRevenue     decimal.Decimal   `json:"totalOtherRevenue"`
	TotalShippingIncome   decimal.Decimal   `json:"totalShippingIncome"`
	TotalDiscounts        decimal.Decimal   `json:"totalDiscounts"`
	TotalTax              decimal.Decimal   `json:"totalTax"`
	TotalRevenue          decimal.Decimal   `json:"totalRevenue"`
	ShipHistogram         ShipSizeHistogram `json:"shipHistogram"`
	AvgRevenuePerSeedling decimal.Decimal   `json:"avgRevenuePerSeedling"`
	AvgShippingPerShip    decimal.Decimal   `json:"avgShippingPerShip"`
	FlatRateReference     decimal.Decimal   `json:"flatRateReference"`
}

// WeeklyReport represents the generated weekly sales report
// Example response:
// {
//   "weekStart": "2025-01-06",
//   "weekEnd": "2025-01-12",
//   "orders": [...],
//   "totals": {"orderCount": 42, "pickupCount": 11, ...}
// }
// When no orders fall in the range, orders is empty and message is set to
// "no orders found for this date range".
type WeeklyReport struct {
	WeekStart string        `json:"weekStart"`
	WeekEnd   string        `json:"weekEnd"`
	Orders    []ReportOrder `json:"orders"`
	Totals    ReportTotals  `json:"totals"`
	Message   string        `json:"message,omitempty"`
}

// Empty reports whether the report window contained no orders
func (r *WeeklyReport) Empty() bool {
	return len(r.Orders) == 0
}
