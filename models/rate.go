package models

import "github.com/shopspring/decimal"

// RateRequest represents the request body for quoting shipping rates for a
// cart before the order is submitted
// Example:
// {
//   "address": {"firstName": "Dana", "lastName": "Whitfield", "street1": "12 Vine St",
//               "city": "Decatur", "state": "GA", "postalCode": "30030"},
//   "items": [{"productId": 11, "quantity": 6}]
// }
type RateRequest struct {
	Address ShippingAddress          `json:"address"`
	Items   []CreateOrderItemRequest `json:"items"`
}

// Rate is a single shipping option offered by the rate shop. Amount is the
// raw carrier figure; Total is Amount after the carrier's markup percent and
// handling fee have been applied.
type Rate struct {
	CarrierCode   string          `json:"carrierCode"`
	CarrierName   string          `json:"carrierName,omitempty"`
	ServiceCode   string          `json:"serviceCode"`
	ServiceName   string          `json:"serviceName"`
	Amount        decimal.Decimal `json:"amount"`
	Total         decimal.Decimal `json:"total"`
	EstimatedDays int             `json:"estimatedDays,omitempty"`
}

// RateResponse represents the response for a rate quote
// Example response:
// {"rates": [{"carrierCode": "usps", "serviceCode": "priority",
//             "serviceName": "Priority Mail", "amount": "7.90", "total": "10.19",
//             "estimatedDays": 2}]}
type RateResponse struct {
	Rates []Rate `json:"rates"`
}
