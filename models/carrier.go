package models

import "github.com/shopspring/decimal"

// CarrierConfiguration controls whether a carrier's quotes are offered at
// checkout and how the raw carrier amount is adjusted before display.
// markup_percent is applied first, then handling_fee is added.
type CarrierConfiguration struct {
	ID            int64           `json:"id"`
	CarrierCode   string          `json:"carrierCode"`
	DisplayName   string          `json:"displayName"`
	Enabled       bool            `json:"enabled"`
	MarkupPercent decimal.Decimal `json:"markupPercent"`
	HandlingFee   decimal.Decimal `json:"handlingFee"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	UpdatedAt     string          `json:"updatedAt,omitempty"`
}

// CreateCarrierConfigurationRequest represents the request body for creating
// a carrier configuration
// Example: {"carrierCode": "usps", "displayName": "USPS", "enabled": true,
//           "markupPercent": "10", "handlingFee": "1.50"}
type CreateCarrierConfigurationRequest struct {
	CarrierCode   string          `json:"carrierCode"`
	DisplayName   string          `json:"displayName"`
	Enabled       bool            `json:"enabled"`
	MarkupPercent decimal.Decimal `json:"markupPercent"`
	HandlingFee   decimal.Decimal `json:"handlingFee"`
}

// UpdateCarrierConfigurationRequest represents the request body for updating
// a carrier configuration; nil fields are left unchanged
type UpdateCarrierConfigurationRequest struct {
	DisplayName   *string          `json:"displayName,omitempty"`
	Enabled       *bool            `json:"enabled,omitempty"`
	MarkupPercent *decimal.Decimal `json:"markupPercent,omitempty"`
	HandlingFee   *decimal.Decimal `json:"handlingFee,omitempty"`
}
