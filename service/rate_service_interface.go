package service

import (
	"context"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
)

// RateServiceInterface defines the contract for shipping rate quotes
type RateServiceInterface interface {
	QuoteRates(ctx context.Context, req *models.RateRequest) ([]models.Rate, error)
}

// RateShopClientInterface defines the contract for the external rate-shopping
// gateway. The gateway owns carrier credentials and parcel math; this side
// only sends the destination and cart and gets candidate rates back.
type RateShopClientInterface interface {
	FetchRates(ctx context.Context, req models.RateRequest) ([]models.Rate, error)
}
