package service

import (
	"context"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
)

// CheckoutServiceInterface defines the contract for admin order submission
type CheckoutServiceInterface interface {
	Submit(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderSubmissionResult, error)
}
