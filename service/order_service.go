package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/boilermanc/atlurbanfarms-sub005/metrics"
	"github.com/boilermanc/atlurbanfarms-sub005/models"
	"github.com/boilermanc/atlurbanfarms-sub005/repository"

	"github.com/google/uuid"
)

// CheckoutService submits admin-created orders through the storefront's
// inventory-checked stored procedure. Stock validation and order numbering
// happen inside the procedure; this side validates the request shape and
// the pickup/address branch before calling it.
type CheckoutService struct {
	orderRepo  repository.OrderRepositoryInterface
	pickupRepo repository.PickupLocationRepositoryInterface
	metrics    *metrics.Registry
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	orderRepo repository.OrderRepositoryInterface,
	pickupRepo repository.PickupLocationRepositoryInterface,
	reg *metrics.Registry,
) *CheckoutService {
	return &CheckoutService{
		orderRepo:  orderRepo,
		pickupRepo: pickupRepo,
		metrics:    reg,
	}
}

// Ensure CheckoutService implements CheckoutServiceInterface
var _ CheckoutServiceInterface = (*CheckoutService)(nil)

// Submit validates an order request and hands it to the stored procedure.
// A fresh idempotency key is attached to every attempt so the procedure can
// drop duplicate submissions of the same payload.
func (s *CheckoutService) Submit(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderSubmissionResult, error) {
	if err := validateCreateOrderRequest(req); err != nil {
		return nil, err
	}

	if req.IsPickup {
		loc, err := s.pickupRepo.GetByID(ctx, req.PickupLocationID)
		if err != nil {
			return nil, fmt.Errorf("failed to verify pickup location: %w", err)
		}
		if !loc.Active {
			return nil, fmt.Errorf("pickup location %q is not active", loc.Name)
		}
	}

	payload := struct {
		models.CreateOrderRequest
		IdempotencyKey string `json:"idempotencyKey"`
	}{
		CreateOrderRequest: *req,
		IdempotencyKey:     uuid.NewString(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order payload: %w", err)
	}

	log.Printf("📦 Submitting admin order: pickup=%v items=%d", req.IsPickup, len(req.Items))

	result, err := s.orderRepo.CreateViaProcedure(ctx, body)
	if err != nil {
		s.metrics.OrdersRejected.Inc()
		return nil, err
	}

	s.metrics.OrdersSubmitted.Inc()
	log.Printf("✅ Order %s created (id: %d)", result.OrderNumber, result.OrderID)
	return result, nil
}

func validateCreateOrderRequest(req *models.CreateOrderRequest) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("at least one item is required")
	}
	for _, item := range req.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("item productId is required")
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item quantity must be positive")
		}
	}

	if req.IsPickup {
		if req.PickupLocationID <= 0 {
			return fmt.Errorf("pickupLocationId is required for pickup orders")
		}
		if req.Address != nil {
			return fmt.Errorf("a pickup order cannot carry a shipping address")
		}
		return nil
	}

	if req.Address == nil {
		return fmt.Errorf("a shipping address is required")
	}
	addr := req.Address
	if addr.Street1 == "" || addr.City == "" || addr.State == "" || addr.PostalCode == "" {
		return fmt.Errorf("street1, city, state and postalCode are required")
	}
	if req.SelectedRate == nil {
		return fmt.Errorf("selectedRate is required for shipped orders")
	}
	if req.SelectedRate.CarrierCode == "" || req.SelectedRate.ServiceCode == "" {
		return fmt.Errorf("selectedRate must carry carrierCode and serviceCode")
	}
	return nil
}

// IsInsufficientStock reports whether an order submission failed because the
// stored procedure rejected it for stock
func IsInsufficientStock(err error) bool {
	return err != nil && strings.Contains(err.Error(), "insufficient stock")
}
