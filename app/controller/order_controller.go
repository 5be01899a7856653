package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
	"github.com/boilermanc/atlurbanfarms-sub005/repository"
	"github.com/boilermanc/atlurbanfarms-sub005/service"
)

// OrderController handles HTTP requests for admin order operations
type OrderController struct {
	orderRepo       repository.OrderRepositoryInterface
	checkoutService service.CheckoutServiceInterface
	rateService     service.RateServiceInterface
	loc             *time.Location
}

// NewOrderController creates a new OrderController
func NewOrderController(
	orderRepo repository.OrderRepositoryInterface,
	checkoutService service.CheckoutServiceInterface,
	rateService service.RateServiceInterface,
	loc *time.Location,
) *OrderController {
	return &OrderController{
		orderRepo:       orderRepo,
		checkoutService: checkoutService,
		rateService:     rateService,
		loc:             loc,
	}
}

// ListOrders handles GET /admin/orders?status=paid&q=dana&from=2025-03-01&to=2025-03-09&limit=50&offset=0
// The from/to dates are inclusive calendar days in the report timezone.
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
//       "itemCount": 3
//     }
//   ],
//   "total": 128
// }
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListOrders: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ ListOrders: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := repository.OrderFilterParams{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Query:  strings.TrimSpace(r.URL.Query().Get("q")),
	}

	if from := r.URL.Query().Get("from"); from != "" {
		parsed, err := time.ParseInLocation("2006-01-02", from, c.loc)
		if err != nil {
			log.Printf("❌ ListOrders: Invalid from date: %s", from)
			http.Error(w, fmt.Sprintf("invalid from date %q, expected YYYY-MM-DD", from), http.StatusBadRequest)
			return
		}
		params.From = &parsed
	}
	if to := r.URL.Query().Get("to"); to != "" {
		parsed, err := time.ParseInLocation("2006-01-02", to, c.loc)
		if err != nil {
			log.Printf("❌ ListOrders: Invalid to date: %s", to)
			http.Error(w, fmt.Sprintf("invalid to date %q, expected YYYY-MM-DD", to), http.StatusBadRequest)
			return
		}
		// Inclusive end day: filter below the following midnight
		end := parsed.AddDate(0, 0, 1)
		params.To = &end
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			http.Error(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		params.Limit = parsed
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		parsed, err := strconv.Atoi(offset)
		if err != nil {
			http.Error(w, "invalid offset parameter", http.StatusBadRequest)
			return
		}
		params.Offset = parsed
	}

	ctx := context.Background()
	orders, total, err := c.orderRepo.List(ctx, params)
	if err != nil {
		log.Printf("❌ ListOrders: Error listing orders: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list orders: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ListOrders: Returning %d of %d orders", len(orders), total)

	response := models.OrderListResponse{
		Orders: orders,
		Total:  total,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ ListOrders: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// CreateOrder handles POST /admin/orders
// Submits the order through the inventory-checked stored procedure. An
// insufficient-stock rejection maps to 409.
// Example request:
// {"customerEmail": "dana@example.com", "isPickup": true, "pickupLocationId": 2,
//  "items": [{"productId": 11, "quantity": 6}]}
// Example response: {"orderId": 1043, "orderNumber": "ATL-101043"}
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateOrder: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ CreateOrder: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateOrder: Error decoding request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	result, err := c.checkoutService.Submit(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateOrder: Error submitting order: %v", err)
		errMsg := err.Error()
		switch {
		case service.IsInsufficientStock(err):
			http.Error(w, errMsg, http.StatusConflict)
		case strings.Contains(errMsg, "required") ||
			strings.Contains(errMsg, "must be") ||
			strings.Contains(errMsg, "cannot carry") ||
			strings.Contains(errMsg, "must carry") ||
			strings.Contains(errMsg, "is not active"):
			http.Error(w, errMsg, http.StatusBadRequest)
		case strings.Contains(errMsg, "not found"):
			http.Error(w, errMsg, http.StatusBadRequest)
		default:
			http.Error(w, fmt.Sprintf("Failed to create order: %v", err), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("✅ CreateOrder: Created order %s (id %d)", result.OrderNumber, result.OrderID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("❌ CreateOrder: Error encoding response: %v", err)
	}
}

// QuoteRates handles POST /admin/orders/rates
// Fetches live rates for a destination, dedupes them per carrier service,
// applies the configured markup and handling fee, and returns them cheapest
// first.
// Example request:
// {"address": {"firstName": "Dana", "lastName": "Whitfield", "street1": "12 Vine St",
//              "city": "Decatur", "state": "GA", "postalCode": "30030"},
//  "items": [{"productId": 11, "quantity": 6}]}
// Example response:
// {"rates": [{"carrierCode": "usps", "carrierName": "USPS", "serviceCode": "priority",
//             "serviceName": "Priority Mail", "amount": "7.20", "total": "8.65", "estimatedDays": 2}]}
func (c *OrderController) QuoteRates(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 QuoteRates: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ QuoteRates: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ QuoteRates: Error decoding request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	rates, err := c.rateService.QuoteRates(ctx, &req)
	if err != nil {
		log.Printf("❌ QuoteRates: Error quoting rates: %v", err)
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "failed to fetch rates"):
			http.Error(w, errMsg, http.StatusBadGateway)
		case strings.Contains(errMsg, "required") || strings.Contains(errMsg, "must be"):
			http.Error(w, errMsg, http.StatusBadRequest)
		default:
			http.Error(w, fmt.Sprintf("Failed to quote rates: %v", err), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("✅ QuoteRates: Returning %d rates", len(rates))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.RateResponse{Rates: rates}); err != nil {
		log.Printf("❌ QuoteRates: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetOrder handles GET /admin/orders/{id}
// Returns the order with its line items.
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetOrder: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ GetOrder: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /admin/orders/{id}
	path := strings.TrimPrefix(r.URL.Path, "/admin/orders/")
	if path == "" {
		http.Error(w, "order id parameter is required", http.StatusBadRequest)
		return
	}
	if strings.Contains(path, "/") {
		http.Error(w, "invalid path format", http.StatusBadRequest)
		return
	}

	orderID, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		log.Printf("❌ GetOrder: Invalid order id: %s", path)
		http.Error(w, "invalid order id parameter", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	order, err := c.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("❌ GetOrder: Error fetching order %d: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch order: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ GetOrder: Returning order %s", order.OrderNumber)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.OrderDetailResponse{Order: *order}); err != nil {
		log.Printf("❌ GetOrder: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// UpdateOrderStatus handles PUT /admin/orders/{id}/status
// Example request: {"status": "ready_for_pickup"}
func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateOrderStatus: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPut {
		log.Printf("❌ UpdateOrderStatus: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /admin/orders/{id}/status
	path := strings.TrimPrefix(r.URL.Path, "/admin/orders/")
	if path == "" {
		http.Error(w, "order id parameter is required", http.StatusBadRequest)
		return
	}

	idStr := strings.TrimSuffix(path, "/status")
	if idStr == path {
		http.Error(w, "invalid path format", http.StatusBadRequest)
		return
	}

	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Printf("❌ UpdateOrderStatus: Invalid order id: %s", idStr)
		http.Error(w, "invalid order id parameter", http.StatusBadRequest)
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateOrderStatus: Error decoding request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	order, err := c.orderRepo.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		log.Printf("❌ UpdateOrderStatus: Error updating order %d: %v", orderID, err)
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "invalid status"):
			http.Error(w, errMsg, http.StatusBadRequest)
		case strings.Contains(errMsg, "not found"):
			http.Error(w, errMsg, http.StatusNotFound)
		default:
			http.Error(w, fmt.Sprintf("Failed to update order status: %v", err), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("✅ UpdateOrderStatus: Order %s is now %s", order.OrderNumber, order.Status)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(models.OrderDetailResponse{Order: *order}); err != nil {
		log.Printf("❌ UpdateOrderStatus: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
