package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
	"github.com/boilermanc/atlurbanfarms-sub005/repository"
)

// CarrierController handles HTTP requests for carrier configurations
type CarrierController struct {
	carrierRepo repository.CarrierConfigurationRepositoryInterface
}

// NewCarrierController creates a new CarrierController
func NewCarrierController(carrierRepo repository.CarrierConfigurationRepositoryInterface) *CarrierController {
	return &CarrierController{carrierRepo: carrierRepo}
}

// ListCarriers handles GET /admin/carriers
// Example response:
// [
//   {
//     "id": 1,
//     "carrierCode": "usps",
//     "displayName": "USPS",
//     "markupPercent": "10",
//     "handlingFee": "1.50",
//     "enabled": true
//   }
// ]
func (c *CarrierController) ListCarriers(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListCarriers: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ ListCarriers: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	carriers, err := c.carrierRepo.List(ctx)
	if err != nil {
		log.Printf("❌ ListCarriers: Error listing carriers: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list carriers: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ListCarriers: Returning %d carrier configurations", len(carriers))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(carriers); err != nil {
		log.Printf("❌ ListCarriers: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// CreateCarrier handles POST /admin/carriers
// Example request:
// {"carrierCode": "ups", "displayName": "UPS", "markupPercent": "12.5", "handlingFee": "2.00", "enabled": true}
func (c *CarrierController) CreateCarrier(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateCarrier: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ CreateCarrier: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateCarrierConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateCarrier: Error decoding request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	carrier, err := c.carrierRepo.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateCarrier: Error creating carrier: %v", err)
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "already exists"):
			http.Error(w, errMsg, http.StatusConflict)
		case strings.Contains(errMsg, "is required") || strings.Contains(errMsg, "must not be negative"):
			http.Error(w, errMsg, http.StatusBadRequest)
		default:
			http.Error(w, fmt.Sprintf("Failed to create carrier: %v", err), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("✅ CreateCarrier: Created carrier %s (id %d)", carrier.CarrierCode, carrier.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(carrier); err != nil {
		log.Printf("❌ CreateCarrier: Error encoding response: %v", err)
	}
}

// UpdateCarrier handles PUT /admin/carriers/{id}
// Accepts partial updates; absent fields keep their stored values.
// Example request: {"markupPercent": "15", "enabled": false}
func (c *CarrierController) UpdateCarrier(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateCarrier: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPut {
		log.Printf("❌ UpdateCarrier: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /admin/carriers/{id}
	path := strings.TrimPrefix(r.URL.Path, "/admin/carriers/")
	if path == "" {
		http.Error(w, "carrier id parameter is required", http.StatusBadRequest)
		return
	}
	if strings.Contains(path, "/") {
		http.Error(w, "invalid path format", http.StatusBadRequest)
		return
	}

	carrierID, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		log.Printf("❌ UpdateCarrier: Invalid carrier id: %s", path)
		http.Error(w, "invalid carrier id parameter", http.StatusBadRequest)
		return
	}

	var req models.UpdateCarrierConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateCarrier: Error decoding request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	carrier, err := c.carrierRepo.Update(ctx, carrierID, &req)
	if err != nil {
		log.Printf("❌ UpdateCarrier: Error updating carrier %d: %v", carrierID, err)
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "not found"):
			http.Error(w, errMsg, http.StatusNotFound)
		case strings.Contains(errMsg, "no fields to update") || strings.Contains(errMsg, "must not be negative"):
			http.Error(w, errMsg, http.StatusBadRequest)
		default:
			http.Error(w, fmt.Sprintf("Failed to update carrier: %v", err), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("✅ UpdateCarrier: Updated carrier %s (id %d)", carrier.CarrierCode, carrier.ID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(carrier); err != nil {
		log.Printf("❌ UpdateCarrier: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
