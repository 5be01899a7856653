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

// PickupLocationController handles HTTP requests for pickup locations
type PickupLocationController struct {
	pickupRepo repository.PickupLocationRepositoryInterface
}

// NewPickupLocationController creates a new PickupLocationController
func NewPickupLocationController(pickupRepo repository.PickupLocationRepositoryInterface) *PickupLocationController {
	return &PickupLocationController{pickupRepo: pickupRepo}
}

// ListPickupLocations handles GET /admin/pickup-locations?active=true
// Example response:
// [
//   {
//     "id": 2,
//     "name": "Grant Park Market",
//     "addressLine1": "600 Cherokee Ave SE",
//     "city": "Atlanta",
//     "state": "GA",
//     "active": true
//   }
// ]
func (c *PickupLocationController) ListPickupLocations(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListPickupLocations: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ ListPickupLocations: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	activeOnly := strings.EqualFold(r.URL.Query().Get("active"), "true")

	ctx := context.Background()
	locations, err := c.pickupRepo.List(ctx, activeOnly)
	if err != nil {
		log.Printf("❌ ListPickupLocations: Error listing pickup locations: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list pickup locations: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ListPickupLocations: Returning %d pickup locations", len(locations))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(locations); err != nil {
		log.Printf("❌ ListPickupLocations: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// CreatePickupLocation handles POST /admin/pickup-locations
// Example request:
// {"name": "Grant Park Market", "addressLine1": "600 Cherokee Ave SE",
//  "city": "Atlanta", "state": "GA", "postalCode": "30312", "instructions": "Green tent by the north gate"}
func (c *PickupLocationController) CreatePickupLocation(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreatePickupLocation: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ CreatePickupLocation: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreatePickupLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreatePickupLocation: Error decoding request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	location, err := c.pickupRepo.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreatePickupLocation: Error creating pickup location: %v", err)
		if strings.Contains(err.Error(), "required") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to create pickup location: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ CreatePickupLocation: Created pickup location %s (id %d)", location.Name, location.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(location); err != nil {
		log.Printf("❌ CreatePickupLocation: Error encoding response: %v", err)
	}
}

// UpdatePickupLocation handles PUT /admin/pickup-locations/{id}
// Accepts partial updates; absent fields keep their stored values.
func (c *PickupLocationController) UpdatePickupLocation(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdatePickupLocation: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPut {
		log.Printf("❌ UpdatePickupLocation: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /admin/pickup-locations/{id}
	path := strings.TrimPrefix(r.URL.Path, "/admin/pickup-locations/")
	if path == "" {
		http.Error(w, "pickup location id parameter is required", http.StatusBadRequest)
		return
	}
	if strings.Contains(path, "/") {
		http.Error(w, "invalid path format", http.StatusBadRequest)
		return
	}

	locationID, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		log.Printf("❌ UpdatePickupLocation: Invalid pickup location id: %s", path)
		http.Error(w, "invalid pickup location id parameter", http.StatusBadRequest)
		return
	}

	var req models.UpdatePickupLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdatePickupLocation: Error decoding request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	location, err := c.pickupRepo.Update(ctx, locationID, &req)
	if err != nil {
		log.Printf("❌ UpdatePickupLocation: Error updating pickup location %d: %v", locationID, err)
		errMsg := err.Error()
		switch {
		case strings.Contains(errMsg, "not found"):
			http.Error(w, errMsg, http.StatusNotFound)
		case strings.Contains(errMsg, "no fields to update"):
			http.Error(w, errMsg, http.StatusBadRequest)
		default:
			http.Error(w, fmt.Sprintf("Failed to update pickup location: %v", err), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("✅ UpdatePickupLocation: Updated pickup location %s (id %d)", location.Name, location.ID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(location); err != nil {
		log.Printf("❌ UpdatePickupLocation: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// DeactivatePickupLocation handles POST /admin/pickup-locations/{id}/deactivate
// Deactivated locations stay on past orders but stop accepting new ones.
func (c *PickupLocationController) DeactivatePickupLocation(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeactivatePickupLocation: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ DeactivatePickupLocation: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /admin/pickup-locations/{id}/deactivate
	path := strings.TrimPrefix(r.URL.Path, "/admin/pickup-locations/")
	if path == "" {
		http.Error(w, "pickup location id parameter is required", http.StatusBadRequest)
		return
	}

	idStr := strings.TrimSuffix(path, "/deactivate")
	if idStr == path {
		http.Error(w, "invalid path format", http.StatusBadRequest)
		return
	}

	locationID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Printf("❌ DeactivatePickupLocation: Invalid pickup location id: %s", idStr)
		http.Error(w, "invalid pickup location id parameter", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	if err := c.pickupRepo.Deactivate(ctx, locationID); err != nil {
		log.Printf("❌ DeactivatePickupLocation: Error deactivating pickup location %d: %v", locationID, err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to deactivate pickup location: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ DeactivatePickupLocation: Deactivated pickup location %d", locationID)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "deactivated"}); err != nil {
		log.Printf("❌ DeactivatePickupLocation: Error encoding response: %v", err)
	}
}
