package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
	"github.com/boilermanc/atlurbanfarms-sub005/repository"
)

// SettingsController handles HTTP requests for store settings
type SettingsController struct {
	settingsRepo repository.SettingsRepositoryInterface
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsRepo repository.SettingsRepositoryInterface) *SettingsController {
	return &SettingsController{settingsRepo: settingsRepo}
}

// ListSettings handles GET /admin/settings
// Example response:
// [
//   {"key": "store_name", "value": "Atlanta Urban Farms", "updatedAt": "2025-03-01T09:00:00Z"},
//   {"key": "pickup_instructions", "value": "Come to the green tent", "updatedAt": "2025-03-02T10:30:00Z"}
// ]
func (c *SettingsController) ListSettings(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListSettings: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ ListSettings: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	settings, err := c.settingsRepo.List(ctx)
	if err != nil {
		log.Printf("❌ ListSettings: Error listing settings: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list settings: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ ListSettings: Returning %d settings", len(settings))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(settings); err != nil {
		log.Printf("❌ ListSettings: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetSetting handles GET /admin/settings/{key}
func (c *SettingsController) GetSetting(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetSetting: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ GetSetting: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Path format: /admin/settings/{key}
	key := strings.TrimPrefix(r.URL.Path, "/admin/settings/")
	if key == "" {
		http.Error(w, "setting key parameter is required", http.StatusBadRequest)
		return
	}
	if strings.Contains(key, "/") {
		http.Error(w, "invalid path format", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	setting, err := c.settingsRepo.Get(ctx, key)
	if err != nil {
		log.Printf("❌ GetSetting: Error fetching setting %s: %v", key, err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch setting: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ GetSetting: Returning setting %s", setting.Key)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(setting); err != nil {
		log.Printf("❌ GetSetting: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// UpsertSetting handles PUT /admin/settings
// Creates the setting when the key is new, replaces the value otherwise.
// Example request: {"key": "pickup_instructions", "value": "Come to the green tent"}
func (c *SettingsController) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpsertSetting: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPut {
		log.Printf("❌ UpsertSetting: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.UpsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpsertSetting: Error decoding request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	setting, err := c.settingsRepo.Upsert(ctx, &req)
	if err != nil {
		log.Printf("❌ UpsertSetting: Error upserting setting: %v", err)
		if strings.Contains(err.Error(), "is required") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to upsert setting: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ UpsertSetting: Stored setting %s", setting.Key)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(setting); err != nil {
		log.Printf("❌ UpsertSetting: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
