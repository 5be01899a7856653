package router

import (
	"net/http"
	"strings"

	"github.com/boilermanc/atlurbanfarms-sub005/app/controller"
	"github.com/boilermanc/atlurbanfarms-sub005/app/middleware"
)

type Controllers struct {
	Report         *controller.ReportController
	Order          *controller.OrderController
	Carrier        *controller.CarrierController
	Settings       *controller.SettingsController
	PickupLocation *controller.PickupLocationController
	Manifest       *controller.ManifestController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes wires the public endpoints onto the default mux and every
// /admin route onto a dedicated mux behind the admin JWT guard
func SetupRoutes(controllers *Controllers, adminSecret string, metricsHandler http.Handler) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Prometheus metrics
	http.Handle("/metrics", metricsHandler)

	adminMux := http.NewServeMux()

	// Weekly report routes
	adminMux.HandleFunc("/admin/reports/weekly", controllers.Report.GetWeeklyReport)
	adminMux.HandleFunc("/admin/reports/weekly/export", controllers.Report.ExportWeeklyReport)

	// Order routes
	adminMux.HandleFunc("/admin/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Order.ListOrders(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Order.CreateOrder(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Shipping rate quotes for the order form
	adminMux.HandleFunc("/admin/orders/rates", controllers.Order.QuoteRates)

	// Order by ID - detail and status transitions
	adminMux.HandleFunc("/admin/orders/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/status") {
			controllers.Order.UpdateOrderStatus(w, r)
			return
		}
		if r.Method == http.MethodGet {
			controllers.Order.GetOrder(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Carrier configuration routes
	adminMux.HandleFunc("/admin/carriers", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Carrier.ListCarriers(w, r)
		} else if r.Method == http.MethodPost {
			controllers.Carrier.CreateCarrier(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	adminMux.HandleFunc("/admin/carriers/", controllers.Carrier.UpdateCarrier)

	// Store settings routes
	adminMux.HandleFunc("/admin/settings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Settings.ListSettings(w, r)
		} else if r.Method == http.MethodPut {
			controllers.Settings.UpsertSetting(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	adminMux.HandleFunc("/admin/settings/", controllers.Settings.GetSetting)

	// Pickup location routes
	adminMux.HandleFunc("/admin/pickup-locations", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.PickupLocation.ListPickupLocations(w, r)
		} else if r.Method == http.MethodPost {
			controllers.PickupLocation.CreatePickupLocation(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	adminMux.HandleFunc("/admin/pickup-locations/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/deactivate") {
			controllers.PickupLocation.DeactivatePickupLocation(w, r)
			return
		}
		if r.Method == http.MethodPut {
			controllers.PickupLocation.UpdatePickupLocation(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Pickup manifest for a collection day
	adminMux.HandleFunc("/admin/manifests/pickup", controllers.Manifest.GetPickupManifest)

	// Every admin route sits behind the JWT guard
	http.Handle("/admin/", middleware.AdminAuth(adminSecret, adminMux))
}
