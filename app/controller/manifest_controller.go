package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/boilermanc/atlurbanfarms-sub005/service"
)

// ManifestController handles HTTP requests for the pickup manifest
type ManifestController struct {
	manifestService service.ManifestServiceInterface
}

// NewManifestController creates a new ManifestController
func NewManifestController(manifestService service.ManifestServiceInterface) *ManifestController {
	return &ManifestController{manifestService: manifestService}
}

// GetPickupManifest handles GET /admin/manifests/pickup?date=2025-03-05&format=pdf
// Renders the pick list for one collection day, grouped by pickup location.
// format=html returns the printable page itself; the default is a PDF
// download produced by headless Chrome.
func (c *ManifestController) GetPickupManifest(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetPickupManifest: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ GetPickupManifest: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		http.Error(w, "date parameter is required", http.StatusBadRequest)
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "pdf"
	}
	if format != "html" && format != "pdf" {
		http.Error(w, "format must be html or pdf", http.StatusBadRequest)
		return
	}

	ctx := context.Background()

	if format == "html" {
		html, err := c.manifestService.RenderHTML(ctx, date)
		if err != nil {
			log.Printf("❌ GetPickupManifest: Error rendering manifest: %v", err)
			if strings.Contains(err.Error(), "invalid date") {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, fmt.Sprintf("Failed to render manifest: %v", err), http.StatusInternalServerError)
			return
		}

		log.Printf("✅ GetPickupManifest: Rendered manifest HTML for %s", date)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(html)); err != nil {
			log.Printf("❌ GetPickupManifest: Error writing response: %v", err)
		}
		return
	}

	pdf, err := c.manifestService.GeneratePDF(ctx, date)
	if err != nil {
		log.Printf("❌ GetPickupManifest: Error generating manifest PDF: %v", err)
		if strings.Contains(err.Error(), "invalid date") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to generate manifest PDF: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ GetPickupManifest: Generated manifest PDF for %s (%d bytes)", date, len(pdf))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"pickup_manifest_%s.pdf\"", date))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("❌ GetPickupManifest: Error writing PDF response: %v", err)
	}
}
