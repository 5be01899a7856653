package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/boilermanc/atlurbanfarms-sub005/service"
	"github.com/boilermanc/atlurbanfarms-sub005/utils"
)

// ReportController handles HTTP requests for the weekly sales report
type ReportController struct {
	reportService service.ReportServiceInterface
	loc           *time.Location
}

// NewReportController creates a new ReportController
func NewReportController(reportService service.ReportServiceInterface, loc *time.Location) *ReportController {
	return &ReportController{
		reportService: reportService,
		loc:           loc,
	}
}

// weekBounds resolves the weekStart/weekEnd query parameters, defaulting to
// the most recent full Monday-to-Sunday week when both are absent
func (c *ReportController) weekBounds(r *http.Request) (string, string, error) {
	weekStart := strings.TrimSpace(r.URL.Query().Get("weekStart"))
	weekEnd := strings.TrimSpace(r.URL.Query().Get("weekEnd"))

	if weekStart == "" && weekEnd == "" {
		ws, we := utils.LastFullWeek(time.Now(), c.loc)
		return ws, we, nil
	}
	if weekStart == "" || weekEnd == "" {
		return "", "", fmt.Errorf("weekStart and weekEnd must be provided together")
	}
	return weekStart, weekEnd, nil
}

// GetWeeklyReport handles GET /admin/reports/weekly?weekStart=YYYY-MM-DD&weekEnd=YYYY-MM-DD
// Example response:
// {
//   "weekStart": "2025-03-03",
//   "weekEnd": "2025-03-09",
//   "orders": [
//     {
//       "orderId": "ATL-101042",
//       "orderDate": "2025-03-05T14:00:00Z",
//       "type": "SHIP",
//       "seedlingQty": 4,
//       "otherQty": 0,
//       "orderTotal": "26.5"
//     }
//   ],
//   "totals": {"orderCount": 1, "shipCount": 1, ...}
// }
func (c *ReportController) GetWeeklyReport(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetWeeklyReport: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ GetWeeklyReport: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	weekStart, weekEnd, err := c.weekBounds(r)
	if err != nil {
		log.Printf("❌ GetWeeklyReport: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	rep, err := c.reportService.Generate(ctx, weekStart, weekEnd)
	if err != nil {
		log.Printf("❌ GetWeeklyReport: Error generating report: %v", err)
		if strings.Contains(err.Error(), "invalid week") {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to generate report: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ GetWeeklyReport: Report for %s..%s holds %d orders", weekStart, weekEnd, rep.Totals.OrderCount)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		log.Printf("❌ GetWeeklyReport: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ExportWeeklyReport handles GET /admin/reports/weekly/export?weekStart=YYYY-MM-DD&weekEnd=YYYY-MM-DD
// Responds with the xlsx workbook as a download. With archive=true the
// workbook is also uploaded to the Drive archive folder after the response;
// a failed upload is logged and does not fail the download.
func (c *ReportController) ExportWeeklyReport(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ExportWeeklyReport: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ ExportWeeklyReport: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	weekStart, weekEnd, err := c.weekBounds(r)
	if err != nil {
		log.Printf("❌ ExportWeeklyReport: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	filename, content, err := c.reportService.Export(ctx, weekStart, weekEnd)
	if err != nil {
		log.Printf("❌ ExportWeeklyReport: Error exporting report: %v", err)
		errMsg := err.Error()
		if strings.Contains(errMsg, "no orders found") {
			http.Error(w, errMsg, http.StatusNotFound)
			return
		}
		if strings.Contains(errMsg, "invalid week") {
			http.Error(w, errMsg, http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to export report: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		log.Printf("❌ ExportWeeklyReport: Error writing workbook response: %v", err)
	}

	if strings.EqualFold(r.URL.Query().Get("archive"), "true") {
		fileID, err := c.reportService.Archive(filename, content)
		if err != nil {
			log.Printf("⚠️  ExportWeeklyReport: Archive failed: %v", err)
			return
		}
		log.Printf("✅ ExportWeeklyReport: Archived %s as Drive file %s", filename, fileID)
	}
}
