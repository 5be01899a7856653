package service

import (
	"context"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
)

// ReportServiceInterface defines the contract for weekly report operations
type ReportServiceInterface interface {
	Generate(ctx context.Context, weekStart, weekEnd string) (*models.WeeklyReport, error)
	// Export builds the xlsx workbook for the week and returns its filename
	// and raw bytes.
	Export(ctx context.Context, weekStart, weekEnd string) (string, []byte, error)
	Archive(filename string, content []byte) (string, error)
}
