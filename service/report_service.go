package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/boilermanc/atlurbanfarms-sub005/metrics"
	"github.com/boilermanc/atlurbanfarms-sub005/models"
	"github.com/boilermanc/atlurbanfarms-sub005/report"
	"github.com/boilermanc/atlurbanfarms-sub005/repository"

	"golang.org/x/sync/errgroup"
)

// ReportService builds the weekly sales report from the live and legacy order
// tables. Implements ReportServiceInterface.
type ReportService struct {
	orderRepo       repository.OrderRepositoryInterface
	legacyRepo      repository.LegacyOrderRepositoryInterface
	driveService    DriveServiceInterface
	metrics         *metrics.Registry
	loc             *time.Location
	archiveFolderID string
}

// NewReportService creates a new ReportService. driveService may be nil when
// archiving is not configured; Archive then returns an error instead of
// silently dropping the workbook.
func NewReportService(
	orderRepo repository.OrderRepositoryInterface,
	legacyRepo repository.LegacyOrderRepositoryInterface,
	driveService DriveServiceInterface,
	reg *metrics.Registry,
	loc *time.Location,
	archiveFolderID string,
) *ReportService {
	return &ReportService{
		orderRepo:       orderRepo,
		legacyRepo:      legacyRepo,
		driveService:    driveService,
		metrics:         reg,
		loc:             loc,
		archiveFolderID: archiveFolderID,
	}
}

// Ensure ReportService implements ReportServiceInterface
var _ ReportServiceInterface = (*ReportService)(nil)

// Generate fetches both order tables for the requested week, merges them into
// one normalized list and computes the summary totals. Both fetches run
// concurrently; if either fails the whole report fails, never a partial week.
func (s *ReportService) Generate(ctx context.Context, weekStart, weekEnd string) (*models.WeeklyReport, error) {
	started := time.Now()
	s.metrics.ReportRuns.Inc()

	start, end, err := report.Window(weekStart, weekEnd, s.loc)
	if err != nil {
		s.metrics.ReportFailures.Inc()
		return nil, err
	}

	log.Printf("🔍 Generating weekly report for %s through %s", weekStart, weekEnd)

	var legacy []models.LegacyOrder
	var current []models.Order

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		legacy, err = s.legacyRepo.FetchCompletedInWindow(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		current, err = s.orderRepo.FetchReportableInWindow(gctx, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		s.metrics.ReportFailures.Inc()
		return nil, fmt.Errorf("failed to fetch orders for report: %w", err)
	}

	orders := report.Merge(legacy, current)
	totals := report.Totals(orders)

	rep := &models.WeeklyReport{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Orders:    orders,
		Totals:    totals,
	}
	if rep.Empty() {
		rep.Message = "no orders found for this date range"
	}

	s.metrics.ReportOrders.Add(float64(len(orders)))
	s.metrics.ReportLatencySec.Observe(time.Since(started).Seconds())

	log.Printf("✅ Report ready: %d orders (%d legacy, %d current)", len(orders), len(legacy), len(current))
	return rep, nil
}

// Export builds the xlsx workbook for the week and returns its filename and
// raw bytes. An empty week is refused rather than exported as a blank file.
func (s *ReportService) Export(ctx context.Context, weekStart, weekEnd string) (string, []byte, error) {
	rep, err := s.Generate(ctx, weekStart, weekEnd)
	if err != nil {
		return "", nil, err
	}
	if rep.Empty() {
		return "", nil, fmt.Errorf("no orders found for this date range")
	}

	f, err := report.BuildWorkbook(rep)
	if err != nil {
		s.metrics.ReportFailures.Inc()
		return "", nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.metrics.ReportFailures.Inc()
		return "", nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	start, _, err := report.Window(weekStart, weekEnd, s.loc)
	if err != nil {
		return "", nil, err
	}

	s.metrics.ExportsBuilt.Inc()
	return report.WorkbookFilename(start), buf.Bytes(), nil
}

// Archive uploads an exported workbook to the configured Google Drive folder
// and returns the Drive file ID.
func (s *ReportService) Archive(filename string, content []byte) (string, error) {
	if s.driveService == nil {
		return "", fmt.Errorf("report archiving is not configured")
	}
	if s.archiveFolderID == "" {
		return "", fmt.Errorf("REPORT_DRIVE_FOLDER_ID is not set")
	}

	fileID, err := s.driveService.UploadReport(s.archiveFolderID, filename, content)
	if err != nil {
		s.metrics.ArchiveFailures.Inc()
		return "", fmt.Errorf("failed to archive report: %w", err)
	}

	s.metrics.ArchiveUploads.Inc()
	return fileID, nil
}
