package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/boilermanc/atlurbanfarms-sub005/db"
	"github.com/boilermanc/atlurbanfarms-sub005/metrics"
	"github.com/boilermanc/atlurbanfarms-sub005/report"
	"github.com/boilermanc/atlurbanfarms-sub005/repository"
	"github.com/boilermanc/atlurbanfarms-sub005/service"
	"github.com/boilermanc/atlurbanfarms-sub005/utils"
)

var (
	weekStart string
	weekEnd   string
	outPath   string
	archive   bool
)

var rootCmd = &cobra.Command{
	Use:   "weeklyreport",
	Short: "Generate the weekly sales workbook",
	Long: `Generates the weekly sales report as an xlsx workbook, merging the
live orders table with the legacy archive.

Without flags the report covers the most recent full Monday-to-Sunday week.

Example:
  weeklyreport --week-start 2025-03-03 --week-end 2025-03-09 --out /tmp/report.xlsx`,
	RunE:          runReport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&weekStart, "week-start", "", "First day of the report week (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&weekEnd, "week-end", "", "Last day of the report week (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&outPath, "out", "", "Output path for the workbook (default: report filename in the current directory)")
	rootCmd.Flags().BoolVar(&archive, "archive", false, "Also upload the workbook to the Drive archive folder")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	// Load .env file in development, same as the server
	if os.Getenv("ENV") != "production" {
		if err := godotenv.Overload(".env"); err == nil {
			log.Printf("Loaded environment variables from .env")
		}
	}

	if (weekStart == "") != (weekEnd == "") {
		return fmt.Errorf("--week-start and --week-end must be provided together")
	}

	loc := time.UTC
	if tz := os.Getenv("REPORT_TZ"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("invalid REPORT_TZ %q: %w", tz, err)
		}
		loc = parsed
	}

	if weekStart == "" {
		weekStart, weekEnd = utils.LastFullWeek(time.Now(), loc)
		log.Printf("Defaulting to last full week %s..%s", weekStart, weekEnd)
	}

	start, _, err := report.Window(weekStart, weekEnd, loc)
	if err != nil {
		return err
	}

	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.CloseDB()

	var driveService service.DriveServiceInterface
	if archive {
		credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsPath == "" {
			return fmt.Errorf("--archive requires GOOGLE_APPLICATION_CREDENTIALS to be set")
		}
		ds, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return err
		}
		driveService = ds
	}

	reportService := service.NewReportService(
		repository.NewOrderRepository(),
		repository.NewLegacyOrderRepository(),
		driveService,
		metrics.NewRegistry(),
		loc,
		os.Getenv("REPORT_DRIVE_FOLDER_ID"),
	)

	ctx := context.Background()
	rep, err := reportService.Generate(ctx, weekStart, weekEnd)
	if err != nil {
		return err
	}

	if rep.Empty() {
		fmt.Printf("No orders between %s and %s, nothing to write\n", weekStart, weekEnd)
		return nil
	}

	f, err := report.BuildWorkbook(rep)
	if err != nil {
		return fmt.Errorf("failed to build workbook: %w", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("failed to serialize workbook: %w", err)
	}

	filename := report.WorkbookFilename(start)
	target := outPath
	if target == "" {
		target = filename
	}
	if err := os.MkdirAll(filepath.Dir(filepath.Clean(target)), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	fmt.Printf("Wrote %s (%d orders)\n", target, rep.Totals.OrderCount)

	if archive {
		fileID, err := reportService.Archive(filename, buf.Bytes())
		if err != nil {
			return err
		}
		fmt.Printf("Archived as Drive file %s\n", fileID)
	}

	return nil
}
