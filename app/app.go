package app

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/boilermanc/atlurbanfarms-sub005/app/controller"
	"github.com/boilermanc/atlurbanfarms-sub005/app/router"
	"github.com/boilermanc/atlurbanfarms-sub005/db"
	"github.com/boilermanc/atlurbanfarms-sub005/metrics"
	"github.com/boilermanc/atlurbanfarms-sub005/repository"
	"github.com/boilermanc/atlurbanfarms-sub005/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Reports and manifests resolve calendar days in this timezone
	loc := time.UTC
	if tz := os.Getenv("REPORT_TZ"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("invalid REPORT_TZ %q: %w", tz, err)
		}
		loc = parsed
	}

	adminSecret := os.Getenv("ADMIN_JWT_SECRET")
	if adminSecret == "" {
		return fmt.Errorf("ADMIN_JWT_SECRET environment variable is not set")
	}

	rateshopURL := os.Getenv("RATESHOP_URL")
	if rateshopURL == "" {
		return fmt.Errorf("RATESHOP_URL environment variable is not set")
	}

	// Drive archiving is optional; without credentials the export endpoint
	// still works, only archive=true is refused
	var driveService service.DriveServiceInterface
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS is not set, report archiving is disabled")
	} else {
		ds, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return err
		}
		driveService = ds
	}
	archiveFolderID := os.Getenv("REPORT_DRIVE_FOLDER_ID")

	registry := metrics.NewRegistry()

	// Initialize repositories
	orderRepo := repository.NewOrderRepository()
	legacyOrderRepo := repository.NewLegacyOrderRepository()
	carrierRepo := repository.NewCarrierConfigurationRepository()
	settingsRepo := repository.NewSettingsRepository()
	pickupLocationRepo := repository.NewPickupLocationRepository()

	// Initialize services
	reportService := service.NewReportService(orderRepo, legacyOrderRepo, driveService, registry, loc, archiveFolderID)
	rateShopClient := service.NewRateShopClient(rateshopURL)
	rateService := service.NewRateService(rateShopClient, carrierRepo, registry)
	checkoutService := service.NewCheckoutService(orderRepo, pickupLocationRepo, registry)
	manifestService := service.NewManifestService(orderRepo, loc)

	// Create controllers
	controllers := &router.Controllers{
		Report:         controller.NewReportController(reportService, loc),
		Order:          controller.NewOrderController(orderRepo, checkoutService, rateService, loc),
		Carrier:        controller.NewCarrierController(carrierRepo),
		Settings:       controller.NewSettingsController(settingsRepo),
		PickupLocation: controller.NewPickupLocationController(pickupLocationRepo),
		Manifest:       controller.NewManifestController(manifestService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers, adminSecret, registry.Handler())

	return nil
}
