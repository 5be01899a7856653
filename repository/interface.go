package repository

import (
	"context"
	"time"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
)

// OrderRepositoryInterface defines the contract for live order repository operations
type OrderRepositoryInterface interface {
	FetchReportableInWindow(ctx context.Context, start, end time.Time) ([]models.Order, error)
	FetchPickupsInWindow(ctx context.Context, start, end time.Time) ([]models.Order, error)
	List(ctx context.Context, params OrderFilterParams) ([]models.OrderListItem, int, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error)
	CreateViaProcedure(ctx context.Context, payload []byte) (*models.OrderSubmissionResult, error)
}

// LegacyOrderRepositoryInterface defines the contract for legacy order repository operations
type LegacyOrderRepositoryInterface interface {
	FetchCompletedInWindow(ctx context.Context, start, end time.Time) ([]models.LegacyOrder, error)
}

// CarrierConfigurationRepositoryInterface defines the contract for carrier configuration repository operations
type CarrierConfigurationRepositoryInterface interface {
	List(ctx context.Context) ([]models.CarrierConfiguration, error)
	ListEnabled(ctx context.Context) ([]models.CarrierConfiguration, error)
	Create(ctx context.Context, req *models.CreateCarrierConfigurationRequest) (*models.CarrierConfiguration, error)
	Update(ctx context.Context, id int64, req *models.UpdateCarrierConfigurationRequest) (*models.CarrierConfiguration, error)
}

// SettingsRepositoryInterface defines the contract for store settings repository operations
type SettingsRepositoryInterface interface {
	List(ctx context.Context) ([]models.StoreSetting, error)
	Get(ctx context.Context, key string) (*models.StoreSetting, error)
	Upsert(ctx context.Context, req *models.UpsertSettingRequest) (*models.StoreSetting, error)
}

// PickupLocationRepositoryInterface defines the contract for pickup location repository operations
type PickupLocationRepositoryInterface interface {
	List(ctx context.Context, activeOnly bool) ([]models.PickupLocation, error)
	GetByID(ctx context.Context, id int64) (*models.PickupLocation, error)
	Create(ctx context.Context, req *models.CreatePickupLocationRequest) (*models.PickupLocation, error)
	Update(ctx context.Context, id int64, req *models.UpdatePickupLocationRequest) (*models.PickupLocation, error)
	Deactivate(ctx context.Context, id int64) error
}
