package service

import (
	"context"
	"time"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
	"github.com/boilermanc/atlurbanfarms-sub005/repository"

	"github.com/shopspring/decimal"
)

// Shared in-memory doubles for the repository and gateway interfaces the
// services depend on.

type fakeOrderRepo struct {
	reportable []models.Order
	pickups    []models.Order
	fetchErr   error

	lastPayload  []byte
	submitResult *models.OrderSubmissionResult
	submitErr    error
}

var _ repository.OrderRepositoryInterface = (*fakeOrderRepo)(nil)

func (f *fakeOrderRepo) FetchReportableInWindow(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	return f.reportable, f.fetchErr
}

func (f *fakeOrderRepo) FetchPickupsInWindow(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	return f.pickups, f.fetchErr
}

func (f *fakeOrderRepo) List(ctx context.Context, params repository.OrderFilterParams) ([]models.OrderListItem, int, error) {
	return nil, 0, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) CreateViaProcedure(ctx context.Context, payload []byte) (*models.OrderSubmissionResult, error) {
	f.lastPayload = payload
	return f.submitResult, f.submitErr
}

type fakeLegacyRepo struct {
	orders   []models.LegacyOrder
	fetchErr error
}

var _ repository.LegacyOrderRepositoryInterface = (*fakeLegacyRepo)(nil)

func (f *fakeLegacyRepo) FetchCompletedInWindow(ctx context.Context, start, end time.Time) ([]models.LegacyOrder, error) {
	return f.orders, f.fetchErr
}

type fakeCarrierRepo struct {
	enabled []models.CarrierConfiguration
	listErr error
}

var _ repository.CarrierConfigurationRepositoryInterface = (*fakeCarrierRepo)(nil)

func (f *fakeCarrierRepo) List(ctx context.Context) ([]models.CarrierConfiguration, error) {
	return f.enabled, f.listErr
}

func (f *fakeCarrierRepo) ListEnabled(ctx context.Context) ([]models.CarrierConfiguration, error) {
	return f.enabled, f.listErr
}

func (f *fakeCarrierRepo) Create(ctx context.Context, req *models.CreateCarrierConfigurationRequest) (*models.CarrierConfiguration, error) {
	return nil, nil
}

func (f *fakeCarrierRepo) Update(ctx context.Context, id int64, req *models.UpdateCarrierConfigurationRequest) (*models.CarrierConfiguration, error) {
	return nil, nil
}

type fakePickupRepo struct {
	location *models.PickupLocation
	getErr   error
}

var _ repository.PickupLocationRepositoryInterface = (*fakePickupRepo)(nil)

func (f *fakePickupRepo) List(ctx context.Context, activeOnly bool) ([]models.PickupLocation, error) {
	return nil, nil
}

func (f *fakePickupRepo) GetByID(ctx context.Context, id int64) (*models.PickupLocation, error) {
	return f.location, f.getErr
}

func (f *fakePickupRepo) Create(ctx context.Context, req *models.CreatePickupLocationRequest) (*models.PickupLocation, error) {
	return nil, nil
}

func (f *fakePickupRepo) Update(ctx context.Context, id int64, req *models.UpdatePickupLocationRequest) (*models.PickupLocation, error) {
	return nil, nil
}

func (f *fakePickupRepo) Deactivate(ctx context.Context, id int64) error {
	return nil
}

type fakeDrive struct {
	uploadedFolder string
	uploadedName   string
	uploadedBytes  []byte
	fileID         string
	uploadErr      error
}

var _ DriveServiceInterface = (*fakeDrive)(nil)

func (f *fakeDrive) UploadReport(folderID, filename string, content []byte) (string, error) {
	f.uploadedFolder = folderID
	f.uploadedName = filename
	f.uploadedBytes = content
	return f.fileID, f.uploadErr
}

type fakeRateShop struct {
	rates    []models.Rate
	fetchErr error
	lastReq  models.RateRequest
}

var _ RateShopClientInterface = (*fakeRateShop)(nil)

func (f *fakeRateShop) FetchRates(ctx context.Context, req models.RateRequest) ([]models.Rate, error) {
	f.lastReq = req
	return f.rates, f.fetchErr
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
