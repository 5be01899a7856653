package controller

import (
	"context"
	"time"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
	"github.com/boilermanc/atlurbanfarms-sub005/repository"
	"github.com/boilermanc/atlurbanfarms-sub005/service"
)

// fakeReportService implements service.ReportServiceInterface
type fakeReportService struct {
	report        *models.WeeklyReport
	generateErr   error
	exportName    string
	exportBytes   []byte
	exportErr     error
	archiveID     string
	archiveErr    error
	lastWeekStart string
	lastWeekEnd   string
	archivedName  string
	archivedBytes []byte
}

func (f *fakeReportService) Generate(ctx context.Context, weekStart, weekEnd string) (*models.WeeklyReport, error) {
	f.lastWeekStart = weekStart
	f.lastWeekEnd = weekEnd
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.report, nil
}

func (f *fakeReportService) Export(ctx context.Context, weekStart, weekEnd string) (string, []byte, error) {
	f.lastWeekStart = weekStart
	f.lastWeekEnd = weekEnd
	if f.exportErr != nil {
		return "", nil, f.exportErr
	}
	return f.exportName, f.exportBytes, nil
}

func (f *fakeReportService) Archive(filename string, content []byte) (string, error) {
	f.archivedName = filename
	f.archivedBytes = content
	if f.archiveErr != nil {
		return "", f.archiveErr
	}
	return f.archiveID, nil
}

var _ service.ReportServiceInterface = (*fakeReportService)(nil)

// fakeCheckoutService implements service.CheckoutServiceInterface
type fakeCheckoutService struct {
	result  *models.OrderSubmissionResult
	err     error
	lastReq *models.CreateOrderRequest
}

func (f *fakeCheckoutService) Submit(ctx context.Context, req *models.CreateOrderRequest) (*models.OrderSubmissionResult, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

var _ service.CheckoutServiceInterface = (*fakeCheckoutService)(nil)

// fakeRateService implements service.RateServiceInterface
type fakeRateService struct {
	rates   []models.Rate
	err     error
	lastReq *models.RateRequest
}

func (f *fakeRateService) QuoteRates(ctx context.Context, req *models.RateRequest) ([]models.Rate, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.rates, nil
}

var _ service.RateServiceInterface = (*fakeRateService)(nil)

// fakeManifestService implements service.ManifestServiceInterface
type fakeManifestService struct {
	html     string
	htmlErr  error
	pdf      []byte
	pdfErr   error
	lastDate string
}

func (f *fakeManifestService) RenderHTML(ctx context.Context, date string) (string, error) {
	f.lastDate = date
	if f.htmlErr != nil {
		return "", f.htmlErr
	}
	return f.html, nil
}

func (f *fakeManifestService) GeneratePDF(ctx context.Context, date string) ([]byte, error) {
	f.lastDate = date
	if f.pdfErr != nil {
		return nil, f.pdfErr
	}
	return f.pdf, nil
}

var _ service.ManifestServiceInterface = (*fakeManifestService)(nil)

// fakeOrderRepo implements repository.OrderRepositoryInterface
type fakeOrderRepo struct {
	listItems  []models.OrderListItem
	listTotal  int
	listErr    error
	lastParams repository.OrderFilterParams
	order      *models.Order
	getErr     error
	updated    *models.Order
	updateErr  error
	lastStatus string
	lastID     int64
}

func (f *fakeOrderRepo) FetchReportableInWindow(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) FetchPickupsInWindow(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, params repository.OrderFilterParams) ([]models.OrderListItem, int, error) {
	f.lastParams = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listItems, f.listTotal, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	f.lastID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.order, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error) {
	f.lastID = id
	f.lastStatus = status
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeOrderRepo) CreateViaProcedure(ctx context.Context, payload []byte) (*models.OrderSubmissionResult, error) {
	return nil, nil
}

var _ repository.OrderRepositoryInterface = (*fakeOrderRepo)(nil)

// fakeCarrierRepo implements repository.CarrierConfigurationRepositoryInterface
type fakeCarrierRepo struct {
	carriers  []models.CarrierConfiguration
	listErr   error
	created   *models.CarrierConfiguration
	createErr error
	updated   *models.CarrierConfiguration
	updateErr error
	lastID    int64
}

func (f *fakeCarrierRepo) List(ctx context.Context) ([]models.CarrierConfiguration, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.carriers, nil
}

func (f *fakeCarrierRepo) ListEnabled(ctx context.Context) ([]models.CarrierConfiguration, error) {
	return f.List(ctx)
}

func (f *fakeCarrierRepo) Create(ctx context.Context, req *models.CreateCarrierConfigurationRequest) (*models.CarrierConfiguration, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeCarrierRepo) Update(ctx context.Context, id int64, req *models.UpdateCarrierConfigurationRequest) (*models.CarrierConfiguration, error) {
	f.lastID = id
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

var _ repository.CarrierConfigurationRepositoryInterface = (*fakeCarrierRepo)(nil)

// fakeSettingsRepo implements repository.SettingsRepositoryInterface
type fakeSettingsRepo struct {
	settings  []models.StoreSetting
	listErr   error
	setting   *models.StoreSetting
	getErr    error
	upserted  *models.StoreSetting
	upsertErr error
	lastKey   string
}

func (f *fakeSettingsRepo) List(ctx context.Context) ([]models.StoreSetting, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Get(ctx context.Context, key string) (*models.StoreSetting, error) {
	f.lastKey = key
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.setting, nil
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, req *models.UpsertSettingRequest) (*models.StoreSetting, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	return f.upserted, nil
}

var _ repository.SettingsRepositoryInterface = (*fakeSettingsRepo)(nil)

// fakePickupRepo implements repository.PickupLocationRepositoryInterface
type fakePickupRepo struct {
	locations      []models.PickupLocation
	listErr        error
	lastActiveOnly bool
	location       *models.PickupLocation
	getErr         error
	created        *models.PickupLocation
	createErr      error
	updated        *models.PickupLocation
	updateErr      error
	deactivateErr  error
	lastID         int64
}

func (f *fakePickupRepo) List(ctx context.Context, activeOnly bool) ([]models.PickupLocation, error) {
	f.lastActiveOnly = activeOnly
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.locations, nil
}

func (f *fakePickupRepo) GetByID(ctx context.Context, id int64) (*models.PickupLocation, error) {
	f.lastID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.location, nil
}

func (f *fakePickupRepo) Create(ctx context.Context, req *models.CreatePickupLocationRequest) (*models.PickupLocation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakePickupRepo) Update(ctx context.Context, id int64, req *models.UpdatePickupLocationRequest) (*models.PickupLocation, error) {
	f.lastID = id
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakePickupRepo) Deactivate(ctx context.Context, id int64) error {
	f.lastID = id
	return f.deactivateErr
}

var _ repository.PickupLocationRepositoryInterface = (*fakePickupRepo)(nil)
