package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boilermanc/atlurbanfarms-sub005/metrics"
	"github.com/boilermanc/atlurbanfarms-sub005/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newReportService(orderRepo *fakeOrderRepo, legacyRepo *fakeLegacyRepo, drive DriveServiceInterface, folderID string) *ReportService {
	return NewReportService(orderRepo, legacyRepo, drive, metrics.NewRegistry(), time.UTC, folderID)
}

func TestGenerateMergesBothSources(t *testing.T) {
	legacyRepo := &fakeLegacyRepo{orders: []models.LegacyOrder{
		{
			ID:        31500,
			OrderDate: time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC),
			Status:    "completed",
			Shipping:  dec("0"),
			Subtotal:  dec("24.00"),
			Total:     dec("24.00"),
			FirstName: "Ray",
			LastName:  "Okafor",
			Items: []models.LegacyOrderItem{
				{ProductName: "Cherokee Purple Tomato Seedling", Quantity: 8, LineTotal: dec("24.00")},
			},
		},
	}}
	orderRepo := &fakeOrderRepo{reportable: []models.Order{
		{
			ID:             1042,
			OrderNumber:    "ATL-101042",
			CreatedAt:      time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC),
			Status:         "paid",
			ShippingAmount: dec("8.50"),
			TotalAmount:    dec("26.50"),
			Items: []models.OrderItem{
				{ProductName: "Basil Seedling", Quantity: 4, LineTotal: dec("18.00")},
			},
		},
	}}

	svc := newReportService(orderRepo, legacyRepo, nil, "")

	rep, err := svc.Generate(context.Background(), "2025-03-03", "2025-03-09")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-03", rep.WeekStart)
	assert.Equal(t, "2025-03-09", rep.WeekEnd)
	require.Len(t, rep.Orders, 2)
	assert.Equal(t, "31500", rep.Orders[0].OrderID)
	assert.Equal(t, "ATL-101042", rep.Orders[1].OrderID)
	assert.Equal(t, 2, rep.Totals.OrderCount)
	assert.Equal(t, 12, rep.Totals.TotalSeedlings)
	assert.Empty(t, rep.Message)
}

func TestGenerateEmptyWindowSetsMessage(t *testing.T) {
	svc := newReportService(&fakeOrderRepo{}, &fakeLegacyRepo{}, nil, "")

	rep, err := svc.Generate(context.Background(), "2025-03-03", "2025-03-09")
	require.NoError(t, err)

	assert.True(t, rep.Empty())
	assert.Equal(t, "no orders found for this date range", rep.Message)
	assert.Equal(t, 0, rep.Totals.OrderCount)
}

func TestGenerateFailsWhenEitherFetchFails(t *testing.T) {
	svc := newReportService(
		&fakeOrderRepo{},
		&fakeLegacyRepo{fetchErr: errors.New("connection reset")},
		nil, "",
	)

	_, err := svc.Generate(context.Background(), "2025-03-03", "2025-03-09")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch orders for report")
}

func TestGenerateRejectsBadDates(t *testing.T) {
	svc := newReportService(&fakeOrderRepo{}, &fakeLegacyRepo{}, nil, "")

	_, err := svc.Generate(context.Background(), "not-a-date", "2025-03-09")
	assert.Error(t, err)
}

func TestExportProducesWorkbook(t *testing.T) {
	orderRepo := &fakeOrderRepo{reportable: []models.Order{
		{
			ID:          1042,
			OrderNumber: "ATL-101042",
			CreatedAt:   time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC),
			Status:      "paid",
			IsPickup:    true,
			TotalAmount: dec("26.50"),
			Items: []models.OrderItem{
				{ProductName: "Basil Seedling", Quantity: 4, LineTotal: dec("18.00")},
			},
		},
	}}

	svc := newReportService(orderRepo, &fakeLegacyRepo{}, nil, "")

	filename, content, err := svc.Export(context.Background(), "2025-03-03", "2025-03-09")
	require.NoError(t, err)

	assert.Equal(t, "ATL_Weekly_Sales_0303_2025.xlsx", filename)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "Weekly Sales 0303", f.GetSheetName(0))
}

func TestExportRefusesEmptyWeek(t *testing.T) {
	svc := newReportService(&fakeOrderRepo{}, &fakeLegacyRepo{}, nil, "")

	_, _, err := svc.Export(context.Background(), "2025-03-03", "2025-03-09")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no orders found for this date range")
}

func TestArchiveNotConfigured(t *testing.T) {
	svc := newReportService(&fakeOrderRepo{}, &fakeLegacyRepo{}, nil, "")

	_, err := svc.Archive("ATL_Weekly_Sales_0303_2025.xlsx", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestArchiveUploadsWorkbook(t *testing.T) {
	drive := &fakeDrive{fileID: "drive-file-1"}
	svc := newReportService(&fakeOrderRepo{}, &fakeLegacyRepo{}, drive, "folder-9")

	fileID, err := svc.Archive("ATL_Weekly_Sales_0303_2025.xlsx", []byte("workbook-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "drive-file-1", fileID)
	assert.Equal(t, "folder-9", drive.uploadedFolder)
	assert.Equal(t, "ATL_Weekly_Sales_0303_2025.xlsx", drive.uploadedName)
	assert.Equal(t, []byte("workbook-bytes"), drive.uploadedBytes)
}

func TestArchiveFailureWrapped(t *testing.T) {
	drive := &fakeDrive{uploadErr: errors.New("quota exceeded")}
	svc := newReportService(&fakeOrderRepo{}, &fakeLegacyRepo{}, drive, "folder-9")

	_, err := svc.Archive("ATL_Weekly_Sales_0303_2025.xlsx", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to archive report")
}
