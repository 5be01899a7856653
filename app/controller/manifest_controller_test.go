package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPickupManifestHTML(t *testing.T) {
	svc := &fakeManifestService{html: "<html><body>Grant Park Market</body></html>"}
	ctrl := NewManifestController(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/manifests/pickup?date=2025-03-05&format=html", nil)
	rec := httptest.NewRecorder()
	ctrl.GetPickupManifest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-03-05", svc.lastDate)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Grant Park Market")
}

func TestGetPickupManifestDefaultsToPDF(t *testing.T) {
	svc := &fakeManifestService{pdf: []byte("%PDF-1.4 fake")}
	ctrl := NewManifestController(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/manifests/pickup?date=2025-03-05", nil)
	rec := httptest.NewRecorder()
	ctrl.GetPickupManifest(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="pickup_manifest_2025-03-05.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 fake", rec.Body.String())
}

func TestGetPickupManifestRequiresDate(t *testing.T) {
	ctrl := NewManifestController(&fakeManifestService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/manifests/pickup", nil)
	rec := httptest.NewRecorder()
	ctrl.GetPickupManifest(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "date parameter is required")
}

func TestGetPickupManifestRejectsUnknownFormat(t *testing.T) {
	ctrl := NewManifestController(&fakeManifestService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/manifests/pickup?date=2025-03-05&format=docx", nil)
	rec := httptest.NewRecorder()
	ctrl.GetPickupManifest(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "format must be html or pdf")
}

func TestGetPickupManifestBadDate(t *testing.T) {
	svc := &fakeManifestService{pdfErr: fmt.Errorf(`invalid date "03/05/2025", expected YYYY-MM-DD`)}
	ctrl := NewManifestController(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/manifests/pickup?date=03/05/2025", nil)
	rec := httptest.NewRecorder()
	ctrl.GetPickupManifest(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPickupManifestRenderFailure(t *testing.T) {
	svc := &fakeManifestService{pdfErr: fmt.Errorf("failed to generate PDF: chrome not found")}
	ctrl := NewManifestController(svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/manifests/pickup?date=2025-03-05", nil)
	rec := httptest.NewRecorder()
	ctrl.GetPickupManifest(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
