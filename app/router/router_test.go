package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boilermanc/atlurbanfarms-sub005/app/controller"
	"github.com/boilermanc/atlurbanfarms-sub005/metrics"
)

const routerTestSecret = "router-test-secret"

func signRole(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "tester@atlurbanfarms.com",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(routerTestSecret))
	require.NoError(t, err)
	return signed
}

// SetupRoutes registers on the default mux, so it runs once and the
// subtests share the wiring
func TestSetupRoutes(t *testing.T) {
	controllers := &Controllers{
		Report:         controller.NewReportController(nil, time.UTC),
		Order:          controller.NewOrderController(nil, nil, nil, time.UTC),
		Carrier:        controller.NewCarrierController(nil),
		Settings:       controller.NewSettingsController(nil),
		PickupLocation: controller.NewPickupLocationController(nil),
		Manifest:       controller.NewManifestController(nil),
	}
	SetupRoutes(controllers, routerTestSecret, metrics.NewRegistry().Handler())

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		http.DefaultServeMux.ServeHTTP(rec, req)
		return rec
	}

	t.Run("ping is public", func(t *testing.T) {
		rec := serve(httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("metrics is public", func(t *testing.T) {
		rec := serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin routes reject missing token", func(t *testing.T) {
		rec := serve(httptest.NewRequest(http.MethodGet, "/admin/carriers", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("admin routes reject non-admin role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/carriers", nil)
		req.Header.Set("Authorization", "Bearer "+signRole(t, "customer"))
		rec := serve(req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin token reaches route dispatch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/admin/carriers", nil)
		req.Header.Set("Authorization", "Bearer "+signRole(t, "admin"))
		rec := serve(req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("unknown admin path is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/greenhouses", nil)
		req.Header.Set("Authorization", "Bearer "+signRole(t, "admin"))
		rec := serve(req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
