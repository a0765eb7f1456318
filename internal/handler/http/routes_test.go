package http

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/what-to-cook/internal/service"
	"github.com/MKhiriev/what-to-cook/models"
)

func TestRoutes_UnknownPath(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := serve(t, router, http.MethodGet, "/nope", nil, false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not Found", errorBody(t, rr))
}

func TestRoutes_WrongMethod(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := serve(t, router, http.MethodGet, "/login", nil, false)

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "POST", rr.Header().Get("Allow"))
	assert.Equal(t, "Method Not Allowed", errorBody(t, rr))
}

func TestRoutes_ProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	protected := []struct{ method, path string }{
		{http.MethodPost, "/logout"},
		{http.MethodGet, "/profile"},
		{http.MethodPost, "/upload_profile_picture"},
		{http.MethodPost, "/profile_ingredient_list"},
		{http.MethodGet, "/saved_ingredients"},
		{http.MethodDelete, "/delete_ingredient"},
		{http.MethodPost, "/dietary_restrictions"},
		{http.MethodGet, "/user_healthlabels"},
		{http.MethodPost, "/bookmark_recipe"},
		{http.MethodPost, "/unbookmark_recipe"},
		{http.MethodDelete, "/unbookmark"},
		{http.MethodGet, "/favorite_recipe"},
		{http.MethodPost, "/isBookmarked"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr := serve(t, router, route.method, route.path, nil, false)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRoutes_TraceIDIsEchoed(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0"}, nil)

	rr := serve(t, router, http.MethodGet, "/version", nil, false)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestRoutes_RecordsMetricsByPattern(t *testing.T) {
	h, m := newTestHandler(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0"}, nil)
	router := h.Init()

	serve(t, router, http.MethodGet, "/version", nil, false)
	serve(t, router, http.MethodGet, "/nope", nil, false)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.RequestsTotal.WithLabelValues("/version", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.RequestsTotal.WithLabelValues("unmatched", "GET", "404")))
}

func TestRoutes_MetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	serve(t, router, http.MethodGet, "/nope", nil, false)

	rr := serve(t, router, http.MethodGet, "/metrics", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `what_to_cook_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestGetServerVersion(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).
		Return(models.VersionResponse{Version: "1.2.3", BuildCommit: "abc123"}, nil)

	rr := serve(t, router, http.MethodGet, "/version", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.3","buildCommit":"abc123"}`, rr.Body.String())
}

func TestGetServerVersion_NotConfigured(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{}, service.ErrVersionIsNotSpecified)

	rr := serve(t, router, http.MethodGet, "/version", nil, false)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
}
