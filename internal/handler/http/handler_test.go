package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/what-to-cook/internal/config"
	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/metrics"
	"github.com/MKhiriev/what-to-cook/internal/mock"
	"github.com/MKhiriev/what-to-cook/internal/service"
	"github.com/MKhiriev/what-to-cook/models"
)

const (
	testToken  = "valid-token"
	testUserID = int64(7)
)

type serviceMocks struct {
	auth       *mock.MockAuthService
	profile    *mock.MockProfileService
	fridge     *mock.MockFridgeService
	preference *mock.MockPreferenceService
	favorite   *mock.MockFavoriteService
	appInfo    *mock.MockAppInfoService
}

var testServerConfig = config.Server{
	RequestTimeout: 5 * time.Second,
	MaxUploadSize:  1 << 10,
}

func newTestHandler(t *testing.T) (*Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		auth:       mock.NewMockAuthService(ctrl),
		profile:    mock.NewMockProfileService(ctrl),
		fridge:     mock.NewMockFridgeService(ctrl),
		preference: mock.NewMockPreferenceService(ctrl),
		favorite:   mock.NewMockFavoriteService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:       m.auth,
		ProfileService:    m.profile,
		FridgeService:     m.fridge,
		PreferenceService: m.preference,
		FavoriteService:   m.favorite,
		AppInfoService:    m.appInfo,
	}

	return NewHandler(services, metrics.New(), testServerConfig, logger.Nop()), m
}

// newTestRouter returns the full router with testToken accepted for
// testUserID.
func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()
	h, m := newTestHandler(t)
	m.auth.EXPECT().
		ParseToken(gomock.Any(), testToken).
		Return(models.Token{SignedString: testToken, UserID: testUserID}, nil).
		AnyTimes()
	return h.Init(), m
}

// serve sends one request through router. A non-nil body is encoded as JSON;
// authorized requests carry testToken.
func serve(t *testing.T, router http.Handler, method, target string, body any, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set(authorizationHeader, "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.ErrorResponse](t, rr).Error
}
