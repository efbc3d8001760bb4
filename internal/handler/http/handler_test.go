package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/scholarship-portal/internal/config"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/mock"
	"github.com/MKhiriev/scholarship-portal/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// testServices keeps typed access to the mocks behind a Handler.
type testServices struct {
	auth         *mock.MockAuthService
	users        *mock.MockUserService
	scholarships *mock.MockScholarshipService
	applications *mock.MockApplicationService
	reviews      *mock.MockReviewService
	payments     *mock.MockPaymentService
	appInfo      *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, cfg config.Server) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testServices{
		auth:         mock.NewMockAuthService(ctrl),
		users:        mock.NewMockUserService(ctrl),
		scholarships: mock.NewMockScholarshipService(ctrl),
		applications: mock.NewMockApplicationService(ctrl),
		reviews:      mock.NewMockReviewService(ctrl),
		payments:     mock.NewMockPaymentService(ctrl),
		appInfo:      mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:        m.auth,
		UserService:        m.users,
		ScholarshipService: m.scholarships,
		ApplicationService: m.applications,
		ReviewService:      m.reviews,
		PaymentService:     m.payments,
		AppInfoService:     m.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()), m
}

// serve runs one request through the full router.
func serve(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNewHandler(t *testing.T) {
	cfg := config.Server{
		AllowedOrigins: []string{"http://localhost:5173"},
		RequestTimeout: 5 * time.Second,
	}

	h, _ := newTestHandler(t, cfg)

	assert.NotNil(t, h.services)
	assert.NotNil(t, h.metrics)
	assert.Equal(t, cfg.AllowedOrigins, h.allowedOrigins)
	assert.Equal(t, cfg.RequestTimeout, h.requestTimeout)
	assert.NotNil(t, h.Init())
}
