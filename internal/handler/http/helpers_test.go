package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/mock"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/session"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mocks groups the service mocks behind a test Handler.
type mocks struct {
	auth      *mock.MockAuthService
	accounts  *mock.MockAccountService
	vendors   *mock.MockVendorService
	products  *mock.MockProductService
	cart      *mock.MockCartService
	dashboard *mock.MockDashboardService
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Dashboard:           config.Dashboard{TaxRate: 0.1, DeliveryCharge: 5},
		Server:              config.Server{MultipartMaxMemory: 1 << 20},
		Session:             config.Session{CookieName: "shop_session", TTL: time.Hour},
		AcmeChallengeResult: "challenge-result",
	}
}

// newTestHandler returns a Handler whose services are gomock mocks, except
// the dashboard which uses the real implementation unless replaced.
// sessions may be nil.
func newTestHandler(t *testing.T, sessions *session.Manager) (*Handler, *mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &mocks{
		auth:      mock.NewMockAuthService(ctrl),
		accounts:  mock.NewMockAccountService(ctrl),
		vendors:   mock.NewMockVendorService(ctrl),
		products:  mock.NewMockProductService(ctrl),
		cart:      mock.NewMockCartService(ctrl),
		dashboard: mock.NewMockDashboardService(ctrl),
	}

	cfg := testConfig()
	services := &service.Services{
		AuthService:      m.auth,
		AccountService:   m.accounts,
		VendorService:    m.vendors,
		ProductService:   m.products,
		CartService:      m.cart,
		DashboardService: service.NewDashboardService(cfg.Dashboard),
	}

	return NewHandler(services, sessions, cfg, logger.Nop()), m
}

// newTestSessions returns a session manager backed by miniredis.
func newTestSessions(t *testing.T) (*session.Manager, store.SessionStorage) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	storage := store.NewSessionStorage(client, "test:session:", logger.Nop())
	return session.NewManager(storage, testConfig().Session, logger.Nop()), storage
}

// withPayload returns r authenticated as payload, the way extractAPIToken
// leaves it.
func withPayload(r *http.Request, payload *models.APITokenPayload) *http.Request {
	ctx := utils.WithRouteData(r.Context(), models.NewRouteData())
	return r.WithContext(utils.WithAPITokenPayload(ctx, payload))
}

// anonymous returns r with initialized route data and no payload.
func anonymous(r *http.Request) *http.Request {
	return r.WithContext(utils.WithRouteData(r.Context(), models.NewRouteData()))
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

// recordingHandler counts calls and captures the request context values
// seen by the next handler.
type recordingHandler struct {
	calls     int
	payload   *models.APITokenPayload
	hasToken  bool
	routeData *models.RouteData
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.calls++
	h.payload, h.hasToken = utils.APITokenPayloadFromContext(r.Context())
	h.routeData, _ = utils.RouteDataFromContext(r.Context())
}
