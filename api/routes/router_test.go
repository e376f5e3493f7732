package routes_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/c-e-daly/prophet-sub001/api/routes"
	"github.com/c-e-daly/prophet-sub001/internal/forecast"
	internaloffers "github.com/c-e-daly/prophet-sub001/internal/offers"
	"github.com/c-e-daly/prophet-sub001/pkg/config"
	"github.com/c-e-daly/prophet-sub001/pkg/db/models"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/logger"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

type stubRedis struct {
	pingErr error
	counts  map[string]int64
}

func (s *stubRedis) Ping(context.Context) error { return s.pingErr }

func (s *stubRedis) IncrWithTTL(_ context.Context, key string, _ time.Duration) (int64, error) {
	if s.counts == nil {
		s.counts = map[string]int64{}
	}
	s.counts[key]++
	return s.counts[key], nil
}

type stubOffersService struct {
	submitResult *internaloffers.PipelineResult
	submitErr    error
	submitted    int
}

func (s *stubOffersService) SubmitOffer(context.Context, internaloffers.Submission) (*internaloffers.PipelineResult, error) {
	s.submitted++
	return s.submitResult, s.submitErr
}

func (s *stubOffersService) GetOffer(context.Context, uuid.UUID, uuid.UUID) (*internaloffers.OfferDetail, error) {
	return nil, errors.New("not wired in this test")
}

func (s *stubOffersService) ListOffers(context.Context, internaloffers.ListInput) (*internaloffers.OfferPage, error) {
	return nil, errors.New("not wired in this test")
}

func (s *stubOffersService) TransitionOffer(context.Context, internaloffers.TransitionInput) (*models.Offer, error) {
	return nil, errors.New("not wired in this test")
}

func (s *stubOffersService) ForecastCounter(context.Context, internaloffers.CounterInput) (*forecast.Evaluation, error) {
	return nil, errors.New("not wired in this test")
}

func (s *stubOffersService) CreateCounterOffer(context.Context, internaloffers.CounterInput) (*models.CounterOffer, error) {
	return nil, errors.New("not wired in this test")
}

type allowAllTokens struct{}

func (allowAllTokens) Validate(string) bool { return true }

func routerTestConfig(ipLimit, cartLimit int) *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "8080"},
		RateLimit: config.RateLimitConfig{
			SubmitWindow:    time.Minute,
			SubmitIPLimit:   ipLimit,
			SubmitCartLimit: cartLimit,
		},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, svc internaloffers.Service, redis routes.RedisStore, db routes.RedisStore) http.Handler {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "router-test", Output: io.Discard})
	return routes.NewRouter(routes.RouterParams{
		Config:         cfg,
		Logger:         logg,
		DB:             db,
		Redis:          redis,
		OffersService:  svc,
		TokenValidator: allowAllTokens{},
	})
}

func submitBody() string {
	return `{
		"shop_id": "` + uuid.NewString() + `",
		"cart_token": "tok-router",
		"email": "shopper@example.com",
		"offer_price": "90.00",
		"cart_total": "100.00",
		"items": [
			{"product_id": "p1", "variant_id": "v1", "quantity": 1, "unit_price": "100.00", "unit_cost": "40.00"}
		]
	}`
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t, routerTestConfig(0, 0), &stubOffersService{}, &stubRedis{}, &stubRedis{})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if env := w.Header().Get("X-Prophet-Env"); env != "test" {
		t.Fatalf("unexpected env header: %q", env)
	}
	if reqID := w.Header().Get("X-Request-Id"); reqID == "" {
		t.Fatal("expected request id header to be set")
	}
}

func TestRouterHealthReadyReportsDownDependency(t *testing.T) {
	redis := &stubRedis{pingErr: errors.New("connection refused")}
	router := newTestRouter(t, routerTestConfig(0, 0), &stubOffersService{}, redis, &stubRedis{})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"redis":"down"`) {
		t.Fatalf("expected redis marked down, got %s", w.Body.String())
	}
}

func TestRouterSubmitRouteReachesService(t *testing.T) {
	svc := &stubOffersService{
		submitResult: &internaloffers.PipelineResult{
			OfferID:         uuid.New(),
			Status:          enums.OfferStatusAutoAccepted,
			OfferPriceCents: 9000,
		},
	}
	router := newTestRouter(t, routerTestConfig(0, 0), svc, &stubRedis{}, &stubRedis{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/offers", strings.NewReader(submitBody()))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if svc.submitted != 1 {
		t.Fatalf("expected 1 submission, got %d", svc.submitted)
	}
}

func TestRouterSubmitRateLimitApplies(t *testing.T) {
	svc := &stubOffersService{
		submitResult: &internaloffers.PipelineResult{
			OfferID: uuid.New(),
			Status:  enums.OfferStatusAutoAccepted,
		},
	}
	router := newTestRouter(t, routerTestConfig(1, 0), svc, &stubRedis{}, &stubRedis{})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/offers", strings.NewReader(submitBody()))
		req.RemoteAddr = "203.0.113.7:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if i == 0 && w.Code != http.StatusCreated {
			t.Fatalf("first request should pass, got %d: %s", w.Code, w.Body.String())
		}
		if i == 1 && w.Code != http.StatusTooManyRequests {
			t.Fatalf("second request should be throttled, got %d", w.Code)
		}
	}
	if svc.submitted != 1 {
		t.Fatalf("expected exactly 1 submission through the limiter, got %d", svc.submitted)
	}
}

func TestRouterRecoversFromPanics(t *testing.T) {
	router := newTestRouter(t, routerTestConfig(0, 0), &stubOffersService{}, &stubRedis{}, panickyPinger{})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

type panickyPinger struct{}

func (panickyPinger) Ping(context.Context) error { panic("boom") }

func (panickyPinger) IncrWithTTL(context.Context, string, time.Duration) (int64, error) {
	return 0, nil
}
