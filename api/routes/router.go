package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/c-e-daly/prophet-sub001/api/controllers"
	offercontrollers "github.com/c-e-daly/prophet-sub001/api/controllers/offers"
	"github.com/c-e-daly/prophet-sub001/api/middleware"
	"github.com/c-e-daly/prophet-sub001/api/validators"
	internaloffers "github.com/c-e-daly/prophet-sub001/internal/offers"
	"github.com/c-e-daly/prophet-sub001/pkg/config"
	"github.com/c-e-daly/prophet-sub001/pkg/logger"
)

// RedisStore covers the router's use of the redis client: submission rate
// limiting and the readiness endpoint.
type RedisStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Ping(ctx context.Context) error
}

// RouterParams carries everything the router wires into handlers.
type RouterParams struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             controllers.Pinger
	Redis          RedisStore
	OffersService  internaloffers.Service
	TokenValidator validators.AttributionTokenValidator
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	submitPolicy := middleware.NewSubmitRateLimitPolicy(
		"submit",
		cfg.RateLimit.SubmitWindow,
		cfg.RateLimit.SubmitIPLimit,
		cfg.RateLimit.SubmitCartLimit,
	)

	readiness := map[string]controllers.Pinger{
		"database": params.DB,
	}
	if params.Redis != nil {
		readiness["redis"] = params.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	r.Route("/api/v1/offers", func(r chi.Router) {
		r.With(middleware.SubmitRateLimit(submitPolicy, params.Redis, logg)).
			Post("/", offercontrollers.Submit(params.OffersService, params.TokenValidator, logg))
		r.Get("/", offercontrollers.List(params.OffersService, logg))
		r.Route("/{offerID}", func(r chi.Router) {
			r.Get("/", offercontrollers.Detail(params.OffersService, logg))
			r.Post("/transition", offercontrollers.Transition(params.OffersService, logg))
			r.Post("/forecast", offercontrollers.Forecast(params.OffersService, logg))
			r.Post("/counters", offercontrollers.CreateCounter(params.OffersService, logg))
		})
	})

	return r
}
