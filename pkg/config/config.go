package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	Token        TokenConfig
	Shopify      ShopifyConfig
	Offers       OffersConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	Outbox       OutboxConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PROPHET_APP_ENV" required:"true"`
	Port         string `envconfig:"PROPHET_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"PROPHET_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PROPHET_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"PROPHET_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"PROPHET_DB_DSN"`
	Driver string `envconfig:"PROPHET_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"PROPHET_DB_HOST"`
	LegacyPort     int    `envconfig:"PROPHET_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PROPHET_DB_USER"`
	LegacyPassword string `envconfig:"PROPHET_DB_PASSWORD"`
	LegacyName     string `envconfig:"PROPHET_DB_NAME"`
	LegacySSLMode  string `envconfig:"PROPHET_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PROPHET_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PROPHET_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PROPHET_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PROPHET_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PROPHET_REDIS_URL" required:"true"`
	Password     string        `envconfig:"PROPHET_REDIS_PASSWORD"`
	DB           int           `envconfig:"PROPHET_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PROPHET_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PROPHET_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PROPHET_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PROPHET_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PROPHET_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// TokenConfig signs the storefront cart attribution token. This is not a user
// session; it only proves the submission originated from the shop's script.
type TokenConfig struct {
	Secret string `envconfig:"PROPHET_TOKEN_SECRET"`
	Issuer string `envconfig:"PROPHET_TOKEN_ISSUER" default:"prophet-storefront"`
}

type ShopifyConfig struct {
	AccessToken string        `envconfig:"PROPHET_SHOPIFY_ACCESS_TOKEN" required:"true"`
	APIVersion  string        `envconfig:"PROPHET_SHOPIFY_API_VERSION" default:"2024-10"`
	Timeout     time.Duration `envconfig:"PROPHET_SHOPIFY_TIMEOUT" default:"10s"`
}

type OffersConfig struct {
	DefaultExpiryMinutes int           `envconfig:"PROPHET_OFFERS_DEFAULT_EXPIRY_MINUTES" default:"2880"`
	ReplayGuardTTL       time.Duration `envconfig:"PROPHET_OFFERS_REPLAY_GUARD_TTL" default:"10s"`
	ExpirySweepBatch     int           `envconfig:"PROPHET_OFFERS_EXPIRY_SWEEP_BATCH" default:"200"`
	ExpirySweepInterval  time.Duration `envconfig:"PROPHET_OFFERS_EXPIRY_SWEEP_INTERVAL" default:"1m"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"PROPHET_GCP_PROJECT_ID"`
	ApplicationCredentials string `envconfig:"PROPHET_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	OfferEventsTopic string `envconfig:"PROPHET_PUBSUB_OFFER_EVENTS_TOPIC" default:"prophet-offer-events"`
}

type OutboxConfig struct {
	BatchSize      int `envconfig:"PROPHET_OUTBOX_PUBLISH_BATCH_SIZE" default:"50"`
	PollIntervalMS int `envconfig:"PROPHET_OUTBOX_PUBLISH_POLL_MS" default:"500"`
	MaxAttempts    int `envconfig:"PROPHET_OUTBOX_MAX_ATTEMPTS" default:"10"`
}

type RateLimitConfig struct {
	SubmitWindow    time.Duration `envconfig:"PROPHET_RATE_LIMIT_SUBMIT_WINDOW" default:"1m"`
	SubmitIPLimit   int           `envconfig:"PROPHET_RATE_LIMIT_SUBMIT_IP_LIMIT" default:"30"`
	SubmitCartLimit int           `envconfig:"PROPHET_RATE_LIMIT_SUBMIT_CART_LIMIT" default:"10"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"PROPHET_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"PROPHET_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
