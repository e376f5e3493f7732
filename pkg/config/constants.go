package config

// EnvPrefix is passed to envconfig; individual fields carry fully-qualified
// names so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv = "PROPHET_APP_ENV"
	EnvDBDSN  = "PROPHET_DB_DSN"
	EnvDBHost = "PROPHET_DB_HOST"
	EnvDBUser = "PROPHET_DB_USER"
	EnvDBName = "PROPHET_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
