package config

// EnvPrefix is the envconfig prefix shared by all Loadline variables.
const EnvPrefix = "loadline"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv = "LOADLINE_APP_ENV"
	EnvPort   = "LOADLINE_APP_PORT"

	EnvDBDSN  = "LOADLINE_DB_DSN"
	EnvDBHost = "LOADLINE_DB_HOST"
	EnvDBUser = "LOADLINE_DB_USER"
	EnvDBName = "LOADLINE_DB_NAME"

	EnvRedisURL = "LOADLINE_REDIS_URL"

	EnvJWTSecret              = "LOADLINE_JWT_SECRET"
	EnvJWTIssuer              = "LOADLINE_JWT_ISSUER"
	EnvJWTExpMins             = "LOADLINE_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "LOADLINE_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
