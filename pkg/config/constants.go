package config

const EnvPrefix = "SALESDASH"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names, shared with tests and deployment docs.
const (
	EnvAppEnv         = "SALESDASH_APP_ENV"
	EnvPort           = "SALESDASH_APP_PORT"
	EnvLogLevel       = "SALESDASH_LOG_LEVEL"
	EnvDatasetCSVPath = "SALESDASH_DATASET_CSV_PATH"
	EnvCORSOrigins    = "SALESDASH_CORS_ORIGINS"
)
