package config

import (
	"time"
	"unidash-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessLogFileName:   utils.GetEnvString("LOGGER_ACCESS_LOG_FILENAME", "access.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Manila"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 2),
			SuperadminAPIKey:           utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			SuperadminAPIKeyRateLimit:  utils.GetEnvInt("APP_SUPERADMIN_API_KEY_RATE_LIMIT", 500),
			ExportRateLimitPerMinute:   utils.GetEnvInt("APP_EXPORT_RATE_LIMIT_PER_MINUTE", 10),
			ExportRateLimitBurst:       utils.GetEnvInt("APP_EXPORT_RATE_LIMIT_BURST", 3),
			ExportRateLimitBlock:       utils.GetEnvDuration("APP_EXPORT_RATE_LIMIT_BLOCK", time.Minute),
		},
		Backend: AppBackend{
			BaseUrl:                 utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8000/api"),
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 15),
			ServiceJWTSecret:        utils.GetEnvString("BACKEND_SERVICE_JWT_SECRET", ""),
			ServiceJWTIssuer:        utils.GetEnvString("BACKEND_SERVICE_JWT_ISSUER", "unidash-service"),
			ServiceJWTTTLInMinutes:  utils.GetEnvInt("BACKEND_SERVICE_JWT_TTL_IN_MINUTES", 5),
		},
		Timetable: AppTimetable{
			LoadCacheTTLInMinutes: utils.GetEnvInt("TIMETABLE_LOAD_CACHE_TTL_IN_MINUTES", 10),
			AuditCronSpec:         utils.GetEnvString("TIMETABLE_AUDIT_CRON_SPEC", "@daily"),
			AuditAcademicYear:     utils.GetEnvString("TIMETABLE_AUDIT_ACADEMIC_YEAR", ""),
			AuditSemester:         utils.GetEnvString("TIMETABLE_AUDIT_SEMESTER", ""),
			AuditLockTTLInSeconds: utils.GetEnvInt("TIMETABLE_AUDIT_LOCK_TTL_IN_SECONDS", 120),
			PreviewMaxLoads:       utils.GetEnvInt("TIMETABLE_PREVIEW_MAX_LOADS", 200),
			PublishDiagnostics:    utils.GetEnvBool("TIMETABLE_PUBLISH_DIAGNOSTICS", true),
		},
		Minio: AppMinio{
			BucketName:                          utils.GetEnvString("MINIO_BUCKET_NAME", "timetables"),
			PreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			DiagnosticsQueue: utils.GetEnvString("RABBITMQ_DIAGNOSTICS_QUEUE", "timetable.schedule_diagnostics"),
		},
	}
}
