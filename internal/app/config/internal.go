package config

import "time"

type InternalConfig struct {
	App       App          `mapstructure:"app"`
	Backend   AppBackend   `mapstructure:"backend"`
	Timetable AppTimetable `mapstructure:"timetable"`
	Minio     AppMinio     `mapstructure:"minio"`
	RabbitMQ  AppRabbitMQ  `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Address                    string   `mapstructure:"address"`
	Timezone                   string   `mapstructure:"timezone"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins             []string `mapstructure:"allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int      `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
	SuperadminAPIKey           string   `mapstructure:"superadmin_api_key"`
	SuperadminAPIKeyRateLimit  int      `mapstructure:"superadmin_api_key_rate_limit"`
	// ExportRateLimitPerMinute and ExportRateLimitBurst size the per-client token bucket on
	// spreadsheet endpoints. A client that drains it is blocked for ExportRateLimitBlock.
	ExportRateLimitPerMinute int           `mapstructure:"export_rate_limit_per_minute"`
	ExportRateLimitBurst     int           `mapstructure:"export_rate_limit_burst"`
	ExportRateLimitBlock     time.Duration `mapstructure:"export_rate_limit_block"`
}

// AppBackend points at the academic records service that owns faculty loads.
type AppBackend struct {
	BaseUrl                 string `mapstructure:"base_url"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds"`
	ServiceJWTSecret        string `mapstructure:"service_jwt_secret"`
	ServiceJWTIssuer        string `mapstructure:"service_jwt_issuer"`
	ServiceJWTTTLInMinutes  int    `mapstructure:"service_jwt_ttl_in_minutes"`
}

type AppTimetable struct {
	LoadCacheTTLInMinutes int `mapstructure:"load_cache_ttl_in_minutes"`
	// AuditCronSpec defines the cron expression for the schedule audit worker (e.g., "@daily")
	AuditCronSpec string `mapstructure:"audit_cron_spec"`
	// AuditAcademicYear and AuditSemester select the term the worker audits. The worker does
	// not start when either is empty.
	AuditAcademicYear     string `mapstructure:"audit_academic_year"`
	AuditSemester         string `mapstructure:"audit_semester"`
	AuditLockTTLInSeconds int    `mapstructure:"audit_lock_ttl_in_seconds"`
	PreviewMaxLoads       int    `mapstructure:"preview_max_loads"`
	PublishDiagnostics    bool   `mapstructure:"publish_diagnostics"`
}

type AppMinio struct {
	BucketName                          string `mapstructure:"bucket_name"`
	PreSignedUrlObjectExpiryTimeInHours int    `mapstructure:"pre_signed_url_object_expiry_time_in_hours"`
}

type AppRabbitMQ struct {
	DiagnosticsQueue string `mapstructure:"diagnostics_queue"`
}
