package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingRoleKey           = "role"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingURLKey            = "url"
	LoggingQueueNameKey      = "queue_name"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectNameKey     = "object_name"

	LoggingFacultyIDKey      = "faculty_id"
	LoggingAcademicYearKey   = "academic_year"
	LoggingSemesterKey       = "semester"
	LoggingFacultyLoadIDKey  = "faculty_load_id"
	LoggingSubjectCodeKey    = "subject_code"
	LoggingScheduleKey       = "schedule"
	LoggingReasonKey         = "reason"
	LoggingLoadsCountKey     = "loads_count"
	LoggingPlacedCountKey    = "placed_count"
	LoggingUnplacedCountKey  = "unplaced_count"
	LoggingFromCacheKey      = "from_cache"
	LoggingDiagnosticsKey    = "diagnostics_count"
	LoggingEnvelopeShapeKey  = "envelope_shape"
	LoggingRowIndexKey       = "row_index"
	LoggingRowSkippedKey     = "row_skipped"
	LoggingExportFileNameKey = "file_name"
)
