package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"alphanum":      "must contain only alphanumeric characters",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"numeric":       "must be a number",
	"oneof":         "must be one of [%s]",
	"gte":           "must be greater than or equal to %s",
	"lte":           "must be less than or equal to %s",
	"dive":          "is invalid",
	"academic_year": "must be formatted as YYYY-YYYY with consecutive years",
	"weekday":       "must be a day name from Monday to Sunday",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientRoleMissing                   = "your role could not be determined, please login again"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientBackendUnavailable            = "academic records are unavailable right now, please try again later"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	// Validation messages
	ErrDevValidationFailed         = "validation failed"
	ErrDevInvalidRequestPayload    = "invalid request payload"
	ErrDevURLParamIDValidation     = "failed to validate url param %s"
	ErrDevUnknownWeekday           = "unknown weekday %q"
	ErrDevTimeSlotGroupOutOfBounds = "time slot group index %d is out of bounds"
	ErrDevTooManyPreviewLoads      = "preview accepts at most %d loads, got %d"

	// Authorization messages
	ErrDevRoleMissing       = "role header missing"
	ErrDevRoleNotAllowed    = "role %q is not allowed to %s %s"
	ErrDevPolicyEnforcement = "failed to enforce authorization policy"
	ErrDevInvalidAPIKey     = "invalid API key"
	ErrDevSignServiceToken  = "failed to sign backend service token"

	// Backend messages
	ErrDevBackendGetResource      = "failed to get %s from academic backend"
	ErrDevBackendUnexpectedStatus = "academic backend responded %d for %s: %s"
	ErrDevBackendDecodeResponse   = "failed to decode %s response from academic backend"
	ErrDevBackendUnknownEnvelope  = "unrecognized %s response envelope from academic backend"

	// Redis messages
	ErrDevRedisGetData      = "failed to get data from redis"
	ErrDevRedisGetNoData    = "no data found in redis for key %s"
	ErrDevRedisSetData      = "failed to set data in redis"
	ErrDevRedisDeleteData   = "failed to delete data from redis"
	ErrDevRedisExpireData   = "failed to set expiry in redis"
	ErrDevRedisUnlock       = "failed to release redis lock"
	ErrDevRedisLockNotOwned = "redis lock not owned by this client"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
	ErrDevRabbitMQNack           = "queue %s did not confirm message"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to create presigned url in bucket %s"

	// Export messages
	ErrDevBuildSpreadsheet = "failed to build timetable spreadsheet"
)
