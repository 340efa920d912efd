package constvars

type ContextKey string

const (
	ResourceFacultyLoads = "faculty-loads"
	ResourceTimetable    = "timetable"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ROLE_KEY                 ContextKey = "role"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "UNIDASH_SVC_"
)

// Dashboard roles. Values match what the upstream gateway forwards in X-User-Role.
const (
	RoleDean        = "Dean"
	RoleProgramHead = "Program Head"
	RoleRegistrar   = "Registrar"
	RoleSuperAdmin  = "Super Admin"
)

var AllDashboardRoles = []string{
	RoleDean,
	RoleProgramHead,
	RoleRegistrar,
	RoleSuperAdmin,
}

const (
	SemesterFirst  = "1st"
	SemesterSecond = "2nd"
	SemesterSummer = "summer"
)

const (
	ServiceName = "unidash-service"
)
