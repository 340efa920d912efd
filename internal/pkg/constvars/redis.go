package constvars

const (
	RedisKeyFacultyLoadsFormat = "facultyloads:%s:%s:%s"
	RedisKeyTermLoadsFormat    = "termloads:%s:%s"
	RedisKeyAuditLeader        = "timetable:audit:leader"
)
