package constvars

const (
	RegexAcademicYear = `^(\d{4})-(\d{4})$`
)
