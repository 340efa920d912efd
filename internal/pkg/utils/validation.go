package utils

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unidash-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var (
	validate         *validator.Validate
	academicYearExpr = regexp.MustCompile(constvars.RegexAcademicYear)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("academic_year", validateAcademicYear)
	validate.RegisterValidation("weekday", validateWeekday)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateAcademicYear accepts "2024-2025" style values where the second year follows the first.
func validateAcademicYear(fl validator.FieldLevel) bool {
	matches := academicYearExpr.FindStringSubmatch(fl.Field().String())
	if matches == nil {
		return false
	}
	first, _ := strconv.Atoi(matches[1])
	second, _ := strconv.Atoi(matches[2])
	return second == first+1
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, ok := ParseWeekday(fl.Field().String())
	return ok
}

// ParseWeekday resolves an English day name (any case, surrounding spaces ignored).
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.TrimSpace(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, true
		}
	}
	return time.Sunday, false
}

func ValidateUrlParamID(param string) error {
	return validate.Var(param, "required,max=64,excludesall=/?#")
}
