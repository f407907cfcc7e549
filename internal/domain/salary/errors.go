package salary

import "errors"

var (
	ErrSalaryNotFound = errors.New("monthly salary record not found")
	ErrInvalidPeriod  = errors.New("invalid salary period")
)
