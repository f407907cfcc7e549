package schedule

import "errors"

var (
	ErrInvalidDate      = errors.New("invalid calendar date")
	ErrInvalidClockTime = errors.New("clock time must be in HH:MM format")
)
