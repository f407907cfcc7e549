package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeInactive        = errors.New("employee is not active")
	ErrEmployeeAlreadyActive   = errors.New("employee is already active")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
)
