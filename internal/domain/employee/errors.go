package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeAlreadyInactive = errors.New("employee is already inactive")
	ErrEmployeeAlreadyActive   = errors.New("employee is already active")
	ErrImportHasViolations     = errors.New("import has validation errors, fix the file and upload it again")
	ErrImportNotFound          = errors.New("import preview not found or expired")
	ErrImportEmpty             = errors.New("import file has no employee rows")
	ErrImportInProgress        = errors.New("import is already being submitted")
)
