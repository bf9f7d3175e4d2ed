package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDocumentExists   = errors.New("employee document already registered")
)
