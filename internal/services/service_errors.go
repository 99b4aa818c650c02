// filepath: internal/services/service_errors.go
package services

import "errors"

// Standard errors returned by the service layer.
var (
	ErrNotFound  = errors.New("not found")
	ErrNoResults = errors.New("no results")
	ErrConflict  = errors.New("conflict")
	ErrUpstream  = errors.New("upstream failure")
	ErrStore     = errors.New("store failure")
)
