// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import "time"

// Info represents general information about the service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
	Driver      string    `json:"database_driver"`
}

// Media types accepted for a picture.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Sort directions for date ordering.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Picture is one Astronomy Picture of the Day record.
// Date (YYYY-MM-DD) is the natural key and the ordering column.
type Picture struct {
	Date           string `json:"date" db:"date"`
	Explanation    string `json:"explanation" db:"explanation"`
	HDURL          string `json:"hdurl" db:"hdurl"`
	MediaType      string `json:"media_type" db:"media_type"`
	ServiceVersion string `json:"service_version" db:"service_version"`
	Title          string `json:"title" db:"title"`
	URL            string `json:"url" db:"url"`
}

// SearchFilter is the normalized, request-scoped description of a search.
// Empty strings mean "unconstrained".
type SearchFilter struct {
	Query     string
	StartDate string
	EndDate   string
	MediaType string
	Sort      string // always SortAsc or SortDesc once built
}

// Pagination holds the page metadata computed for one search request.
type Pagination struct {
	Page            int
	PerPage         int
	TotalRecords    int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// Links are the navigation URLs of a search page. Nil marshals to null.
type Links struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	First    *string `json:"first"`
	Last     *string `json:"last"`
}

// SearchResponse is the success envelope of GET /apods/search.
type SearchResponse struct {
	TotalRecords    int       `json:"totalRecords"`
	TotalPages      int       `json:"totalPages"`
	Page            int       `json:"page"`
	PerPage         int       `json:"perPage"`
	Sort            string    `json:"sort"`
	HasNextPage     bool      `json:"hasNextPage"`
	HasPreviousPage bool      `json:"hasPreviousPage"`
	Links           Links     `json:"links"`
	Apods           []Picture `json:"apods"`
}

// PictureList is the envelope of GET /apods.
type PictureList struct {
	Count int       `json:"count"`
	Apods []Picture `json:"apods"`
}

// ErrorResponse is the envelope of every error reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Cause     string `json:"cause"`
	Code      int    `json:"code"`
	Timestamp string `json:"timestamp"`
}

// TimestampLayout is RFC 3339 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NewErrorResponse stamps an error envelope with the current UTC time.
func NewErrorResponse(message, cause string, code int) ErrorResponse {
	return ErrorResponse{
		Error:     message,
		Cause:     cause,
		Code:      code,
		Timestamp: time.Now().UTC().Format(TimestampLayout),
	}
}
