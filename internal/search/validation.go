// Package search holds the pure part of the search endpoint: input validation,
// filter composition, page metadata, navigation links and the response envelope.
// Nothing in here performs I/O.
package search

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"apodapi/internal/models"
)

// DateLayout is the only accepted date format.
const DateLayout = "2006-01-02"

// Page size bounds: 1 <= perPage < MaxPerPage.
const (
	DefaultPerPage = 10
	MaxPerPage     = 200
	DefaultPage    = 1
)

// MaxPage keeps (page-1)*perPage within an int32 for every accepted perPage.
const MaxPage = math.MaxInt32 / MaxPerPage

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError is a user-input rejection. Message and Cause end up in the
// error envelope; ID keys their translations.
type ValidationError struct {
	ID      string
	Message string
	Cause   string
}

func (e *ValidationError) Error() string { return e.Message + ": " + e.Cause }

// Validation failures, one per rejection kind.
var (
	ErrInvalidDateFormat = &ValidationError{ID: "InvalidDateFormat", Message: "Invalid date format", Cause: "Date must be in YYYY-MM-DD format"}
	ErrInvalidDateRange  = &ValidationError{ID: "InvalidDateRange", Message: "Invalid date range", Cause: "startDate cannot be after endDate"}
	ErrInvalidMediaType  = &ValidationError{ID: "InvalidMediaType", Message: "Invalid media type", Cause: "Media type must be 'image' or 'video'"}
	ErrInvalidPerPage    = &ValidationError{ID: "InvalidPerPage", Message: "Invalid perPage value", Cause: "perPage must be a number less than 200 and greater than 0"}
	ErrInvalidPage       = &ValidationError{ID: "InvalidPage", Message: "Invalid page number", Cause: "Page must be greater than 0"}
	ErrPageOutOfRange    = &ValidationError{ID: "PageOutOfRange", Message: "Invalid page number", Cause: fmt.Sprintf("Page must not be greater than %d", MaxPage)}
	ErrInvalidSortValue  = &ValidationError{ID: "InvalidSortValue", Message: "Invalid sort value", Cause: "sort must be 'asc' or 'desc'"}
)

// ValidateDate accepts a strict YYYY-MM-DD calendar date and returns it unchanged.
// Lexically valid but impossible dates (2023-02-30) are rejected too.
func ValidateDate(s string) (string, error) {
	if !datePattern.MatchString(s) {
		return "", ErrInvalidDateFormat
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", ErrInvalidDateFormat
	}
	return s, nil
}

// ValidateDateRange rejects a start bound that lies after the end bound.
// Either bound may be empty. Both are expected to be validated already.
func ValidateDateRange(start, end string) error {
	if start == "" || end == "" {
		return nil
	}
	// YYYY-MM-DD sorts lexically in chronological order.
	if start > end {
		return ErrInvalidDateRange
	}
	return nil
}

// ValidateMediaType allows an empty value (no constraint) or one of image/video.
func ValidateMediaType(s string) (string, error) {
	switch s {
	case "", models.MediaTypeImage, models.MediaTypeVideo:
		return s, nil
	}
	return "", ErrInvalidMediaType
}

// ValidateSort defaults to desc.
func ValidateSort(s string) (string, error) {
	switch s {
	case "":
		return models.SortDesc, nil
	case models.SortAsc, models.SortDesc:
		return s, nil
	}
	return "", ErrInvalidSortValue
}

// ValidatePerPage parses the page size; empty means DefaultPerPage.
func ValidatePerPage(raw string) (int, error) {
	if raw == "" {
		return DefaultPerPage, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n >= MaxPerPage {
		return 0, ErrInvalidPerPage
	}
	return n, nil
}

// ValidatePage parses the 1-based page number; empty means the first page.
func ValidatePage(raw string) (int, error) {
	if raw == "" {
		return DefaultPage, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, ErrInvalidPage
	}
	if n > MaxPage {
		return 0, ErrPageOutOfRange
	}
	return n, nil
}
