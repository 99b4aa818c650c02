package i18n

import goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

// Error envelope texts. Validation texts are built from search.ValidationError.
var (
	MsgInternalServerError = &goi18n.Message{ID: "InternalServerError", Other: "Internal Server Error"}
	MsgUnexpectedError     = &goi18n.Message{ID: "UnexpectedError", Other: "Unexpected error"}
	MsgUpstreamFailed      = &goi18n.Message{ID: "UpstreamFailed", Other: "Failed to fetch APOD from the upstream API"}
	MsgStoreFailed         = &goi18n.Message{ID: "StoreFailed", Other: "Database operation failed"}

	MsgNoAPODFound     = &goi18n.Message{ID: "NoAPODFound", Other: "No APOD found"}
	MsgArchiveEmpty    = &goi18n.Message{ID: "ArchiveEmpty", Other: "The archive is empty"}
	MsgNoRandomAPOD    = &goi18n.Message{ID: "NoRandomAPOD", Other: "No random APOD available"}
	MsgAPODNotFound    = &goi18n.Message{ID: "APODNotFound", Other: "APOD not found"}
	MsgNoAPODForDate   = &goi18n.Message{ID: "NoAPODForDate", Other: "No APOD found for date: {{.Date}}"}
	MsgAPODExists      = &goi18n.Message{ID: "APODExists", Other: "APOD already exists"}
	MsgAPODExistsCause = &goi18n.Message{ID: "APODExistsCause", Other: "APOD for this date already exists"}

	MsgNoAPODsFound     = &goi18n.Message{ID: "NoAPODsFound", Other: "No APODs found"}
	MsgNoSearchResults  = &goi18n.Message{ID: "NoSearchResults", Other: "No results for the given query"}
	MsgNoAPODsInRange   = &goi18n.Message{ID: "NoAPODsInRange", Other: "No APODs found for the given date range"}
	MsgUnauthorized     = &goi18n.Message{ID: "Unauthorized", Other: "Unauthorized"}
	MsgInvalidAPIKey    = &goi18n.Message{ID: "InvalidAPIKey", Other: "Invalid or missing API key"}
	MsgTooManyRequests  = &goi18n.Message{ID: "TooManyRequests", Other: "Too Many Requests"}
	MsgRateLimited      = &goi18n.Message{ID: "RateLimited", Other: "Rate limit exceeded, try again in {{.Seconds}} seconds"}
	MsgNotFound         = &goi18n.Message{ID: "NotFound", Other: "Not Found"}
	MsgNoRoute          = &goi18n.Message{ID: "NoRoute", Other: "No route for {{.Path}}"}
	MsgMethodNotAllowed = &goi18n.Message{ID: "MethodNotAllowed", Other: "Method Not Allowed"}
	MsgMethodNotOnPath  = &goi18n.Message{ID: "MethodNotOnPath", Other: "{{.Method}} is not allowed on {{.Path}}"}
)
