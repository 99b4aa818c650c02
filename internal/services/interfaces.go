// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"apodapi/internal/models"
	"apodapi/internal/search"
)

// Auditor defines the interface for recording security-relevant events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "picture.ingest")
	// actor: who did it (caller address or CLI user)
	// resource: what was affected (e.g., "2024-01-01")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// PictureService defines the read, search and ingest operations on pictures.
type PictureService interface {
	Latest(ctx context.Context) (*models.Picture, error)
	ByDate(ctx context.Context, date string) (*models.Picture, error)
	Random(ctx context.Context) (*models.Picture, error)
	All(ctx context.Context) ([]models.Picture, error)
	DateRange(ctx context.Context, start, end string) ([]models.Picture, error)
	Search(ctx context.Context, params search.Params) (*models.SearchResponse, error)
	// Ingest pulls the record for date (today when empty) from upstream and stores it.
	Ingest(ctx context.Context, date string, actor string) (*models.Picture, error)
}

// PictureStore is the persistence the picture service depends on.
// *repository.Repository implements it.
type PictureStore interface {
	GetLatestPicture(ctx context.Context) (*models.Picture, error)
	GetPictureByDate(ctx context.Context, date string) (*models.Picture, error)
	GetPictureAt(ctx context.Context, offset int) (*models.Picture, error)
	CountPictures(ctx context.Context) (int, error)
	GetAllPictures(ctx context.Context) ([]models.Picture, error)
	SearchPictures(ctx context.Context, filter models.SearchFilter, limit, offset int) ([]models.Picture, error)
	CountSearchPictures(ctx context.Context, filter models.SearchFilter) (int, error)
	PictureExists(ctx context.Context, date string) (bool, error)
	CreatePicture(ctx context.Context, p *models.Picture) error
}
