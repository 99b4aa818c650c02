// filepath: internal/services/picture_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"apodapi/internal/logging"
	"apodapi/internal/models"
	"apodapi/internal/repository"
	"apodapi/internal/search"
	"apodapi/internal/upstream"

	"github.com/sirupsen/logrus"
)

// --- Compile-time check to ensure interface is implemented ---
var _ PictureService = (*pictureService)(nil)

// pictureService handles business logic for picture records.
type pictureService struct {
	Store    PictureStore
	Upstream upstream.Client
	Auditor  Auditor

	// intn picks the random offset; replaced in tests.
	intn func(n int) int
}

// NewPictureService creates a new PictureService.
func NewPictureService(store PictureStore, client upstream.Client, auditor Auditor) *pictureService {
	return &pictureService{
		Store:    store,
		Upstream: client,
		Auditor:  auditor,
		intn:     rand.Intn,
	}
}

// Latest returns the most recent picture.
func (s *pictureService) Latest(ctx context.Context) (*models.Picture, error) {
	p, err := s.Store.GetLatestPicture(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return p, nil
}

// ByDate returns the picture for an exact YYYY-MM-DD date.
func (s *pictureService) ByDate(ctx context.Context, date string) (*models.Picture, error) {
	if _, err := search.ValidateDate(date); err != nil {
		return nil, err
	}
	p, err := s.Store.GetPictureByDate(ctx, date)
	if err != nil {
		return nil, storeError(err)
	}
	return p, nil
}

// Random returns one picture at a uniformly chosen position.
func (s *pictureService) Random(ctx context.Context) (*models.Picture, error) {
	count, err := s.Store.CountPictures(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	p, err := s.Store.GetPictureAt(ctx, s.intn(count))
	if err != nil {
		return nil, storeError(err)
	}
	return p, nil
}

// All returns every stored picture ordered by date.
func (s *pictureService) All(ctx context.Context) ([]models.Picture, error) {
	pictures, err := s.Store.GetAllPictures(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return pictures, nil
}

// DateRange returns the pictures between start and end inclusive, oldest
// first. An empty end means today (UTC); an empty start is unbounded.
func (s *pictureService) DateRange(ctx context.Context, start, end string) ([]models.Picture, error) {
	if end == "" {
		end = time.Now().UTC().Format(search.DateLayout)
	}
	if start != "" {
		if _, err := search.ValidateDate(start); err != nil {
			return nil, err
		}
	}
	if _, err := search.ValidateDate(end); err != nil {
		return nil, err
	}
	if err := search.ValidateDateRange(start, end); err != nil {
		return nil, err
	}

	filter := models.SearchFilter{StartDate: start, EndDate: end, Sort: models.SortAsc}
	pictures, err := s.Store.SearchPictures(ctx, filter, 0, 0)
	if err != nil {
		return nil, storeError(err)
	}
	if len(pictures) == 0 {
		return nil, ErrNoResults
	}
	return pictures, nil
}

// Search runs a validated search: count, fetch one page, then assemble the
// pagination metadata and navigation links.
func (s *pictureService) Search(ctx context.Context, params search.Params) (*models.SearchResponse, error) {
	filter := params.Filter()

	total, err := s.Store.CountSearchPictures(ctx, filter)
	if err != nil {
		return nil, storeError(err)
	}
	if total == 0 {
		return nil, ErrNoResults
	}

	pictures, err := s.Store.SearchPictures(ctx, filter, params.PerPage, params.Offset())
	if err != nil {
		return nil, storeError(err)
	}

	p := search.Paginate(total, params.Page, params.PerPage, len(pictures))
	resp := search.NewResponse(filter, p, search.BuildLinks(filter, p), pictures)
	return &resp, nil
}

// Ingest fetches a picture from upstream and stores it. An existing record for
// the same date is never overwritten.
func (s *pictureService) Ingest(ctx context.Context, date string, actor string) (*models.Picture, error) {
	if date != "" {
		if _, err := search.ValidateDate(date); err != nil {
			return nil, err
		}
	}

	p, err := s.Upstream.FetchPicture(ctx, date)
	if err != nil {
		logging.Log.Errorf("Upstream fetch failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	exists, err := s.Store.PictureExists(ctx, p.Date)
	if err != nil {
		return nil, storeError(err)
	}
	if exists {
		return nil, fmt.Errorf("%w: picture for %s", ErrConflict, p.Date)
	}

	if err := s.Store.CreatePicture(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost a race with a concurrent ingest of the same date.
			return nil, fmt.Errorf("%w: picture for %s", ErrConflict, p.Date)
		}
		return nil, storeError(err)
	}

	logging.Log.WithFields(logrus.Fields{"date": p.Date, "media_type": p.MediaType}).Info("Picture ingested")
	if s.Auditor != nil {
		s.Auditor.Log(ctx, "picture.ingest", actor, p.Date, map[string]interface{}{
			"title":      p.Title,
			"media_type": p.MediaType,
		})
	}
	return p, nil
}

// storeError maps repository errors onto service errors.
func storeError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	logging.Log.Errorf("Store operation failed: %v", err)
	return fmt.Errorf("%w: %v", ErrStore, err)
}
