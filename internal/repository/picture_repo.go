// filepath: internal/repository/picture_repo.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"apodapi/internal/config"
	"apodapi/internal/logging"
	"apodapi/internal/models"

	"github.com/Masterminds/squirrel"
)

var pictureColumns = []string{
	"date", "explanation", "hdurl", "media_type", "service_version", "title", "url",
}

// likeEscaper escapes LIKE wildcards so a query is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GetLatestPicture returns the picture with the greatest date.
func (s *Repository) GetLatestPicture(ctx context.Context) (*models.Picture, error) {
	q := s.Builder.Select(pictureColumns...).
		From(picturesTable).
		OrderBy("date DESC").
		Limit(1)
	return s.getPicture(ctx, q)
}

// GetPictureByDate returns the picture stored for date.
func (s *Repository) GetPictureByDate(ctx context.Context, date string) (*models.Picture, error) {
	q := s.Builder.Select(pictureColumns...).
		From(picturesTable).
		Where(squirrel.Eq{"date": date})
	return s.getPicture(ctx, q)
}

// GetPictureAt returns the picture at a zero-based position in date order.
func (s *Repository) GetPictureAt(ctx context.Context, offset int) (*models.Picture, error) {
	if offset < 0 {
		return nil, ErrNotFound
	}
	q := s.Builder.Select(pictureColumns...).
		From(picturesTable).
		OrderBy("date ASC").
		Limit(1).
		Offset(uint64(offset))
	return s.getPicture(ctx, q)
}

// CountPictures returns the number of stored pictures.
func (s *Repository) CountPictures(ctx context.Context) (int, error) {
	return s.count(ctx, s.Builder.Select("COUNT(*)").From(picturesTable))
}

// GetAllPictures returns every picture ordered by date ascending.
func (s *Repository) GetAllPictures(ctx context.Context) ([]models.Picture, error) {
	q := s.Builder.Select(pictureColumns...).
		From(picturesTable).
		OrderBy("date ASC")
	return s.selectPictures(ctx, q)
}

// SearchPictures returns one page of pictures matching filter. A zero limit
// returns every match; negative values are rejected.
func (s *Repository) SearchPictures(ctx context.Context, filter models.SearchFilter, limit, offset int) ([]models.Picture, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: limit=%d offset=%d", ErrInvalidWindow, limit, offset)
	}

	direction := "DESC"
	if strings.EqualFold(filter.Sort, models.SortAsc) {
		direction = "ASC"
	}

	q := s.applyFilter(s.Builder.Select(pictureColumns...).From(picturesTable), filter).
		OrderBy("date " + direction)
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}
	return s.selectPictures(ctx, q)
}

// CountSearchPictures returns the number of pictures matching filter.
func (s *Repository) CountSearchPictures(ctx context.Context, filter models.SearchFilter) (int, error) {
	return s.count(ctx, s.applyFilter(s.Builder.Select("COUNT(*)").From(picturesTable), filter))
}

// PictureExists reports whether a picture is stored for date.
func (s *Repository) PictureExists(ctx context.Context, date string) (bool, error) {
	query, args, err := s.Builder.Select("1").
		From(picturesTable).
		Where(squirrel.Eq{"date": date}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = s.DB.GetContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreatePicture inserts p. A second insert for the same date returns ErrDuplicate.
func (s *Repository) CreatePicture(ctx context.Context, p *models.Picture) error {
	query, args, err := s.Builder.Insert(picturesTable).
		Columns(pictureColumns...).
		Values(p.Date, p.Explanation, p.HDURL, p.MediaType, p.ServiceVersion, p.Title, p.URL).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		logging.Log.Errorf("Error inserting picture %s: %v", p.Date, err)
		return err
	}
	return nil
}

// applyFilter adds the WHERE clauses for a search filter. Absent fields do
// not constrain the result.
func (s *Repository) applyFilter(q squirrel.SelectBuilder, filter models.SearchFilter) squirrel.SelectBuilder {
	if filter.Query != "" {
		op := "LIKE"
		if s.Driver == config.DriverPostgres {
			op = "ILIKE"
		}
		pattern := "%" + likeEscaper.Replace(filter.Query) + "%"
		q = q.Where(squirrel.Expr("title "+op+` ? ESCAPE '\'`, pattern))
	}
	if filter.StartDate != "" {
		q = q.Where(squirrel.GtOrEq{"date": filter.StartDate})
	}
	if filter.EndDate != "" {
		q = q.Where(squirrel.LtOrEq{"date": filter.EndDate})
	}
	if filter.MediaType != "" {
		q = q.Where(squirrel.Eq{"media_type": filter.MediaType})
	}
	return q
}

func (s *Repository) getPicture(ctx context.Context, q squirrel.SelectBuilder) (*models.Picture, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var p models.Picture
	if err := s.DB.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logging.Log.Errorf("Error executing picture query: %v", err)
		return nil, err
	}
	return &p, nil
}

func (s *Repository) selectPictures(ctx context.Context, q squirrel.SelectBuilder) ([]models.Picture, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("Generated SQL: %s", query)
	logging.Log.Debugf("Arguments: %v", args)

	pictures := make([]models.Picture, 0)
	if err := s.DB.SelectContext(ctx, &pictures, query, args...); err != nil {
		logging.Log.Errorf("Error executing picture list query: %v", err)
		return nil, err
	}
	return pictures, nil
}

func (s *Repository) count(ctx context.Context, q squirrel.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := s.DB.GetContext(ctx, &n, query, args...); err != nil {
		logging.Log.Errorf("Error executing count query: %v", err)
		return 0, err
	}
	return n, nil
}
