package services_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"apodapi/internal/config"
	"apodapi/internal/models"
	"apodapi/internal/repository"
	"apodapi/internal/search"
	"apodapi/internal/services"
	"apodapi/internal/services/mocks"
	"apodapi/internal/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPicture(date string) *models.Picture {
	return &models.Picture{
		Date:           date,
		Title:          "Picture " + date,
		MediaType:      models.MediaTypeImage,
		URL:            "https://apod.nasa.gov/apod/image/" + date + ".jpg",
		ServiceVersion: "v1",
	}
}

func TestPictureService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("Latest Empty Archive", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		store.On("GetLatestPicture", ctx).Return(nil, repository.ErrNotFound)

		_, err := services.NewPictureService(store, nil, nil).Latest(ctx)
		assert.ErrorIs(t, err, services.ErrNotFound)
		store.AssertExpectations(t)
	})

	t.Run("Latest Store Failure", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		store.On("GetLatestPicture", ctx).Return(nil, errors.New("disk I/O error"))

		_, err := services.NewPictureService(store, nil, nil).Latest(ctx)
		assert.ErrorIs(t, err, services.ErrStore)
		assert.NotErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("By Date Validates Before Querying", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		svc := services.NewPictureService(store, nil, nil)

		_, err := svc.ByDate(ctx, "2024-02-30")
		var vErr *search.ValidationError
		assert.ErrorAs(t, err, &vErr)
		store.AssertNotCalled(t, "GetPictureByDate", mock.Anything, mock.Anything)
	})

	t.Run("By Date", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		store.On("GetPictureByDate", ctx, "2024-01-01").Return(newPicture("2024-01-01"), nil)
		store.On("GetPictureByDate", ctx, "2024-01-02").Return(nil, repository.ErrNotFound)
		svc := services.NewPictureService(store, nil, nil)

		p, err := svc.ByDate(ctx, "2024-01-01")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", p.Date)

		_, err = svc.ByDate(ctx, "2024-01-02")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("Random", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		store.On("CountPictures", ctx).Return(5, nil)
		inRange := mock.MatchedBy(func(offset int) bool { return offset >= 0 && offset < 5 })
		store.On("GetPictureAt", ctx, inRange).Return(newPicture("2024-01-03"), nil)
		svc := services.NewPictureService(store, nil, nil)

		for i := 0; i < 20; i++ {
			p, err := svc.Random(ctx)
			require.NoError(t, err)
			assert.Equal(t, "2024-01-03", p.Date)
		}
		store.AssertExpectations(t)
	})

	t.Run("Random Empty Archive", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		store.On("CountPictures", ctx).Return(0, nil)

		_, err := services.NewPictureService(store, nil, nil).Random(ctx)
		assert.ErrorIs(t, err, services.ErrNotFound)
		store.AssertNotCalled(t, "GetPictureAt", mock.Anything, mock.Anything)
	})
}

func TestPictureService_Search(t *testing.T) {
	ctx := context.Background()
	params := search.Params{Query: "nebula", Sort: models.SortDesc, Page: 2, PerPage: 10}
	filter := params.Filter()

	t.Run("No Results", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		store.On("CountSearchPictures", ctx, filter).Return(0, nil)

		_, err := services.NewPictureService(store, nil, nil).Search(ctx, params)
		assert.ErrorIs(t, err, services.ErrNoResults)
		store.AssertNotCalled(t, "SearchPictures", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Middle Page", func(t *testing.T) {
		page := make([]models.Picture, 10)
		for i := range page {
			page[i] = *newPicture(fmt.Sprintf("2024-01-%02d", 20-i))
		}
		store := new(mocks.MockPictureStore)
		store.On("CountSearchPictures", ctx, filter).Return(35, nil)
		store.On("SearchPictures", ctx, filter, 10, 10).Return(page, nil)

		resp, err := services.NewPictureService(store, nil, nil).Search(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, 35, resp.TotalRecords)
		assert.Equal(t, 4, resp.TotalPages)
		assert.Equal(t, 2, resp.Page)
		assert.True(t, resp.HasNextPage)
		assert.True(t, resp.HasPreviousPage)
		assert.Len(t, resp.Apods, 10)
		require.NotNil(t, resp.Links.Next)
		assert.Contains(t, *resp.Links.Next, "page=3")
		require.NotNil(t, resp.Links.Last)
		assert.Contains(t, *resp.Links.Last, "page=4")
	})

	t.Run("Page Past The End", func(t *testing.T) {
		far := search.Params{Sort: models.SortDesc, Page: 9, PerPage: 10}
		store := new(mocks.MockPictureStore)
		store.On("CountSearchPictures", ctx, far.Filter()).Return(3, nil)
		store.On("SearchPictures", ctx, far.Filter(), 10, 80).Return([]models.Picture{}, nil)

		resp, err := services.NewPictureService(store, nil, nil).Search(ctx, far)
		require.NoError(t, err)
		assert.Empty(t, resp.Apods)
		assert.NotNil(t, resp.Apods)
		assert.False(t, resp.HasNextPage)
		assert.True(t, resp.HasPreviousPage)
	})

	t.Run("Store Failure", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		store.On("CountSearchPictures", ctx, filter).Return(0, errors.New("connection refused"))

		_, err := services.NewPictureService(store, nil, nil).Search(ctx, params)
		assert.ErrorIs(t, err, services.ErrStore)
	})
}

func TestPictureService_DateRange(t *testing.T) {
	ctx := context.Background()

	t.Run("Bounded", func(t *testing.T) {
		filter := models.SearchFilter{StartDate: "2024-01-01", EndDate: "2024-01-03", Sort: models.SortAsc}
		pictures := []models.Picture{*newPicture("2024-01-01"), *newPicture("2024-01-03")}
		store := new(mocks.MockPictureStore)
		store.On("SearchPictures", ctx, filter, 0, 0).Return(pictures, nil)

		got, err := services.NewPictureService(store, nil, nil).DateRange(ctx, "2024-01-01", "2024-01-03")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("End Defaults To Today", func(t *testing.T) {
		today := time.Now().UTC().Format(search.DateLayout)
		store := new(mocks.MockPictureStore)
		store.On("SearchPictures", ctx, mock.MatchedBy(func(f models.SearchFilter) bool {
			return f.StartDate == "" && f.EndDate == today
		}), 0, 0).Return([]models.Picture{*newPicture(today)}, nil)

		got, err := services.NewPictureService(store, nil, nil).DateRange(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Validation", func(t *testing.T) {
		svc := services.NewPictureService(new(mocks.MockPictureStore), nil, nil)

		_, err := svc.DateRange(ctx, "2024-1-01", "2024-01-03")
		assert.ErrorIs(t, err, search.ErrInvalidDateFormat)
		_, err = svc.DateRange(ctx, "2024-01-01", "tomorrow")
		assert.ErrorIs(t, err, search.ErrInvalidDateFormat)
		_, err = svc.DateRange(ctx, "2024-02-01", "2024-01-01")
		assert.ErrorIs(t, err, search.ErrInvalidDateRange)
	})

	t.Run("Empty Range", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		store.On("SearchPictures", ctx, mock.Anything, 0, 0).Return([]models.Picture{}, nil)

		_, err := services.NewPictureService(store, nil, nil).DateRange(ctx, "1990-01-01", "1990-12-31")
		assert.ErrorIs(t, err, services.ErrNoResults)
	})
}

func TestPictureService_Ingest(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores New Picture", func(t *testing.T) {
		p := newPicture("2024-03-14")
		store := new(mocks.MockPictureStore)
		client := new(mocks.MockUpstreamClient)
		auditor := new(mocks.MockAuditor)

		client.On("FetchPicture", ctx, "").Return(p, nil)
		store.On("PictureExists", ctx, "2024-03-14").Return(false, nil)
		store.On("CreatePicture", ctx, p).Return(nil)
		auditor.On("Log", ctx, "picture.ingest", "10.0.0.1", "2024-03-14", mock.Anything).Return()

		got, err := services.NewPictureService(store, client, auditor).Ingest(ctx, "", "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, p, got)
		store.AssertExpectations(t)
		client.AssertExpectations(t)
		auditor.AssertExpectations(t)
	})

	t.Run("Existing Date Conflicts", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		client := new(mocks.MockUpstreamClient)
		client.On("FetchPicture", ctx, "2024-03-14").Return(newPicture("2024-03-14"), nil)
		store.On("PictureExists", ctx, "2024-03-14").Return(true, nil)

		_, err := services.NewPictureService(store, client, nil).Ingest(ctx, "2024-03-14", "cli")
		assert.ErrorIs(t, err, services.ErrConflict)
		store.AssertNotCalled(t, "CreatePicture", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Key Race Conflicts", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		client := new(mocks.MockUpstreamClient)
		client.On("FetchPicture", ctx, "").Return(newPicture("2024-03-14"), nil)
		store.On("PictureExists", ctx, "2024-03-14").Return(false, nil)
		store.On("CreatePicture", ctx, mock.Anything).Return(repository.ErrDuplicate)

		_, err := services.NewPictureService(store, client, nil).Ingest(ctx, "", "cli")
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		store := new(mocks.MockPictureStore)
		client := new(mocks.MockUpstreamClient)
		client.On("FetchPicture", ctx, "").Return(nil, fmt.Errorf("%w: status 503", upstream.ErrUpstream))

		_, err := services.NewPictureService(store, client, nil).Ingest(ctx, "", "cli")
		assert.ErrorIs(t, err, services.ErrUpstream)
		store.AssertNotCalled(t, "PictureExists", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Date", func(t *testing.T) {
		client := new(mocks.MockUpstreamClient)
		_, err := services.NewPictureService(nil, client, nil).Ingest(ctx, "14-03-2024", "cli")
		assert.ErrorIs(t, err, search.ErrInvalidDateFormat)
		client.AssertNotCalled(t, "FetchPicture", mock.Anything, mock.Anything)
	})
}

// TestPictureService_WithSQLite runs the service against a migrated store.
func TestPictureService_WithSQLite(t *testing.T) {
	ctx := context.Background()
	repo, err := repository.NewRepository(&config.Config{Database: config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "service.db"),
	}})
	require.NoError(t, err)
	defer repo.Close()
	require.NoError(t, repo.MigrateUp())

	client := new(mocks.MockUpstreamClient)
	svc := services.NewPictureService(repo, client, nil)

	for day := 1; day <= 12; day++ {
		date := fmt.Sprintf("2022-07-%02d", day)
		client.On("FetchPicture", ctx, date).Return(newPicture(date), nil).Once()
		_, err := svc.Ingest(ctx, date, "test")
		require.NoError(t, err)
	}

	client.On("FetchPicture", ctx, "2022-07-05").Return(newPicture("2022-07-05"), nil).Once()
	_, err = svc.Ingest(ctx, "2022-07-05", "test")
	assert.ErrorIs(t, err, services.ErrConflict)

	latest, err := svc.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2022-07-12", latest.Date)

	params, err := search.ParseParams(map[string][]string{"perPage": {"5"}, "page": {"3"}, "sort": {"asc"}})
	require.NoError(t, err)
	resp, err := svc.Search(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, 12, resp.TotalRecords)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Apods, 2)
	assert.Equal(t, "2022-07-11", resp.Apods[0].Date)
	assert.False(t, resp.HasNextPage)
	assert.Nil(t, resp.Links.Next)
	require.NotNil(t, resp.Links.Last)
	assert.Equal(t, "/apods/search?page=3&perPage=5&sort=asc", *resp.Links.Last)

	inRange, err := svc.DateRange(ctx, "2022-07-03", "2022-07-05")
	require.NoError(t, err)
	require.Len(t, inRange, 3)
	assert.Equal(t, "2022-07-03", inRange[0].Date)
	assert.Equal(t, "2022-07-05", inRange[2].Date)
}
