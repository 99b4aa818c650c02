// filepath: internal/api/handlers/picture_handler_test.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apodapi/internal/i18n"
	"apodapi/internal/models"
	"apodapi/internal/search"
	"apodapi/internal/services"
	"apodapi/internal/services/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// setupPictureRouter wires the handlers on a bare router, without middleware.
func setupPictureRouter(svc *mocks.MockPictureService) *mux.Router {
	h := &Handlers{Pictures: svc}
	r := mux.NewRouter()
	r.HandleFunc("/apod", h.GetLatestPicture).Methods(http.MethodGet)
	r.HandleFunc("/apod", h.IngestPicture).Methods(http.MethodPost)
	r.HandleFunc("/apod/random", h.GetRandomPicture).Methods(http.MethodGet)
	r.HandleFunc("/apod/{date}", h.GetPictureByDate).Methods(http.MethodGet)
	r.HandleFunc("/apods", h.GetAllPictures).Methods(http.MethodGet)
	r.HandleFunc("/apods/search", h.SearchPictures).Methods(http.MethodGet)
	r.HandleFunc("/apods/date-range", h.GetPicturesInRange).Methods(http.MethodGet)
	return r
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, rr.Code, body.Code)
	_, err := time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err, "timestamp must be RFC 3339")
	return body
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func TestGetLatestPicture(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("Latest", mock.Anything).Return(&models.Picture{Date: "2024-03-14", Title: "M101"}, nil)

		rr := serve(setupPictureRouter(svc), http.MethodGet, "/apod")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"date":"2024-03-14","explanation":"","hdurl":"","media_type":"","service_version":"","title":"M101","url":""}`, rr.Body.String())
	})

	t.Run("Empty Archive", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("Latest", mock.Anything).Return(nil, services.ErrNotFound)

		rr := serve(setupPictureRouter(svc), http.MethodGet, "/apod")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		body := decodeError(t, rr)
		assert.Equal(t, "No APOD found", body.Error)
	})

	t.Run("Store Failure", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("Latest", mock.Anything).Return(nil, fmt.Errorf("%w: disk full", services.ErrStore))

		rr := serve(setupPictureRouter(svc), http.MethodGet, "/apod")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		body := decodeError(t, rr)
		assert.NotContains(t, body.Cause, "disk full", "store details must not leak")
	})
}

func TestGetRandomPicture(t *testing.T) {
	svc := new(mocks.MockPictureService)
	svc.On("Random", mock.Anything).Return(nil, services.ErrNotFound)

	rr := serve(setupPictureRouter(svc), http.MethodGet, "/apod/random")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, "No APOD found", body.Error)
	assert.Equal(t, "No random APOD available", body.Cause)
	svc.AssertNotCalled(t, "ByDate", mock.Anything, mock.Anything)
}

func TestGetPictureByDate(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("ByDate", mock.Anything, "2024-01-01").Return(&models.Picture{Date: "2024-01-01"}, nil)

		rr := serve(setupPictureRouter(svc), http.MethodGet, "/apod/2024-01-01")
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("ByDate", mock.Anything, "2024-01-02").Return(nil, services.ErrNotFound)

		rr := serve(setupPictureRouter(svc), http.MethodGet, "/apod/2024-01-02")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		body := decodeError(t, rr)
		assert.Equal(t, "APOD not found", body.Error)
		assert.Equal(t, "No APOD found for date: 2024-01-02", body.Cause)
	})

	t.Run("Malformed Date", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("ByDate", mock.Anything, "yesterday").Return(nil, search.ErrInvalidDateFormat)

		rr := serve(setupPictureRouter(svc), http.MethodGet, "/apod/yesterday")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeError(t, rr)
		assert.Equal(t, search.ErrInvalidDateFormat.Message, body.Error)
	})
}

func TestGetAllPictures(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("All", mock.Anything).Return(nil, nil)

		rr := serve(setupPictureRouter(svc), http.MethodGet, "/apods")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"count":0,"apods":[]}`, rr.Body.String())
	})

	t.Run("Some", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("All", mock.Anything).Return([]models.Picture{{Date: "2024-01-01"}, {Date: "2024-01-02"}}, nil)

		rr := serve(setupPictureRouter(svc), http.MethodGet, "/apods")
		var list models.PictureList
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
		assert.Equal(t, 2, list.Count)
		assert.Equal(t, "2024-01-02", list.Apods[1].Date)
	})
}

func TestIngestPicture(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("Ingest", mock.Anything, "", "192.0.2.1").Return(&models.Picture{Date: "2024-03-14"}, nil)

		rr := serve(setupPictureRouter(svc), http.MethodPost, "/apod")
		assert.Equal(t, http.StatusCreated, rr.Code)
		var p models.Picture
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
		assert.Equal(t, "2024-03-14", p.Date)
		svc.AssertExpectations(t)
	})

	t.Run("Conflict", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("Ingest", mock.Anything, "2024-03-14", mock.Anything).Return(nil, fmt.Errorf("%w: picture for 2024-03-14", services.ErrConflict))

		rr := serve(setupPictureRouter(svc), http.MethodPost, "/apod?date=2024-03-14")
		assert.Equal(t, http.StatusConflict, rr.Code)
		body := decodeError(t, rr)
		assert.Equal(t, "APOD already exists", body.Error)
		assert.Equal(t, "APOD for this date already exists", body.Cause)
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("Ingest", mock.Anything, "", mock.Anything).Return(nil, fmt.Errorf("%w: status 503", services.ErrUpstream))

		rr := serve(setupPictureRouter(svc), http.MethodPost, "/apod")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		decodeError(t, rr)
	})

	t.Run("Unclassified Error", func(t *testing.T) {
		svc := new(mocks.MockPictureService)
		svc.On("Ingest", mock.Anything, "", mock.Anything).Return(nil, errors.New("boom"))

		rr := serve(setupPictureRouter(svc), http.MethodPost, "/apod")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestLocalizedErrors(t *testing.T) {
	tr, err := i18n.NewTranslator()
	require.NoError(t, err)

	svc := new(mocks.MockPictureService)
	svc.On("ByDate", mock.Anything, "2024-03-14").Return(nil, services.ErrNotFound)
	svc.On("Latest", mock.Anything).Return(nil, fmt.Errorf("%w: disk full", services.ErrStore))
	router := tr.Middleware(setupPictureRouter(svc))

	request := func(target, acceptLanguage string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if acceptLanguage != "" {
			req.Header.Set("Accept-Language", acceptLanguage)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	t.Run("Accept-Language", func(t *testing.T) {
		rr := request("/apod/2024-03-14", "pt-BR,pt;q=0.9,en;q=0.8")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "pt-BR", rr.Header().Get("Content-Language"))
		body := decodeError(t, rr)
		assert.Equal(t, "APOD não encontrada", body.Error)
		assert.Equal(t, "Nenhuma APOD encontrada para a data: 2024-03-14", body.Cause)
	})

	t.Run("Query Overrides Header", func(t *testing.T) {
		rr := request("/apod?lang=es", "fr")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		body := decodeError(t, rr)
		assert.Equal(t, "Error interno del servidor", body.Error)
		assert.Equal(t, "Falló la operación de base de datos", body.Cause)
	})

	t.Run("Validation", func(t *testing.T) {
		rr := request("/apods/search?page=4611686018427387905", "fr-CA")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeError(t, rr)
		assert.Equal(t, "Numéro de page invalide", body.Error)
		assert.Equal(t, fmt.Sprintf("La page ne peut pas dépasser %d", search.MaxPage), body.Cause)
	})

	t.Run("Unsupported Language Falls Back To English", func(t *testing.T) {
		rr := request("/apod/2024-03-14", "de-DE")
		assert.Equal(t, "en", rr.Header().Get("Content-Language"))
		body := decodeError(t, rr)
		assert.Equal(t, "APOD not found", body.Error)
		assert.Equal(t, "No APOD found for date: 2024-03-14", body.Cause)
	})
}
