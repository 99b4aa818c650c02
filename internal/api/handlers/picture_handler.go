// filepath: internal/api/handlers/picture_handler.go
package handlers

import (
	"errors"
	"net/http"

	"apodapi/internal/i18n"
	"apodapi/internal/models"
	"apodapi/internal/services"

	"github.com/gorilla/mux"
)

// @Summary Get the latest APOD
// @Description Returns the picture with the most recent date.
// @Tags APOD
// @Produce json
// @Success 200 {object} models.Picture
// @Failure 404 {object} ErrorResponse "The archive is empty"
// @Failure 500 {object} ErrorResponse
// @Router /apod [get]
func (h *Handlers) GetLatestPicture(w http.ResponseWriter, r *http.Request) {
	p, err := h.Pictures.Latest(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithLocalizedError(w, r, http.StatusNotFound, i18n.MsgNoAPODFound, i18n.MsgArchiveEmpty, nil)
			return
		}
		h.internalError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, p)
}

// @Summary Get a random APOD
// @Tags APOD
// @Produce json
// @Success 200 {object} models.Picture
// @Failure 404 {object} ErrorResponse "The archive is empty"
// @Failure 500 {object} ErrorResponse
// @Router /apod/random [get]
func (h *Handlers) GetRandomPicture(w http.ResponseWriter, r *http.Request) {
	p, err := h.Pictures.Random(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithLocalizedError(w, r, http.StatusNotFound, i18n.MsgNoAPODFound, i18n.MsgNoRandomAPOD, nil)
			return
		}
		h.internalError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, p)
}

// @Summary Get the APOD of a date
// @Tags APOD
// @Produce json
// @Param date path string true "Date in YYYY-MM-DD format"
// @Success 200 {object} models.Picture
// @Failure 400 {object} ErrorResponse "Malformed date"
// @Failure 404 {object} ErrorResponse "No APOD for that date"
// @Failure 500 {object} ErrorResponse
// @Router /apod/{date} [get]
func (h *Handlers) GetPictureByDate(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	p, err := h.Pictures.ByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithLocalizedError(w, r, http.StatusNotFound, i18n.MsgAPODNotFound, i18n.MsgNoAPODForDate, map[string]interface{}{"Date": date})
			return
		}
		h.internalError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, p)
}

// @Summary List every APOD
// @Description Returns all stored pictures ordered by date, unpaginated.
// @Tags APOD
// @Produce json
// @Success 200 {object} models.PictureList
// @Failure 500 {object} ErrorResponse
// @Router /apods [get]
func (h *Handlers) GetAllPictures(w http.ResponseWriter, r *http.Request) {
	pictures, err := h.Pictures.All(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	// Ensure an empty array `[]` is returned instead of `null`
	if pictures == nil {
		pictures = []models.Picture{}
	}
	respondWithJSON(w, http.StatusOK, models.PictureList{Count: len(pictures), Apods: pictures})
}

// @Summary Ingest an APOD from NASA
// @Description Fetches the picture of the day (or of ?date=) from the NASA API and stores it.
// @Tags APOD
// @Produce json
// @Param x-api-key header string true "Ingest API key"
// @Param date query string false "Date in YYYY-MM-DD format, defaults to today"
// @Success 201 {object} models.Picture
// @Failure 400 {object} ErrorResponse "Malformed date"
// @Failure 401 {object} ErrorResponse "Invalid or missing API key"
// @Failure 409 {object} ErrorResponse "APOD for this date already exists"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse
// @Router /apod [post]
func (h *Handlers) IngestPicture(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	p, err := h.Pictures.Ingest(r.Context(), date, ClientIP(r))
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			respondWithLocalizedError(w, r, http.StatusConflict, i18n.MsgAPODExists, i18n.MsgAPODExistsCause, nil)
			return
		}
		h.internalError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, p)
}

// internalError writes validation and failure responses; anything the
// service did not classify is reported as a 500.
func (h *Handlers) internalError(w http.ResponseWriter, r *http.Request, err error) {
	if respondWithServiceError(w, r, err) {
		return
	}
	respondWithLocalizedError(w, r, http.StatusInternalServerError, i18n.MsgInternalServerError, i18n.MsgUnexpectedError, nil)
}
