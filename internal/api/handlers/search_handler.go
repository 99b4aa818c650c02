// filepath: internal/api/handlers/search_handler.go
package handlers

import (
	"errors"
	"net/http"

	"apodapi/internal/i18n"
	"apodapi/internal/models"
	"apodapi/internal/search"
	"apodapi/internal/services"
)

// @Summary Search APODs
// @Description Filters pictures by title substring, date range and media type, one page at a time.
// @Tags APOD
// @Produce json
// @Param q query string false "Case-insensitive title substring"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param mediaType query string false "image or video"
// @Param perPage query int false "Page size, 1-199" default(10)
// @Param page query int false "Page number, from 1" default(1)
// @Param sort query string false "asc or desc" default(desc)
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} ErrorResponse "Invalid parameter"
// @Failure 404 {object} ErrorResponse "No APODs found"
// @Failure 500 {object} ErrorResponse
// @Router /apods/search [get]
func (h *Handlers) SearchPictures(w http.ResponseWriter, r *http.Request) {
	params, err := search.ParseParams(r.URL.Query())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	resp, err := h.Pictures.Search(r.Context(), params)
	if err != nil {
		if errors.Is(err, services.ErrNoResults) {
			respondWithLocalizedError(w, r, http.StatusNotFound, i18n.MsgNoAPODsFound, i18n.MsgNoSearchResults, nil)
			return
		}
		h.internalError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// @Summary List APODs in a date range
// @Description Returns every picture between start and end inclusive, oldest first. end defaults to today.
// @Tags APOD
// @Produce json
// @Param start query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param end query string false "Inclusive upper bound (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.PictureList
// @Failure 400 {object} ErrorResponse "Invalid date or range"
// @Failure 404 {object} ErrorResponse "No APODs in range"
// @Failure 500 {object} ErrorResponse
// @Router /apods/date-range [get]
func (h *Handlers) GetPicturesInRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, end := q.Get("start"), q.Get("end")

	pictures, err := h.Pictures.DateRange(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, services.ErrNoResults) {
			respondWithLocalizedError(w, r, http.StatusNotFound, i18n.MsgNoAPODsFound, i18n.MsgNoAPODsInRange, nil)
			return
		}
		h.internalError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.PictureList{Count: len(pictures), Apods: pictures})
}
