package search

import "apodapi/internal/models"

// NewResponse assembles the search envelope. apods is never null.
func NewResponse(filter models.SearchFilter, p models.Pagination, links models.Links, pictures []models.Picture) models.SearchResponse {
	if pictures == nil {
		pictures = []models.Picture{}
	}

	return models.SearchResponse{
		TotalRecords:    p.TotalRecords,
		TotalPages:      p.TotalPages,
		Page:            p.Page,
		PerPage:         p.PerPage,
		Sort:            filter.Sort,
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
		Links:           links,
		Apods:           pictures,
	}
}
