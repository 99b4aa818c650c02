package search

import "apodapi/internal/models"

// Offset returns the number of rows to skip for a 1-based page.
// Pages beyond MaxPage are clamped to it, so the result is never negative.
func Offset(page, perPage int) int {
	if page < 1 || perPage < 1 {
		return 0
	}
	if page > MaxPage {
		page = MaxPage
	}
	if perPage >= MaxPerPage {
		perPage = MaxPerPage - 1
	}
	return (page - 1) * perPage
}

// Paginate computes the page metadata of a search.
//
// hasNextPage only says whether the current page came back full; it does not
// compare page against totalPages, so a full last page still advertises a next page.
func Paginate(totalRecords, page, perPage, returned int) models.Pagination {
	totalPages := 0
	if totalRecords > 0 && perPage > 0 {
		totalPages = (totalRecords + perPage - 1) / perPage
	}

	return models.Pagination{
		Page:            page,
		PerPage:         perPage,
		TotalRecords:    totalRecords,
		TotalPages:      totalPages,
		HasNextPage:     perPage > 0 && returned == perPage,
		HasPreviousPage: page > 1,
	}
}
