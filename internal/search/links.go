package search

import (
	"net/url"
	"strconv"

	"apodapi/internal/models"
)

// BasePath is the route the navigation links point at.
const BasePath = "/apods/search"

// BuildLinks returns next/previous/first/last URLs for a search page.
// Each URL carries the filter and page size; empty parameters are left out so
// that equal states always serialize to equal strings.
func BuildLinks(filter models.SearchFilter, p models.Pagination) models.Links {
	var links models.Links

	if p.HasNextPage {
		links.Next = pageURL(filter, p.PerPage, p.Page+1)
	}
	if p.HasPreviousPage {
		links.Previous = pageURL(filter, p.PerPage, max(p.Page-1, 1))
	}

	links.First = pageURL(filter, p.PerPage, 1)

	if p.TotalPages > 0 {
		last := pageURL(filter, p.PerPage, p.TotalPages)
		if *last != *links.First {
			links.Last = last
		}
	}

	return links
}

func pageURL(filter models.SearchFilter, perPage, page int) *string {
	v := url.Values{}
	setIfNotEmpty(v, ParamQuery, filter.Query)
	setIfNotEmpty(v, ParamStartDate, filter.StartDate)
	setIfNotEmpty(v, ParamEndDate, filter.EndDate)
	setIfNotEmpty(v, ParamMediaType, filter.MediaType)
	if perPage > 0 {
		v.Set(ParamPerPage, strconv.Itoa(perPage))
	}
	v.Set(ParamPage, strconv.Itoa(page))
	setIfNotEmpty(v, ParamSort, filter.Sort)

	s := BasePath + "?" + v.Encode()
	return &s
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
