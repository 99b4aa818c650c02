package search

import (
	"net/url"
	"strings"

	"apodapi/internal/models"
)

// Query string keys of GET /apods/search.
const (
	ParamQuery     = "q"
	ParamStartDate = "startDate"
	ParamEndDate   = "endDate"
	ParamMediaType = "mediaType"
	ParamPerPage   = "perPage"
	ParamPage      = "page"
	ParamSort      = "sort"
)

// Params is a fully validated search request.
type Params struct {
	Query     string
	StartDate string
	EndDate   string
	MediaType string
	Sort      string
	Page      int
	PerPage   int
}

// ParseParams validates the raw query string of a search request.
// Checks run in a fixed order and the first failure is returned.
func ParseParams(values url.Values) (Params, error) {
	p := Params{
		Query: strings.TrimSpace(values.Get(ParamQuery)),
	}

	var err error
	if raw := values.Get(ParamStartDate); raw != "" {
		if p.StartDate, err = ValidateDate(raw); err != nil {
			return Params{}, err
		}
	}
	if raw := values.Get(ParamEndDate); raw != "" {
		if p.EndDate, err = ValidateDate(raw); err != nil {
			return Params{}, err
		}
	}
	if err = ValidateDateRange(p.StartDate, p.EndDate); err != nil {
		return Params{}, err
	}
	if p.MediaType, err = ValidateMediaType(values.Get(ParamMediaType)); err != nil {
		return Params{}, err
	}
	if p.PerPage, err = ValidatePerPage(values.Get(ParamPerPage)); err != nil {
		return Params{}, err
	}
	if p.Page, err = ValidatePage(values.Get(ParamPage)); err != nil {
		return Params{}, err
	}
	if p.Sort, err = ValidateSort(values.Get(ParamSort)); err != nil {
		return Params{}, err
	}

	return p, nil
}

// Filter returns the store-facing filter. Missing date bounds stay unconstrained.
func (p Params) Filter() models.SearchFilter {
	sort := p.Sort
	if sort == "" {
		sort = models.SortDesc
	}
	return models.SearchFilter{
		Query:     p.Query,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		MediaType: p.MediaType,
		Sort:      sort,
	}
}

// Offset is the number of rows to skip for the requested page.
func (p Params) Offset() int {
	return Offset(p.Page, p.PerPage)
}
