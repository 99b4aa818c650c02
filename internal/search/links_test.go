package search

import (
	"net/url"
	"strings"
	"testing"

	"apodapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	t.Run("Total Pages", func(t *testing.T) {
		for perPage := 1; perPage < MaxPerPage; perPage += 7 {
			for _, total := range []int{0, 1, perPage - 1, perPage, perPage + 1, 3*perPage + 2} {
				p := Paginate(total, 1, perPage, 0)
				want := (total + perPage - 1) / perPage
				assert.Equal(t, want, p.TotalPages, "total=%d perPage=%d", total, perPage)
				assert.Equal(t, total == 0, p.TotalPages == 0)
			}
		}
	})

	t.Run("Flags", func(t *testing.T) {
		p := Paginate(25, 1, 10, 10)
		assert.True(t, p.HasNextPage)
		assert.False(t, p.HasPreviousPage)
		assert.Equal(t, 3, p.TotalPages)

		p = Paginate(25, 3, 10, 5)
		assert.False(t, p.HasNextPage)
		assert.True(t, p.HasPreviousPage)

		// A full last page still reports a next page.
		p = Paginate(20, 2, 10, 10)
		assert.True(t, p.HasNextPage)
	})

	t.Run("Offset", func(t *testing.T) {
		assert.Equal(t, 0, Offset(1, 10))
		assert.Equal(t, 20, Offset(3, 10))
		assert.Equal(t, 0, Offset(0, 10))
	})
}

func TestBuildLinks(t *testing.T) {
	filter := models.SearchFilter{
		Query:     "dark nebula",
		StartDate: "2020-01-01",
		EndDate:   "2020-12-31",
		MediaType: "image",
		Sort:      "asc",
	}

	t.Run("Middle Page", func(t *testing.T) {
		links := BuildLinks(filter, Paginate(45, 2, 10, 10))

		require.NotNil(t, links.Next)
		require.NotNil(t, links.Previous)
		require.NotNil(t, links.First)
		require.NotNil(t, links.Last)

		assert.Equal(t, "/apods/search?endDate=2020-12-31&mediaType=image&page=3&perPage=10&q=dark+nebula&sort=asc&startDate=2020-01-01", *links.Next)
		assert.Contains(t, *links.Previous, "page=1&")
		assert.Contains(t, *links.First, "page=1&")
		assert.Contains(t, *links.Last, "page=5&")
		assert.Contains(t, *links.Previous, "q=dark+nebula")
	})

	t.Run("Single Page Collapses Last", func(t *testing.T) {
		links := BuildLinks(filter, Paginate(3, 1, 10, 3))
		assert.Nil(t, links.Next)
		assert.Nil(t, links.Previous)
		assert.NotNil(t, links.First)
		assert.Nil(t, links.Last)
	})

	t.Run("Omits Empty Parameters", func(t *testing.T) {
		links := BuildLinks(models.SearchFilter{Sort: "desc"}, Paginate(30, 2, 10, 10))
		for _, l := range []*string{links.Next, links.Previous, links.First, links.Last} {
			require.NotNil(t, l)
			assert.NotContains(t, *l, "=&")
			assert.False(t, strings.HasSuffix(*l, "="))
			assert.NotContains(t, *l, "q=")
			assert.NotContains(t, *l, "startDate")
			assert.NotContains(t, *l, "mediaType")
		}
		assert.Equal(t, "/apods/search?page=1&perPage=10&sort=desc", *links.First)
	})

	t.Run("Links Reproduce The Filter", func(t *testing.T) {
		links := BuildLinks(filter, Paginate(45, 2, 10, 10))
		u, err := url.Parse(*links.Next)
		require.NoError(t, err)
		assert.Equal(t, BasePath, u.Path)

		p, err := ParseParams(u.Query())
		require.NoError(t, err)
		assert.Equal(t, filter, p.Filter())
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 10, p.PerPage)
	})
}

func TestNewResponse(t *testing.T) {
	filter := models.SearchFilter{Sort: "desc"}
	p := Paginate(1, 1, 10, 1)
	resp := NewResponse(filter, p, BuildLinks(filter, p), nil)

	assert.NotNil(t, resp.Apods)
	assert.Len(t, resp.Apods, 0)
	assert.Equal(t, "desc", resp.Sort)
	assert.Equal(t, 1, resp.TotalRecords)
	assert.Equal(t, 1, resp.TotalPages)
	assert.Nil(t, resp.Links.Last)
}
