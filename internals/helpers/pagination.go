// file: internals/helpers/pagination.go
package helper

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"otm_dashboard/internals/listview"
)

/* ===============================
   Pagination type & defaults
=================================*/

type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
	Count      int  `json:"count"` // jumlah item di halaman ini
}

/* ===============================
   Paging resolver (query → page/perPage/offset)
=================================*/

type Paging struct {
	Page    int
	PerPage int
	Offset  int
	Limit   int
}

// ResolvePaging reads ?page= and ?page_size= (aliases ?per_page=, ?limit=) and normalizes them.
// maxPerPage 0 means no upper bound.
func ResolvePaging(c *fiber.Ctx, defaultPerPage, maxPerPage int) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = 1
	}

	perPageStr := ""
	for _, k := range []string{"page_size", "per_page", "limit"} {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			perPageStr = v
			break
		}
	}
	perPage, _ := strconv.Atoi(perPageStr)
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}

	return Paging{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
		Limit:   perPage,
	}
}

// ListQuery is what a list page URL carries. page_size is only honoured when given.
func ListQuery(c *fiber.Ctx) listview.Query {
	q := listview.Query{
		Page:   c.QueryInt("page", 1),
		Search: strings.TrimSpace(c.Query("search")),
	}
	if n := c.QueryInt("page_size", 0); n > 0 {
		q.PageSize = n
	}
	return q
}

/* ===============================
   Pagination builders
=================================*/

func BuildPaginationFromPage(total, page, perPage int) Pagination {
	if perPage <= 0 {
		perPage = listview.DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	totalPages := (total + perPage - 1) / perPage // ceil
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

func lenOf(v any) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len()
	default:
		return 0
	}
}
