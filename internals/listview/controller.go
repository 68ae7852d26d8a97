// file: internals/listview/controller.go
package listview

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"otm_dashboard/internals/apiclient"
)

/* =======================================================
   MODES & STATE
   ======================================================= */

type PaginationMode int

const (
	// ServerPaginated sends page/page_size and trusts the {count, results} envelope.
	ServerPaginated PaginationMode = iota
	// ClientPaginated fetches the whole collection once and slices it in memory.
	ClientPaginated
)

func (m PaginationMode) String() string {
	if m == ClientPaginated {
		return "client"
	}
	return "server"
}

type SearchMode int

const (
	// ServerSearch appends the term as a query parameter.
	ServerSearch SearchMode = iota
	// ClientSearch filters fetched rows by case-insensitive substring.
	ClientSearch
)

func (m SearchMode) String() string {
	if m == ClientSearch {
		return "client"
	}
	return "server"
}

type State int

const (
	Idle State = iota
	Loading
	Loaded
	Errored
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	default:
		return "idle"
	}
}

var (
	ErrPageOutOfRange  = errors.New("page out of range")
	ErrInvalidPageSize = errors.New("page size must be positive")
	// ErrStaleResponse means a newer request was issued while this one was in flight;
	// its payload was dropped and did not touch the view.
	ErrStaleResponse = errors.New("stale response discarded")
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 200
)

/* =======================================================
   CONFIG
   ======================================================= */

// Fetcher is the read half of apiclient.Client.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, params url.Values) apiclient.Result
}

type Config[T any] struct {
	Endpoint   string
	Params     url.Values
	Pagination PaginationMode
	Search     SearchMode
	PageSize   int

	PageParam   string
	SizeParam   string
	SearchParam string

	// SearchFields lists the values a client-side search looks into.
	SearchFields func(T) []string
}

func (cfg *Config[T]) defaults() {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.PageParam == "" {
		cfg.PageParam = "page"
	}
	if cfg.SizeParam == "" {
		cfg.SizeParam = "page_size"
	}
	if cfg.SearchParam == "" {
		cfg.SearchParam = "search"
	}
}

// Query is the stateless form of the page inputs (what a URL carries).
type Query struct {
	Page     int
	PageSize int
	Search   string
}

/* =======================================================
   CONTROLLER
   ======================================================= */

// Controller owns one page's view of one backend collection.
// Every mutation goes through Mutate, which reloads the whole list afterwards; rows are
// never patched in place.
type Controller[T any] struct {
	api Fetcher
	cfg Config[T]

	mu     sync.Mutex
	seq    uint64
	state  State
	loaded bool

	page   int
	size   int
	search string

	rows  []T // last fetched rows: whole collection (client mode) or current page (server mode)
	items []T
	total int
	err   *apiclient.AppError
}

func New[T any](api Fetcher, cfg Config[T]) *Controller[T] {
	cfg.defaults()
	return &Controller[T]{
		api:   api,
		cfg:   cfg,
		page:  1,
		size:  cfg.PageSize,
		items: []T{},
	}
}

func (c *Controller[T]) Config() Config[T] { return c.cfg }

// Refresh re-fetches the authoritative list.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	prev := c.state
	c.state = Loading
	params := c.paramsLocked()
	c.mu.Unlock()

	res := c.api.Fetch(ctx, c.cfg.Endpoint, params)
	rows, total, appErr := c.decode(res)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return ErrStaleResponse
	}
	if ctx != nil && ctx.Err() != nil {
		// caller went away: leave the view as it was
		c.state = prev
		return ctx.Err()
	}
	if appErr != nil {
		c.state = Errored
		c.err = appErr
		return appErr
	}

	c.err = nil
	c.state = Loaded
	c.loaded = true
	c.rows = rows
	c.total = total
	c.recomputeLocked()
	return nil
}

func (c *Controller[T]) decode(res apiclient.Result) ([]T, int, *apiclient.AppError) {
	if !res.Success {
		return nil, 0, res.Err
	}
	if !res.ResultsShapeOK() {
		return nil, 0, apiclient.NewShapeError("%s: \"results\" is not a list", c.cfg.Endpoint)
	}
	rows, err := apiclient.DecodeResults[T](res)
	if err != nil {
		var appErr *apiclient.AppError
		if errors.As(err, &appErr) {
			return nil, 0, appErr
		}
		return nil, 0, apiclient.NewShapeError("%v", err)
	}
	return rows, res.Count, nil
}

func (c *Controller[T]) paramsLocked() url.Values {
	params := url.Values{}
	for k, vs := range c.cfg.Params {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	if c.cfg.Pagination == ServerPaginated {
		params.Set(c.cfg.PageParam, strconv.Itoa(c.page))
		params.Set(c.cfg.SizeParam, strconv.Itoa(c.size))
	}
	if c.cfg.Search == ServerSearch && c.search != "" {
		params.Set(c.cfg.SearchParam, c.search)
	}
	return params
}

// recomputeLocked derives items/total from rows for the in-memory parts of the strategy.
func (c *Controller[T]) recomputeLocked() {
	rows := c.rows
	if c.cfg.Search == ClientSearch && c.search != "" {
		rows = FilterBySubstring(rows, c.search, c.cfg.SearchFields)
	}

	if c.cfg.Pagination == ClientPaginated {
		c.total = len(rows)
		if tp := totalPages(c.total, c.size); c.page > tp {
			c.page = tp
		}
		c.items = Paginate(rows, c.page, c.size)
		return
	}

	if c.cfg.Search == ClientSearch && c.search != "" {
		c.total = len(rows)
	}
	c.items = append([]T(nil), rows...)
	if c.items == nil {
		c.items = []T{}
	}
}

func (c *Controller[T]) totalPagesLocked() int {
	return totalPages(c.total, c.size)
}

func totalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// SetPage moves to page n. Page 0, negatives and pages past the last known page are
// rejected before any request is issued.
func (c *Controller[T]) SetPage(ctx context.Context, n int) error {
	c.mu.Lock()
	if n < 1 || (c.loaded && n > c.totalPagesLocked()) {
		c.mu.Unlock()
		return ErrPageOutOfRange
	}
	c.page = n
	if c.cfg.Pagination == ClientPaginated && c.loaded {
		c.recomputeLocked()
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

func (c *Controller[T]) SetPageSize(ctx context.Context, n int) error {
	if n < 1 {
		return ErrInvalidPageSize
	}
	if n > MaxPageSize {
		n = MaxPageSize
	}
	c.mu.Lock()
	c.size = n
	c.page = 1
	if c.cfg.Pagination == ClientPaginated && c.loaded {
		c.recomputeLocked()
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

func (c *Controller[T]) SetSearch(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	c.mu.Lock()
	c.search = term
	if c.cfg.Search == ClientSearch && c.loaded {
		if c.cfg.Pagination == ClientPaginated {
			c.page = 1
		}
		c.recomputeLocked()
		c.mu.Unlock()
		return nil
	}
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Apply loads the list for inputs coming from a URL. Pages below 1 are clamped to 1 and
// pages past the end to the last page (server mode spends one extra request on that).
func (c *Controller[T]) Apply(ctx context.Context, q Query) error {
	c.mu.Lock()
	if q.PageSize > 0 {
		c.size = q.PageSize
		if c.size > MaxPageSize {
			c.size = MaxPageSize
		}
	}
	c.page = q.Page
	if c.page < 1 {
		c.page = 1
	}
	c.search = strings.TrimSpace(q.Search)
	c.mu.Unlock()

	err := c.Refresh(ctx)

	var appErr *apiclient.AppError
	if err != nil && errors.As(err, &appErr) && appErr.Status == http.StatusNotFound && c.cfg.Pagination == ServerPaginated {
		// DRF answers 404 "Invalid page." past the end; retry from the first page
		c.mu.Lock()
		retry := c.page > 1
		c.page = 1
		c.mu.Unlock()
		if !retry {
			return err
		}
		if err = c.Refresh(ctx); err != nil {
			return err
		}
		c.mu.Lock()
		last := c.totalPagesLocked()
		c.mu.Unlock()
		if last > 1 && q.Page > last {
			c.mu.Lock()
			c.page = last
			c.mu.Unlock()
			return c.Refresh(ctx)
		}
		return nil
	}
	if err != nil {
		return err
	}

	c.mu.Lock()
	last := c.totalPagesLocked()
	if c.page <= last {
		c.mu.Unlock()
		return nil
	}
	c.page = last
	if c.cfg.Pagination == ClientPaginated {
		c.recomputeLocked()
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Prime sets the page inputs without loading, e.g. before a Mutate issued from a list page.
func (c *Controller[T]) Prime(q Query) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if q.PageSize > 0 {
		c.size = min(q.PageSize, MaxPageSize)
	}
	c.page = max(q.Page, 1)
	c.search = strings.TrimSpace(q.Search)
}

func (c *Controller[T]) query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Query{Page: c.page, PageSize: c.size, Search: c.search}
}

// Mutate runs a create/update/delete and, when it succeeds, reloads the whole list with the
// current inputs. A delete that empties the last page lands on the new last page.
func (c *Controller[T]) Mutate(ctx context.Context, op func(context.Context) apiclient.Result) (apiclient.Result, error) {
	res := op(ctx)
	if !res.Success {
		return res, nil
	}
	return res, c.Apply(ctx, c.query())
}

// All is every row of the last successful fetch, before search and paging.
func (c *Controller[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T{}, c.rows...)
}

// View is an immutable snapshot for rendering.
func (c *Controller[T]) View() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View[T]{
		State:      c.state,
		Items:      append([]T{}, c.items...),
		Page:       c.page,
		PageSize:   c.size,
		Total:      c.total,
		TotalPages: c.totalPagesLocked(),
		Search:     c.search,
		Err:        c.err,
		Pagination: c.cfg.Pagination,
		SearchMode: c.cfg.Search,
	}
}
