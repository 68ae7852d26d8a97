package listview

import "otm_dashboard/internals/apiclient"

// View is what templates render. It never aliases controller memory.
type View[T any] struct {
	State      State
	Items      []T
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	Search     string
	Err        *apiclient.AppError

	Pagination PaginationMode
	SearchMode SearchMode
}

func (v View[T]) IsLoading() bool { return v.State == Loading || v.State == Idle }
func (v View[T]) IsErrored() bool { return v.State == Errored }
func (v View[T]) IsEmpty() bool   { return v.State == Loaded && len(v.Items) == 0 }
func (v View[T]) HasPrev() bool   { return v.Page > 1 }
func (v View[T]) HasNext() bool   { return v.Page < v.TotalPages }
func (v View[T]) PrevPage() int   { return v.Page - 1 }
func (v View[T]) NextPage() int   { return v.Page + 1 }

// Offset is the 0-based position of the first row on this page, for row numbering.
func (v View[T]) Offset() int {
	if v.Page < 1 {
		return 0
	}
	return (v.Page - 1) * v.PageSize
}

func (v View[T]) ErrMessage() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Message
}

// PageWindow lists up to width page numbers centred on the current page.
func (v View[T]) PageWindow(width int) []int {
	if width < 1 {
		width = 1
	}
	start := v.Page - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > v.TotalPages {
		end = v.TotalPages
		start = end - width + 1
		if start < 1 {
			start = 1
		}
	}
	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}
