package listview

import (
	"strings"

	"golang.org/x/text/cases"
)

// FilterBySubstring keeps items where any of fields(item) contains term, case-insensitively.
// An empty term keeps everything. Order is preserved.
func FilterBySubstring[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.TrimSpace(term)
	if term == "" || fields == nil {
		return append([]T{}, items...)
	}
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(fold.String(f), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Paginate returns the 1-based page of size items. Out-of-range pages are empty.
func Paginate[T any](items []T, page, size int) []T {
	if size <= 0 || page < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return append([]T{}, items[start:end]...)
}
