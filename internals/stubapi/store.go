// file: internals/stubapi/store.go
package stubapi

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// Doc is one stored record in backend field names. "id" is assigned by the store.
type Doc map[string]any

var ErrNotFound = errors.New("not found")

// Store keeps documents per collection path ("buildings", "subjects/3/topics").
type Store interface {
	List(ctx context.Context, collection string) ([]Doc, error)
	Get(ctx context.Context, collection string, id int) (Doc, error)
	Create(ctx context.Context, collection string, doc Doc) (Doc, error)
	// Update replaces the document, or merges into it when partial is set.
	Update(ctx context.Context, collection string, id int, doc Doc, partial bool) (Doc, error)
	Delete(ctx context.Context, collection string, id int) error
	// ReplaceAll swaps the whole collection for docs, renumbering ids from 1.
	ReplaceAll(ctx context.Context, collection string, docs []Doc) ([]Doc, error)
}

// ID reads the numeric id of a document.
func (d Doc) ID() int {
	n, _ := intOf(d["id"])
	return n
}

func clone(d Doc) (Doc, error) {
	b, err := sonic.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out Doc
	if err := sonic.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func merge(dst, src Doc) Doc {
	out := Doc{}
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		out[k] = v
	}
	return out
}

func intOf(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t != float64(int(t)) {
			return 0, false
		}
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	}
	return 0, false
}
