package stubapi

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is the process-local Store used by tests and `-memory` runs.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[int]Doc
	next map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string]map[int]Doc{}, next: map[string]int{}}
}

func (m *MemoryStore) List(_ context.Context, collection string) ([]Doc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows := m.docs[collection]
	ids := make([]int, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]Doc, 0, len(ids))
	for _, id := range ids {
		d, err := clone(rows[id])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *MemoryStore) Get(_ context.Context, collection string, id int) (Doc, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(d)
}

func (m *MemoryStore) Create(_ context.Context, collection string, doc Doc) (Doc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next[collection]++
	id := m.next[collection]
	d, err := clone(merge(doc, Doc{"id": id}))
	if err != nil {
		return nil, err
	}
	if m.docs[collection] == nil {
		m.docs[collection] = map[int]Doc{}
	}
	m.docs[collection][id] = d
	return clone(d)
}

func (m *MemoryStore) Update(_ context.Context, collection string, id int, doc Doc, partial bool) (Doc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	if !partial {
		cur = Doc{}
	}
	d, err := clone(merge(merge(cur, doc), Doc{"id": id}))
	if err != nil {
		return nil, err
	}
	m.docs[collection][id] = d
	return clone(d)
}

func (m *MemoryStore) Delete(_ context.Context, collection string, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[collection][id]; !ok {
		return ErrNotFound
	}
	delete(m.docs[collection], id)
	return nil
}

func (m *MemoryStore) ReplaceAll(_ context.Context, collection string, docs []Doc) ([]Doc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := make(map[int]Doc, len(docs))
	out := make([]Doc, 0, len(docs))
	for i, doc := range docs {
		d, err := clone(merge(doc, Doc{"id": i + 1}))
		if err != nil {
			return nil, err
		}
		rows[i+1] = d
		cp, err := clone(d)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	m.docs[collection] = rows
	m.next[collection] = len(docs)
	return out, nil
}
