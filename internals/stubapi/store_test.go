package stubapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	d, err := s.Create(ctx, "subjects", Doc{"name": "Math"})
	require.NoError(t, err)
	d["name"] = "changed"

	got, err := s.Get(ctx, "subjects", 1)
	require.NoError(t, err)
	assert.Equal(t, "Math", got["name"])
	assert.Equal(t, 1, got.ID())
}

func TestMemoryStoreReplaceAllRenumbers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for i := 0; i < 3; i++ {
		_, err := s.Create(ctx, "x", Doc{"n": i})
		require.NoError(t, err)
	}

	out, err := s.ReplaceAll(ctx, "x", []Doc{{"n": "a"}, {"n": "b"}})
	require.NoError(t, err)
	require.Len(t, out, 2)

	docs, err := s.List(ctx, "x")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, 1, docs[0].ID())
	assert.Equal(t, "b", docs[1]["n"])

	created, err := s.Create(ctx, "x", Doc{"n": "c"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID())
}

func TestMemoryStoreMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Get(ctx, "x", 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Update(ctx, "x", 1, Doc{}, true)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "x", 1), ErrNotFound)
}

func TestKindOf(t *testing.T) {
	cases := map[string]string{
		"buildings":                  "buildings",
		"subjects/4/topics":          "subjects/*/topics",
		"curriculums/2/subjects":     "curriculums/*/subjects",
		"institutions/1/class-hours": "institutions/*/class-hours",
	}
	for in, want := range cases {
		got, ok := kindOf(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	_, ok := kindOf("subjects/x/topics")
	assert.False(t, ok)
	_, ok = kindOf("unknown")
	assert.False(t, ok)
}

func TestRawToken(t *testing.T) {
	assert.Equal(t, "abc", RawToken("abc"))
	assert.Equal(t, "abc", RawToken("Bearer abc"))
	assert.Equal(t, "abc", RawToken("token abc"))
	assert.Equal(t, "", RawToken("  "))
}
