package seeds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otm_dashboard/internals/stubapi"
)

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, users := stubapi.NewMemoryStore(), stubapi.NewMemoryUsers()

	require.NoError(t, RunAllSeeds(ctx, store, users))
	require.NoError(t, RunAllSeeds(ctx, store, users))

	rooms, err := store.List(ctx, "rooms")
	require.NoError(t, err)
	assert.Len(t, rooms, 4)

	hours, err := store.List(ctx, "institutions/1/class-hours")
	require.NoError(t, err)
	assert.Len(t, hours, 3)

	u, err := users.FindUser(ctx, "head")
	require.NoError(t, err)
	assert.True(t, u.HasRole("teacher"))
	assert.True(t, u.HasRole("otm_admin"))
	assert.True(t, stubapi.CheckPassword(u.Password, "head12345"))
}
