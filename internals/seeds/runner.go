package seeds

import (
	"context"

	"otm_dashboard/internals/stubapi"
)

// RunAllSeeds fills an empty stub backend with demo data. Existing users and
// non-empty collections are left alone.
func RunAllSeeds(ctx context.Context, store stubapi.Store, users stubapi.UserStore) error {
	if err := SeedUsersFromJSON(ctx, users, "data/data_users.json"); err != nil {
		return err
	}
	return SeedDocumentsFromJSON(ctx, store, "data/data_documents.json")
}
