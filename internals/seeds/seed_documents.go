package seeds

import (
	"context"
	"log"

	"github.com/bytedance/sonic"

	"otm_dashboard/internals/stubapi"
)

type CollectionSeed struct {
	Collection string        `json:"collection"`
	Docs       []stubapi.Doc `json:"docs"`
}

// SeedDocumentsFromJSON creates docs in file order, so ids are 1..n per collection.
func SeedDocumentsFromJSON(ctx context.Context, store stubapi.Store, filePath string) error {
	log.Println("📥 Reading document seeds:", filePath)

	file, err := dataFS.ReadFile(filePath)
	if err != nil {
		return err
	}
	var seeds []CollectionSeed
	if err := sonic.Unmarshal(file, &seeds); err != nil {
		return err
	}

	for _, s := range seeds {
		existing, err := store.List(ctx, s.Collection)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			log.Printf("ℹ️ %s already has %d rows, skipped.", s.Collection, len(existing))
			continue
		}
		for _, d := range s.Docs {
			if _, err := store.Create(ctx, s.Collection, d); err != nil {
				log.Printf("❌ Failed to seed %s: %v", s.Collection, err)
				return err
			}
		}
		log.Printf("✅ Seeded %d rows into %s", len(s.Docs), s.Collection)
	}
	return nil
}
