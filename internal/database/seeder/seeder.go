package seeder

import (
	"context"
	"fmt"

	"skillbridge/internal/database"

	"github.com/google/uuid"
)

type Profile struct {
	ID             uuid.UUID
	PreferredTrack string
	Experience     string
	Education      string
	Skills         []string
	Interests      []string
}

type CatalogItem struct {
	ID         uuid.UUID
	Kind       string
	Title      string
	Platform   string
	Track      string
	URL        string
	Experience string
	Cost       string
	Attributes []string
}

// Run inserts the demo dataset. Existing rows with the same keys are left
// untouched, so the seeder can run against a populated database.
func Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, p := range demoProfiles() {
		if err := seedProfile(ctx, db, p); err != nil {
			return fmt.Errorf("seed profile %s: %w", p.ID, err)
		}
	}
	for _, item := range demoCatalog() {
		if err := seedCatalogItem(ctx, db, item); err != nil {
			return fmt.Errorf("seed catalog item %s: %w", item.ID, err)
		}
	}
	return nil
}

func seedProfile(ctx context.Context, db database.DB, p Profile) error {
	_, err := db.Exec(ctx,
		`INSERT INTO profiles (id, preferred_track, experience_level, education)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		p.ID, p.PreferredTrack, p.Experience, p.Education,
	)
	if err != nil {
		return err
	}
	for i, name := range p.Skills {
		if _, err := db.Exec(ctx,
			`INSERT INTO profile_skills (profile_id, name, position)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (profile_id, name) DO NOTHING`,
			p.ID, name, i,
		); err != nil {
			return err
		}
	}
	for i, name := range p.Interests {
		if _, err := db.Exec(ctx,
			`INSERT INTO profile_interests (profile_id, name, position)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (profile_id, name) DO NOTHING`,
			p.ID, name, i,
		); err != nil {
			return err
		}
	}
	return nil
}

func seedCatalogItem(ctx context.Context, db database.DB, item CatalogItem) error {
	_, err := db.Exec(ctx,
		`INSERT INTO catalog_items (id, kind, title, platform, track, url, experience_level, cost)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO NOTHING`,
		item.ID, item.Kind, item.Title, item.Platform, item.Track, item.URL, item.Experience, item.Cost,
	)
	if err != nil {
		return err
	}
	for i, name := range item.Attributes {
		if _, err := db.Exec(ctx,
			`INSERT INTO catalog_item_attributes (item_id, name, position)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (item_id, name) DO NOTHING`,
			item.ID, name, i,
		); err != nil {
			return err
		}
	}
	return nil
}
