package schema

import (
	"context"
	"fmt"

	"skillbridge/internal/database"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		preferred_track TEXT,
		experience_level TEXT,
		education TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS profile_skills (
		profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		position INT NOT NULL DEFAULT 0,
		PRIMARY KEY (profile_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS profile_interests (
		profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		position INT NOT NULL DEFAULT 0,
		PRIMARY KEY (profile_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS catalog_items (
		id UUID PRIMARY KEY,
		kind TEXT NOT NULL,
		title TEXT NOT NULL,
		platform TEXT,
		track TEXT,
		url TEXT,
		experience_level TEXT,
		cost TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_catalog_items_kind ON catalog_items (kind, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS catalog_item_attributes (
		item_id UUID NOT NULL REFERENCES catalog_items(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		position INT NOT NULL DEFAULT 0,
		PRIMARY KEY (item_id, name)
	)`,
}

// Ensure creates the tables the service reads from. All statements are
// idempotent, so repeated startups are safe.
func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
