package repository

import (
	"context"
	"fmt"

	"skillbridge/internal/database"
	"skillbridge/internal/domain/recommend"

	"github.com/google/uuid"
)

// PostgresCatalogRepository implements recommend.CatalogStore over the
// catalog_items and catalog_item_attributes tables. Attribute order is the
// item's own order, preserved by the position column.
type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListItems(ctx context.Context, kind recommend.Kind, limit int) ([]recommend.CatalogItem, error) {
	if limit <= 0 {
		limit = 200
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(platform, ''), COALESCE(track, ''), COALESCE(url, ''),
		        COALESCE(experience_level, ''), COALESCE(cost, '')
		 FROM catalog_items
		 WHERE kind = $1
		 ORDER BY created_at DESC, id ASC
		 LIMIT $2`,
		string(kind), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	defer rows.Close()

	items := make([]recommend.CatalogItem, 0, limit)
	ids := make([]uuid.UUID, 0, limit)
	for rows.Next() {
		var (
			item     recommend.CatalogItem
			levelRaw string
			costRaw  string
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Platform, &item.Track, &item.URL, &levelRaw, &costRaw); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		item.Kind = kind
		if level, ok := recommend.ParseExperienceLevel(levelRaw); ok {
			item.Experience = &level
		}
		item.Cost = recommend.CostCategory(recommend.Normalize(costRaw))

		items = append(items, item)
		ids = append(ids, item.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	if len(items) == 0 {
		return items, nil
	}

	attrsByID, err := r.findAttributesByItemIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list catalog attributes: %w", err)
	}
	for i := range items {
		items[i].Attributes = attrsByID[items[i].ID]
	}
	return items, nil
}

func (r *PostgresCatalogRepository) findAttributesByItemIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT item_id, name
		 FROM catalog_item_attributes
		 WHERE item_id = ANY($1)
		 ORDER BY item_id, position ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]string, len(ids))
	for rows.Next() {
		var (
			itemID uuid.UUID
			name   string
		)
		if err := rows.Scan(&itemID, &name); err != nil {
			return nil, err
		}
		out[itemID] = append(out[itemID], name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
