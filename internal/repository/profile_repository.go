package repository

import (
	"context"
	"errors"
	"fmt"

	"skillbridge/internal/database"
	"skillbridge/internal/domain/recommend"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostgresProfileRepository implements recommend.ProfileStore.
type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (recommend.Profile, error) {
	var (
		track     string
		levelRaw  string
		education string
	)
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(preferred_track, ''), COALESCE(experience_level, ''), COALESCE(education, '')
		 FROM profiles
		 WHERE id = $1`,
		id,
	).Scan(&track, &levelRaw, &education)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recommend.Profile{}, recommend.ErrProfileNotFound
		}
		return recommend.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	skills, err := r.listNames(ctx, "profile_skills", id)
	if err != nil {
		return recommend.Profile{}, fmt.Errorf("get profile skills: %w", err)
	}
	interests, err := r.listNames(ctx, "profile_interests", id)
	if err != nil {
		return recommend.Profile{}, fmt.Errorf("get profile interests: %w", err)
	}

	level, _ := recommend.ParseExperienceLevel(levelRaw)

	return recommend.Profile{
		ID:             id,
		Skills:         skills,
		Interests:      interests,
		PreferredTrack: track,
		Experience:     level,
		Education:      education,
	}, nil
}

func (r *PostgresProfileRepository) listNames(ctx context.Context, table string, profileID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name FROM `+table+` WHERE profile_id = $1 ORDER BY position ASC`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
