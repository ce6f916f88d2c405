package repository

import (
	"context"
	"fmt"

	"squadbot/database"
	"squadbot/domain/entities"
)

// MatchRepository implements the MatchRepository interface
type MatchRepository struct {
	q Queryable
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *database.DB) *MatchRepository {
	return &MatchRepository{q: db.Pool}
}

// NewMatchRepositoryWithQueryable creates a repository over an arbitrary queryable (e.g. a tx)
func NewMatchRepositoryWithQueryable(q Queryable) *MatchRepository {
	return &MatchRepository{q: q}
}

// Create inserts a new match record
func (r *MatchRepository) Create(ctx context.Context, match *entities.ScheduledMatch) error {
	query := `
		INSERT INTO matches (id, guild_id, date, time, opponent, league, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.q.QueryRow(ctx, query,
		match.ID,
		match.GuildID,
		match.Date,
		match.Time,
		match.Opponent,
		match.League,
		match.CreatedBy,
	).Scan(&match.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create match for guild %d: %w", match.GuildID, err)
	}

	return nil
}

// ListByGuild returns all matches for a guild in insertion order
func (r *MatchRepository) ListByGuild(ctx context.Context, guildID int64) ([]*entities.ScheduledMatch, error) {
	query := `
		SELECT id, guild_id, date, time, opponent, league, created_by, created_at
		FROM matches
		WHERE guild_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.q.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for guild %d: %w", guildID, err)
	}
	defer rows.Close()

	var matches []*entities.ScheduledMatch
	for rows.Next() {
		var m entities.ScheduledMatch
		if err := rows.Scan(
			&m.ID,
			&m.GuildID,
			&m.Date,
			&m.Time,
			&m.Opponent,
			&m.League,
			&m.CreatedBy,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match rows: %w", err)
	}

	return matches, nil
}
