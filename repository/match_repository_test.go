package repository

import (
	"context"
	"testing"

	"squadbot/domain/entities"
	"squadbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewMatch(t *testing.T, guildID int64, opponent string) *entities.ScheduledMatch {
	t.Helper()

	match, err := entities.NewScheduledMatch(guildID, "24/12/2026", "19:30", opponent, "", 7)
	require.NoError(t, err)
	return match
}

func TestMatchRepository_Create(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewMatchRepository(testDB.DB)
	ctx := context.Background()

	t.Run("insert populates created_at", func(t *testing.T) {
		match := mustNewMatch(t, 12345, "FC Example")

		err := repo.Create(ctx, match)
		require.NoError(t, err)
		assert.False(t, match.CreatedAt.IsZero())
	})

	t.Run("stored fields round-trip", func(t *testing.T) {
		guildID := int64(11111)
		match, err := entities.NewScheduledMatch(guildID, "01/06/2027", "15:00", "Rivals", "Sunday League", 42)
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, match))

		matches, err := repo.ListByGuild(ctx, guildID)
		require.NoError(t, err)
		require.Len(t, matches, 1)

		got := matches[0]
		assert.Equal(t, match.ID, got.ID)
		assert.Equal(t, "01/06/2027", got.Date)
		assert.Equal(t, "15:00", got.Time)
		assert.Equal(t, "Rivals", got.Opponent)
		assert.Equal(t, "Sunday League", got.League)
		assert.Equal(t, int64(42), got.CreatedBy)
	})
}

func TestMatchRepository_ListByGuild(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewMatchRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty guild returns no matches", func(t *testing.T) {
		matches, err := repo.ListByGuild(ctx, 99999)
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("matches come back in insertion order", func(t *testing.T) {
		guildID := int64(22222)

		first := mustNewMatch(t, guildID, "First")
		second := mustNewMatch(t, guildID, "Second")
		third := mustNewMatch(t, guildID, "Third")

		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))
		require.NoError(t, repo.Create(ctx, third))

		matches, err := repo.ListByGuild(ctx, guildID)
		require.NoError(t, err)
		require.Len(t, matches, 3)

		assert.Equal(t, "First", matches[0].Opponent)
		assert.Equal(t, "Second", matches[1].Opponent)
		assert.Equal(t, "Third", matches[2].Opponent)
	})

	t.Run("matches are scoped per guild", func(t *testing.T) {
		guildA := int64(33333)
		guildB := int64(44444)

		require.NoError(t, repo.Create(ctx, mustNewMatch(t, guildA, "OnlyA")))
		require.NoError(t, repo.Create(ctx, mustNewMatch(t, guildB, "OnlyB")))

		matches, err := repo.ListByGuild(ctx, guildA)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "OnlyA", matches[0].Opponent)
	})
}
