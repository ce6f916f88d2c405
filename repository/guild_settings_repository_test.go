package repository

import (
	"context"
	"testing"

	"squadbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildSettingsRepository_GetOrCreateGuildSettings(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildSettingsRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates defaults on first access", func(t *testing.T) {
		guildID := int64(12345)

		settings, err := repo.GetOrCreateGuildSettings(ctx, guildID)
		require.NoError(t, err)
		require.NotNil(t, settings)

		assert.Equal(t, guildID, settings.GuildID)
		assert.Nil(t, settings.ATeamRoleID)
		assert.Nil(t, settings.BTeamRoleID)
		assert.Nil(t, settings.FriendlyFinderRoleID)
	})

	t.Run("repeated access returns the same record", func(t *testing.T) {
		guildID := int64(11111)

		require.NoError(t, repo.UpdateATeamRole(ctx, guildID, 999))

		first, err := repo.GetOrCreateGuildSettings(ctx, guildID)
		require.NoError(t, err)

		second, err := repo.GetOrCreateGuildSettings(ctx, guildID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		require.NotNil(t, second.ATeamRoleID)
		assert.Equal(t, int64(999), *second.ATeamRoleID)
	})

	t.Run("guilds are isolated from each other", func(t *testing.T) {
		require.NoError(t, repo.UpdateATeamRole(ctx, 22222, 100))

		other, err := repo.GetOrCreateGuildSettings(ctx, 33333)
		require.NoError(t, err)

		assert.Nil(t, other.ATeamRoleID)
	})
}

func TestGuildSettingsRepository_UpdateRoles(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildSettingsRepository(testDB.DB)
	ctx := context.Background()

	t.Run("update creates the record when absent", func(t *testing.T) {
		guildID := int64(44444)

		require.NoError(t, repo.UpdateBTeamRole(ctx, guildID, 200))

		settings, err := repo.GetOrCreateGuildSettings(ctx, guildID)
		require.NoError(t, err)
		require.NotNil(t, settings.BTeamRoleID)
		assert.Equal(t, int64(200), *settings.BTeamRoleID)
		assert.Nil(t, settings.ATeamRoleID)
	})

	t.Run("update overwrites an existing role", func(t *testing.T) {
		guildID := int64(55555)

		require.NoError(t, repo.UpdateFriendlyFinderRole(ctx, guildID, 300))
		require.NoError(t, repo.UpdateFriendlyFinderRole(ctx, guildID, 301))

		settings, err := repo.GetOrCreateGuildSettings(ctx, guildID)
		require.NoError(t, err)
		require.NotNil(t, settings.FriendlyFinderRoleID)
		assert.Equal(t, int64(301), *settings.FriendlyFinderRoleID)
	})

	t.Run("updating one role leaves the others untouched", func(t *testing.T) {
		guildID := int64(66666)

		require.NoError(t, repo.UpdateATeamRole(ctx, guildID, 1))
		require.NoError(t, repo.UpdateBTeamRole(ctx, guildID, 2))
		require.NoError(t, repo.UpdateFriendlyFinderRole(ctx, guildID, 3))
		require.NoError(t, repo.UpdateATeamRole(ctx, guildID, 10))

		settings, err := repo.GetOrCreateGuildSettings(ctx, guildID)
		require.NoError(t, err)
		require.NotNil(t, settings.ATeamRoleID)
		require.NotNil(t, settings.BTeamRoleID)
		require.NotNil(t, settings.FriendlyFinderRoleID)
		assert.Equal(t, int64(10), *settings.ATeamRoleID)
		assert.Equal(t, int64(2), *settings.BTeamRoleID)
		assert.Equal(t, int64(3), *settings.FriendlyFinderRoleID)
	})
}
