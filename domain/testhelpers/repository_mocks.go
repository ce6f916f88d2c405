package testhelpers

import (
	"context"

	"squadbot/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) GetOrCreateGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsRepository) UpdateATeamRole(ctx context.Context, guildID int64, roleID int64) error {
	args := m.Called(ctx, guildID, roleID)
	return args.Error(0)
}

func (m *MockGuildSettingsRepository) UpdateBTeamRole(ctx context.Context, guildID int64, roleID int64) error {
	args := m.Called(ctx, guildID, roleID)
	return args.Error(0)
}

func (m *MockGuildSettingsRepository) UpdateFriendlyFinderRole(ctx context.Context, guildID int64, roleID int64) error {
	args := m.Called(ctx, guildID, roleID)
	return args.Error(0)
}

// MockMatchRepository is a mock implementation of MatchRepository
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) Create(ctx context.Context, match *entities.ScheduledMatch) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MockMatchRepository) ListByGuild(ctx context.Context, guildID int64) ([]*entities.ScheduledMatch, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ScheduledMatch), args.Error(1)
}
