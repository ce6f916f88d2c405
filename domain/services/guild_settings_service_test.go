package services

import (
	"context"
	"errors"
	"testing"

	"squadbot/domain/entities"
	"squadbot/domain/interfaces"
	"squadbot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGuildSettingsService_GetOrCreateSettings(t *testing.T) {
	t.Parallel()

	t.Run("returns settings from repository", func(t *testing.T) {
		t.Parallel()

		mockRepo := new(testhelpers.MockGuildSettingsRepository)
		service := NewGuildSettingsService(mockRepo)

		expected := &entities.GuildSettings{GuildID: 123}
		mockRepo.On("GetOrCreateGuildSettings", mock.Anything, int64(123)).Return(expected, nil)

		settings, err := service.GetOrCreateSettings(context.Background(), 123)

		require.NoError(t, err)
		assert.Equal(t, expected, settings)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wraps repository error", func(t *testing.T) {
		t.Parallel()

		mockRepo := new(testhelpers.MockGuildSettingsRepository)
		service := NewGuildSettingsService(mockRepo)

		repoErr := errors.New("connection refused")
		mockRepo.On("GetOrCreateGuildSettings", mock.Anything, int64(123)).Return(nil, repoErr)

		settings, err := service.GetOrCreateSettings(context.Background(), 123)

		require.Error(t, err)
		assert.ErrorIs(t, err, repoErr)
		assert.Nil(t, settings)
		mockRepo.AssertExpectations(t)
	})
}

func TestGuildSettingsService_UpdateRoles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		methodName string
		call       func(s interfaces.GuildSettingsService) error
	}{
		{
			name:       "A team role",
			methodName: "UpdateATeamRole",
			call: func(s interfaces.GuildSettingsService) error {
				return s.UpdateATeamRole(context.Background(), 123, 456)
			},
		},
		{
			name:       "B team role",
			methodName: "UpdateBTeamRole",
			call: func(s interfaces.GuildSettingsService) error {
				return s.UpdateBTeamRole(context.Background(), 123, 456)
			},
		},
		{
			name:       "friendly finder role",
			methodName: "UpdateFriendlyFinderRole",
			call: func(s interfaces.GuildSettingsService) error {
				return s.UpdateFriendlyFinderRole(context.Background(), 123, 456)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockRepo := new(testhelpers.MockGuildSettingsRepository)
			service := NewGuildSettingsService(mockRepo)

			mockRepo.On(tt.methodName, mock.Anything, int64(123), int64(456)).Return(nil)

			err := tt.call(service)

			require.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})

		t.Run(tt.name+" error", func(t *testing.T) {
			t.Parallel()

			mockRepo := new(testhelpers.MockGuildSettingsRepository)
			service := NewGuildSettingsService(mockRepo)

			repoErr := errors.New("write failed")
			mockRepo.On(tt.methodName, mock.Anything, int64(123), int64(456)).Return(repoErr)

			err := tt.call(service)

			require.Error(t, err)
			assert.ErrorIs(t, err, repoErr)
			mockRepo.AssertExpectations(t)
		})
	}
}
