package services

import (
	"testing"

	"squadbot/domain/entities"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func fullyConfigured() *entities.GuildSettings {
	return &entities.GuildSettings{
		GuildID:              100,
		ATeamRoleID:          int64Ptr(1),
		BTeamRoleID:          int64Ptr(2),
		FriendlyFinderRoleID: int64Ptr(3),
	}
}

func TestHasRole(t *testing.T) {
	t.Parallel()

	assert.True(t, HasRole([]int64{1, 2, 3}, 2))
	assert.False(t, HasRole([]int64{1, 2, 3}, 4))
	assert.False(t, HasRole(nil, 1))
}

func TestCheckPromote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		settings    *entities.GuildSettings
		memberRoles []int64
		wantErr     error
	}{
		{
			name:        "member on B team is promotable",
			settings:    fullyConfigured(),
			memberRoles: []int64{2},
		},
		{
			name:        "A team role unset",
			settings:    &entities.GuildSettings{GuildID: 100, BTeamRoleID: int64Ptr(2)},
			memberRoles: []int64{2},
			wantErr:     ErrTeamRolesNotConfigured,
		},
		{
			name:        "B team role unset",
			settings:    &entities.GuildSettings{GuildID: 100, ATeamRoleID: int64Ptr(1)},
			memberRoles: []int64{2},
			wantErr:     ErrTeamRolesNotConfigured,
		},
		{
			name:        "member not on B team",
			settings:    fullyConfigured(),
			memberRoles: []int64{5, 6},
			wantErr:     ErrMissingBTeamRole,
		},
		{
			name:        "member already on A team but not B team",
			settings:    fullyConfigured(),
			memberRoles: []int64{1},
			wantErr:     ErrMissingBTeamRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckPromote(tt.settings, tt.memberRoles)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckDemote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		settings    *entities.GuildSettings
		memberRoles []int64
		wantErr     error
	}{
		{
			name:        "member on A team is demotable",
			settings:    fullyConfigured(),
			memberRoles: []int64{1},
		},
		{
			name:        "team roles unset",
			settings:    &entities.GuildSettings{GuildID: 100},
			memberRoles: []int64{1},
			wantErr:     ErrTeamRolesNotConfigured,
		},
		{
			name:        "member not on A team",
			settings:    fullyConfigured(),
			memberRoles: []int64{2},
			wantErr:     ErrMissingATeamRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckDemote(tt.settings, tt.memberRoles)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckFriendlyFinderAccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		settings    *entities.GuildSettings
		memberRoles []int64
		wantErr     error
	}{
		{
			name:        "holder is allowed",
			settings:    fullyConfigured(),
			memberRoles: []int64{3},
		},
		{
			name:        "role unset denies access",
			settings:    &entities.GuildSettings{GuildID: 100},
			memberRoles: []int64{3},
			wantErr:     ErrFriendlyFinderNotConfigured,
		},
		{
			name:        "non-holder is denied",
			settings:    fullyConfigured(),
			memberRoles: []int64{1, 2},
			wantErr:     ErrMissingFriendlyFinderRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFriendlyFinderAccess(tt.settings, tt.memberRoles)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckFriendlyFinderGrant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		settings    *entities.GuildSettings
		memberRoles []int64
		wantErr     error
	}{
		{
			name:        "non-holder may receive the role",
			settings:    fullyConfigured(),
			memberRoles: []int64{1},
		},
		{
			name:        "role unset blocks the grant",
			settings:    &entities.GuildSettings{GuildID: 100},
			memberRoles: []int64{1},
			wantErr:     ErrFriendlyFinderNotConfigured,
		},
		{
			name:        "existing holder is a no-op",
			settings:    fullyConfigured(),
			memberRoles: []int64{3},
			wantErr:     ErrAlreadyFriendlyFinder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFriendlyFinderGrant(tt.settings, tt.memberRoles)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
