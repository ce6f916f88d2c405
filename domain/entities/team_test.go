package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTeam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Team
		wantErr bool
	}{
		{input: "A", want: TeamA},
		{input: "B", want: TeamB},
		{input: "a", want: TeamA},
		{input: "b", want: TeamB},
		{input: " a ", want: TeamA},
		{input: "C", wantErr: true},
		{input: "AB", wantErr: true},
		{input: "", wantErr: true},
		{input: "A team", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTeam(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuildSettingsTeamRoleID(t *testing.T) {
	t.Parallel()

	aRole := int64(10)
	bRole := int64(20)
	settings := &GuildSettings{
		GuildID:     1,
		ATeamRoleID: &aRole,
		BTeamRoleID: &bRole,
	}

	require.NotNil(t, settings.TeamRoleID(TeamA))
	assert.Equal(t, int64(10), *settings.TeamRoleID(TeamA))
	require.NotNil(t, settings.TeamRoleID(TeamB))
	assert.Equal(t, int64(20), *settings.TeamRoleID(TeamB))

	unset := &GuildSettings{GuildID: 2}
	assert.Nil(t, unset.TeamRoleID(TeamA))
	assert.False(t, unset.HasTeamRoles())
	assert.True(t, settings.HasTeamRoles())
	assert.False(t, settings.HasFriendlyFinderRole())
}
