package common

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnowflake(t *testing.T) {
	t.Parallel()

	id, err := ParseSnowflake("123456789012345678")
	require.NoError(t, err)
	assert.Equal(t, int64(123456789012345678), id)

	_, err = ParseSnowflake("not-a-number")
	assert.Error(t, err)
}

func TestFormatSnowflake(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "123456789012345678", FormatSnowflake(123456789012345678))
}

func TestMentions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<@42>", UserMention(42))
	assert.Equal(t, "<@&42>", RoleMention(42))
}

func TestMemberRoleIDs(t *testing.T) {
	t.Parallel()

	member := &discordgo.Member{
		Roles: []string{"100", "garbage", "200"},
	}

	ids := MemberRoleIDs(member)

	assert.Equal(t, []int64{100, 200}, ids)
}

func TestMemberRoleIDs_NoRoles(t *testing.T) {
	t.Parallel()

	assert.Empty(t, MemberRoleIDs(&discordgo.Member{}))
}
