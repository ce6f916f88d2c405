package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduledMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		date     string
		time     string
		opponent string
		league   string
		wantErr  bool
	}{
		{
			name:     "valid input with league",
			date:     "24/12/2026",
			time:     "19:30",
			opponent: "FC Example",
			league:   "Sunday League",
		},
		{
			name:     "valid input without league",
			date:     "01/01/2027",
			time:     "09:00",
			opponent: "Rivals",
		},
		{
			name:     "leap day accepted",
			date:     "29/02/2028",
			time:     "12:00",
			opponent: "Rivals",
		},
		{
			name:     "month out of range",
			date:     "31/13/2024",
			time:     "19:30",
			opponent: "Rivals",
			wantErr:  true,
		},
		{
			name:     "day out of range for month",
			date:     "31/04/2024",
			time:     "19:30",
			opponent: "Rivals",
			wantErr:  true,
		},
		{
			name:     "hour and minute out of range",
			date:     "24/12/2026",
			time:     "25:61",
			opponent: "Rivals",
			wantErr:  true,
		},
		{
			name:     "US date format rejected",
			date:     "12/24/2026",
			time:     "19:30",
			opponent: "Rivals",
			wantErr:  true,
		},
		{
			name:     "garbage date",
			date:     "tomorrow",
			time:     "19:30",
			opponent: "Rivals",
			wantErr:  true,
		},
		{
			name:     "blank opponent",
			date:     "24/12/2026",
			time:     "19:30",
			opponent: "   ",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			match, err := NewScheduledMatch(42, tt.date, tt.time, tt.opponent, tt.league, 7)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidMatch)
				assert.Nil(t, match)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, "", match.ID.String())
			assert.Equal(t, int64(42), match.GuildID)
			assert.Equal(t, tt.date, match.Date)
			assert.Equal(t, tt.time, match.Time)
			assert.Equal(t, tt.opponent, match.Opponent)
			assert.Equal(t, int64(7), match.CreatedBy)

			if tt.league == "" {
				assert.Equal(t, DefaultLeague, match.League)
			} else {
				assert.Equal(t, tt.league, match.League)
			}
		})
	}
}
