package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidMatch marks schedule input that fails validation, so callers
// can tell a bad command apart from a storage failure
var ErrInvalidMatch = errors.New("invalid match input")

// Wire formats for match date and time. These match what users type and
// what gets stored, so they are part of the store's external contract.
const (
	MatchDateFormat = "02/01/2006" // DD/MM/YYYY
	MatchTimeFormat = "15:04"      // HH:MM, 24-hour
)

// DefaultLeague is stored when the scheduler leaves the league blank
const DefaultLeague = "None"

// ScheduledMatch represents one upcoming fixture. Records are immutable
// once stored; there is no update or delete operation.
type ScheduledMatch struct {
	ID        uuid.UUID `db:"id"`
	GuildID   int64     `db:"guild_id"`
	Date      string    `db:"date"`
	Time      string    `db:"time"`
	Opponent  string    `db:"opponent"`
	League    string    `db:"league"`
	CreatedBy int64     `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

// NewScheduledMatch validates the raw command input and builds a match
// record. The date must parse under DD/MM/YYYY and the time under HH:MM;
// an empty league defaults to DefaultLeague.
func NewScheduledMatch(guildID int64, date, timeOfDay, opponent, league string, createdBy int64) (*ScheduledMatch, error) {
	if _, err := time.Parse(MatchDateFormat, date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidMatch, date)
	}
	if _, err := time.Parse(MatchTimeFormat, timeOfDay); err != nil {
		return nil, fmt.Errorf("%w: bad time %q", ErrInvalidMatch, timeOfDay)
	}
	if strings.TrimSpace(opponent) == "" {
		return nil, fmt.Errorf("%w: opponent cannot be empty", ErrInvalidMatch)
	}
	if league == "" {
		league = DefaultLeague
	}

	return &ScheduledMatch{
		ID:        uuid.New(),
		GuildID:   guildID,
		Date:      date,
		Time:      timeOfDay,
		Opponent:  opponent,
		League:    league,
		CreatedBy: createdBy,
	}, nil
}
