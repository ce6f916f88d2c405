package services

import (
	"context"
	"fmt"

	"squadbot/domain/entities"
	"squadbot/domain/interfaces"
)

// matchService implements the MatchService interface
type matchService struct {
	matchRepo interfaces.MatchRepository
}

// NewMatchService creates a new match service
func NewMatchService(matchRepo interfaces.MatchRepository) interfaces.MatchService {
	return &matchService{
		matchRepo: matchRepo,
	}
}

// ScheduleMatch validates the input and stores a new match record.
// Validation errors are returned before any store mutation.
func (s *matchService) ScheduleMatch(ctx context.Context, guildID int64, date, timeOfDay, opponent, league string, createdBy int64) (*entities.ScheduledMatch, error) {
	match, err := entities.NewScheduledMatch(guildID, date, timeOfDay, opponent, league, createdBy)
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to store match: %w", err)
	}

	return match, nil
}

// ListMatches returns all matches stored for a guild in insertion order
func (s *matchService) ListMatches(ctx context.Context, guildID int64) ([]*entities.ScheduledMatch, error) {
	matches, err := s.matchRepo.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return matches, nil
}
