package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sportsgeo/tournament-finder/models"
	"github.com/sportsgeo/tournament-finder/repositories"
)

type TeamService interface {
	Create(ctx context.Context, creatorID int, input CreateTeamInput) (*models.Team, error)
	List(ctx context.Context) ([]models.Team, error)
}

type CreateTeamInput struct {
	Name       string   `json:"name"`
	Sport      string   `json:"sport"`
	SkillLevel *string  `json:"skill_level"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

type teamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) Create(ctx context.Context, creatorID int, input CreateTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	sport := strings.TrimSpace(input.Sport)
	if name == "" || sport == "" {
		return nil, ErrTeamFieldsRequired
	}

	location, err := optionalCoordinate(input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:       name,
		Sport:      sport,
		SkillLevel: input.SkillLevel,
		Location:   location,
		CreatedBy:  creatorID,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamCreatorInvalid) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) List(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}
