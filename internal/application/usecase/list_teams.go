package usecase

import (
	"context"
	"fmt"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/repository"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// ListTeamsUseCase возвращает команды
type ListTeamsUseCase struct {
	teams  repository.TeamRepository
	logger *logger.Logger
}

// NewListTeamsUseCase создает новый use case
func NewListTeamsUseCase(teams repository.TeamRepository, logger *logger.Logger) *ListTeamsUseCase {
	return &ListTeamsUseCase{
		teams:  teams,
		logger: logger,
	}
}

// Execute возвращает все команды
func (uc *ListTeamsUseCase) Execute(ctx context.Context) ([]*dto.TeamDTO, error) {
	teams, err := uc.teams.FindAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list teams", err)
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	return dto.ToTeamDTOs(teams), nil
}

// ExecuteByID возвращает одну команду
func (uc *ListTeamsUseCase) ExecuteByID(ctx context.Context, teamID string) (*dto.TeamDTO, error) {
	team, err := uc.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	return dto.TeamFromEntity(team), nil
}
