package usecase

import (
	"context"
	"fmt"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/repository"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// UpdateTeamInput описывает частичное обновление команды.
// nil-поле означает "не менять".
type UpdateTeamInput struct {
	Name                *string
	Size                *int
	SprintDurationWeeks *int
}

// UpdateTeamUseCase обновляет атрибуты команды
type UpdateTeamUseCase struct {
	teams  repository.TeamRepository
	logger *logger.Logger
}

// NewUpdateTeamUseCase создает новый use case
func NewUpdateTeamUseCase(teams repository.TeamRepository, logger *logger.Logger) *UpdateTeamUseCase {
	return &UpdateTeamUseCase{
		teams:  teams,
		logger: logger,
	}
}

// Execute выполняет обновление команды
func (uc *UpdateTeamUseCase) Execute(ctx context.Context, cap valueobject.Capability, teamID string, input UpdateTeamInput) (*dto.TeamDTO, error) {
	if !cap.CanManageTeams {
		return nil, ErrForbidden
	}

	team, err := uc.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	if input.Name != nil {
		if err := team.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Size != nil {
		if err := team.Resize(*input.Size); err != nil {
			return nil, err
		}
	}
	if input.SprintDurationWeeks != nil {
		if err := team.SetSprintDuration(*input.SprintDurationWeeks); err != nil {
			return nil, err
		}
	}

	if err := uc.teams.Update(ctx, team); err != nil {
		uc.logger.Error("Failed to update team", err, "team_id", teamID)
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return dto.TeamFromEntity(team), nil
}
