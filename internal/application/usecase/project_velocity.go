package usecase

import (
	"context"
	"fmt"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/repository"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/service"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// ProjectVelocityUseCase выполняет проекцию velocity спринта.
// Расчет transient: сохраняется только по явному запросу.
type ProjectVelocityUseCase struct {
	projector    *service.VelocityProjector
	calculations repository.SprintCalculationRepository
	teams        repository.TeamRepository
	logger       *logger.Logger
}

// NewProjectVelocityUseCase создает новый use case
func NewProjectVelocityUseCase(
	projector *service.VelocityProjector,
	calculations repository.SprintCalculationRepository,
	teams repository.TeamRepository,
	logger *logger.Logger,
) *ProjectVelocityUseCase {
	return &ProjectVelocityUseCase{
		projector:    projector,
		calculations: calculations,
		teams:        teams,
		logger:       logger,
	}
}

// Execute валидирует форму и выполняет расчет
func (uc *ProjectVelocityUseCase) Execute(ctx context.Context, form entity.SprintVelocityForm) (*dto.VelocityResultDTO, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	result := uc.projector.Project(form)

	uc.logger.Info("Velocity projected",
		"team", form.TeamName,
		"projected", result.ProjectedVelocity,
		"capacity", result.TeamCapacity,
		"working_days", result.WorkingDays)

	return dto.VelocityResultFromEntity(result), nil
}

// ExecuteAndSave выполняет расчет и сохраняет его для команды
func (uc *ProjectVelocityUseCase) ExecuteAndSave(ctx context.Context, teamID string, form entity.SprintVelocityForm) (*dto.SprintCalculationDTO, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.teams.FindByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	result := uc.projector.Project(form)

	calc, err := entity.NewSprintCalculation(teamID, form, result)
	if err != nil {
		return nil, err
	}

	if err := uc.calculations.Save(ctx, calc); err != nil {
		uc.logger.Error("Failed to save sprint calculation", err, "team_id", teamID)
		return nil, fmt.Errorf("failed to save calculation: %w", err)
	}

	uc.logger.Info("Sprint calculation saved",
		"calculation_id", calc.ID(),
		"team_id", teamID,
		"projected", result.ProjectedVelocity)

	return dto.SprintCalculationFromEntity(calc), nil
}

// ExecuteHistory возвращает сохраненные расчеты команды, новые первыми
func (uc *ProjectVelocityUseCase) ExecuteHistory(ctx context.Context, teamID string, limit int) ([]*dto.SprintCalculationDTO, error) {
	if limit <= 0 {
		limit = 20
	}

	calcs, err := uc.calculations.FindByTeam(ctx, teamID, limit)
	if err != nil {
		uc.logger.Error("Failed to list sprint calculations", err, "team_id", teamID)
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}

	return dto.ToSprintCalculationDTOs(calcs), nil
}
