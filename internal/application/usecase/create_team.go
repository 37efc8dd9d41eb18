package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/repository"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// ErrForbidden возвращается, когда роль не дает права на операцию
var ErrForbidden = errors.New("operation is not permitted for this role")

// CreateTeamUseCase создает команду и сидирует конфигурации порогов
// из каталога метрик
type CreateTeamUseCase struct {
	teams   repository.TeamRepository
	configs repository.MetricConfigRepository
	logger  *logger.Logger
}

// NewCreateTeamUseCase создает новый use case
func NewCreateTeamUseCase(
	teams repository.TeamRepository,
	configs repository.MetricConfigRepository,
	logger *logger.Logger,
) *CreateTeamUseCase {
	return &CreateTeamUseCase{
		teams:   teams,
		configs: configs,
		logger:  logger,
	}
}

// Execute создает команду. Для каждой метрики каталога создается
// конфигурация с порогами по умолчанию, чтобы новая команда сразу
// получала классифицируемые метрики.
func (uc *CreateTeamUseCase) Execute(ctx context.Context, cap valueobject.Capability, name string, size, sprintDurationWeeks int) (*dto.TeamDTO, error) {
	if !cap.CanManageTeams {
		return nil, ErrForbidden
	}

	team, err := entity.NewTeam(name, size, sprintDurationWeeks)
	if err != nil {
		return nil, fmt.Errorf("invalid team: %w", err)
	}

	if err := uc.teams.Save(ctx, team); err != nil {
		uc.logger.Error("Failed to save team", err, "name", name)
		return nil, fmt.Errorf("failed to save team: %w", err)
	}

	for _, m := range entity.MetricCatalogue() {
		config, err := entity.NewMetricConfig(team.ID(), m.Name, m.DefaultGreen, m.DefaultYellow, m.DefaultRed, m.IsHigherBetter)
		if err != nil {
			return nil, fmt.Errorf("failed to build default config: %w", err)
		}
		if err := uc.configs.Save(ctx, config); err != nil {
			uc.logger.Error("Failed to seed metric config", err,
				"team_id", team.ID(),
				"metric", m.Name)
			return nil, fmt.Errorf("failed to seed metric config: %w", err)
		}
	}

	uc.logger.Info("Team created",
		"team_id", team.ID(),
		"name", team.Name(),
		"size", team.Size())

	return dto.TeamFromEntity(team), nil
}
