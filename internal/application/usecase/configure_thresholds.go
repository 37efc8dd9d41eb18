package usecase

import (
	"context"
	"fmt"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	"github.com/dreschagin/scrum-health-dashboard/internal/application/port"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/repository"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// ThresholdInput описывает пороги одной метрики
type ThresholdInput struct {
	MetricName      string
	GreenThreshold  float64
	YellowThreshold float64
	RedThreshold    float64
	IsHigherBetter  bool
}

// ConfigureThresholdsUseCase управляет конфигурациями порогов команды.
// Нарушение полярности порогов возвращается как предупреждение в DTO,
// но сохранение не блокирует.
type ConfigureThresholdsUseCase struct {
	teams   repository.TeamRepository
	configs repository.MetricConfigRepository
	cache   port.Cache
	logger  *logger.Logger
}

// NewConfigureThresholdsUseCase создает новый use case
func NewConfigureThresholdsUseCase(
	teams repository.TeamRepository,
	configs repository.MetricConfigRepository,
	cache port.Cache,
	logger *logger.Logger,
) *ConfigureThresholdsUseCase {
	return &ConfigureThresholdsUseCase{
		teams:   teams,
		configs: configs,
		cache:   cache,
		logger:  logger,
	}
}

// Execute создает или обновляет конфигурацию порогов (upsert по ключу
// team+metric). Смена порогов меняет классификацию, поэтому кеш снимков
// команды инвалидируется.
func (uc *ConfigureThresholdsUseCase) Execute(ctx context.Context, cap valueobject.Capability, teamID string, input ThresholdInput) (*dto.MetricConfigDTO, error) {
	if !cap.CanEditConfig {
		return nil, ErrForbidden
	}

	if _, err := uc.teams.FindByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	existing, err := uc.configs.FindByTeamAndMetric(ctx, teamID, input.MetricName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up config: %w", err)
	}

	var config *entity.MetricConfig
	if existing != nil {
		existing.SetThresholds(input.GreenThreshold, input.YellowThreshold, input.RedThreshold)
		existing.SetPolarity(input.IsHigherBetter)
		if err := uc.configs.Update(ctx, existing); err != nil {
			uc.logger.Error("Failed to update metric config", err, "team_id", teamID, "metric", input.MetricName)
			return nil, fmt.Errorf("failed to update config: %w", err)
		}
		config = existing
	} else {
		config, err = entity.NewMetricConfig(teamID, input.MetricName, input.GreenThreshold, input.YellowThreshold, input.RedThreshold, input.IsHigherBetter)
		if err != nil {
			return nil, err
		}
		if err := uc.configs.Save(ctx, config); err != nil {
			uc.logger.Error("Failed to save metric config", err, "team_id", teamID, "metric", input.MetricName)
			return nil, fmt.Errorf("failed to save config: %w", err)
		}
	}

	uc.invalidateTeamCache(teamID)

	result := dto.MetricConfigFromEntity(config)
	for _, w := range result.Warnings {
		uc.logger.Warn("Threshold configuration warning", "team_id", teamID, "warning", w)
	}

	return result, nil
}

// ExecuteList возвращает все конфигурации команды
func (uc *ConfigureThresholdsUseCase) ExecuteList(ctx context.Context, teamID string) ([]*dto.MetricConfigDTO, error) {
	configs, err := uc.configs.FindByTeam(ctx, teamID)
	if err != nil {
		uc.logger.Error("Failed to list metric configs", err, "team_id", teamID)
		return nil, fmt.Errorf("failed to list configs: %w", err)
	}

	return dto.ToMetricConfigDTOs(configs), nil
}

// invalidateTeamCache снимает кешированные снимки здоровья команды
func (uc *ConfigureThresholdsUseCase) invalidateTeamCache(teamID string) {
	if uc.cache == nil {
		return
	}
	go func() {
		if err := uc.cache.DeletePattern(context.Background(), "team_health:"+teamID+":*"); err != nil {
			uc.logger.Warn("Failed to invalidate team health cache", "team_id", teamID, "error", err)
		}
	}()
}
