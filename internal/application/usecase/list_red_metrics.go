package usecase

import (
	"context"
	"fmt"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/repository"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/service"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// ListRedMetricsUseCase возвращает красные метрики по всем командам.
// Одобренные записи исключаются: их отображаемый цвет зеленый,
// в сводке проблем им делать нечего.
type ListRedMetricsUseCase struct {
	teams      repository.TeamRepository
	metrics    repository.HealthMetricRepository
	configs    repository.MetricConfigRepository
	classifier *service.ThresholdClassifier
	logger     *logger.Logger
}

// NewListRedMetricsUseCase создает новый use case
func NewListRedMetricsUseCase(
	teams repository.TeamRepository,
	metrics repository.HealthMetricRepository,
	configs repository.MetricConfigRepository,
	classifier *service.ThresholdClassifier,
	logger *logger.Logger,
) *ListRedMetricsUseCase {
	return &ListRedMetricsUseCase{
		teams:      teams,
		metrics:    metrics,
		configs:    configs,
		classifier: classifier,
		logger:     logger,
	}
}

// Execute классифицирует все записи и возвращает красные
func (uc *ListRedMetricsUseCase) Execute(ctx context.Context) ([]*dto.RedMetricDTO, error) {
	teams, err := uc.teams.FindAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list teams", err)
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID()] = t.Name()
	}

	all, err := uc.metrics.FindAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list health metrics", err)
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}

	configCache := make(map[string]*entity.MetricConfig)

	red := make([]*dto.RedMetricDTO, 0)
	for _, m := range all {
		key := m.TeamID() + ":" + m.MetricName()
		config, ok := configCache[key]
		if !ok {
			config, err = uc.configs.FindByTeamAndMetric(ctx, m.TeamID(), m.MetricName())
			if err != nil {
				return nil, fmt.Errorf("failed to look up config: %w", err)
			}
			configCache[key] = config
		}

		_, effective := uc.classifier.EffectiveColor(m, config)
		if effective != valueobject.Red {
			continue
		}

		red = append(red, &dto.RedMetricDTO{
			TeamID:       m.TeamID(),
			TeamName:     teamNames[m.TeamID()],
			MetricName:   m.MetricName(),
			SprintNumber: m.SprintNumber(),
			Value:        m.Reading().String(),
		})
	}

	return red, nil
}
