package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	"github.com/dreschagin/scrum-health-dashboard/internal/application/port"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/repository"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/service"
	"github.com/dreschagin/scrum-health-dashboard/internal/infrastructure/cache/redis"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// GetTeamHealthUseCase возвращает классифицированный снимок здоровья
// команды с кешированием
type GetTeamHealthUseCase struct {
	teams      repository.TeamRepository
	metrics    repository.HealthMetricRepository
	configs    repository.MetricConfigRepository
	classifier *service.ThresholdClassifier
	cache      port.Cache
	logger     *logger.Logger
}

// NewGetTeamHealthUseCase создает новый use case
func NewGetTeamHealthUseCase(
	teams repository.TeamRepository,
	metrics repository.HealthMetricRepository,
	configs repository.MetricConfigRepository,
	classifier *service.ThresholdClassifier,
	cache port.Cache,
	logger *logger.Logger,
) *GetTeamHealthUseCase {
	return &GetTeamHealthUseCase{
		teams:      teams,
		metrics:    metrics,
		configs:    configs,
		classifier: classifier,
		cache:      cache,
		logger:     logger,
	}
}

// Execute возвращает снимок здоровья команды, опционально по одному спринту.
// Классификация выполняется при чтении: смена порогов немедленно меняет
// цвета исторических записей.
func (uc *GetTeamHealthUseCase) Execute(ctx context.Context, teamID, sprintNumber string) (*dto.TeamHealthDTO, error) {
	// Если кеш не настроен, используем стандартный путь
	if uc.cache == nil {
		return uc.executeWithoutCache(ctx, teamID, sprintNumber)
	}

	cacheKey := redis.GenerateTeamHealthKey(teamID, sprintNumber)

	var cached dto.TeamHealthDTO
	if err := uc.cache.Get(ctx, cacheKey, &cached); err == nil {
		uc.logger.Debug("Cache hit for team health", "team_id", teamID, "sprint", sprintNumber)
		return &cached, nil
	}

	uc.logger.Debug("Cache miss for team health, fetching from DB", "team_id", teamID)

	snapshot, err := uc.executeWithoutCache(ctx, teamID, sprintNumber)
	if err != nil {
		return nil, err
	}

	// Сохраняем в кеш асинхронно, не блокируя ответ
	go func() {
		if err := uc.cache.Set(context.Background(), cacheKey, snapshot); err != nil {
			uc.logger.Warn("Failed to cache team health", "team_id", teamID, "error", err)
		}
	}()

	return snapshot, nil
}

// executeWithoutCache собирает снимок без кеширования
func (uc *GetTeamHealthUseCase) executeWithoutCache(ctx context.Context, teamID, sprintNumber string) (*dto.TeamHealthDTO, error) {
	team, err := uc.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	metrics, err := uc.metrics.FindByTeam(ctx, teamID, sprintNumber)
	if err != nil {
		uc.logger.Error("Failed to fetch health metrics", err, "team_id", teamID)
		return nil, fmt.Errorf("failed to fetch metrics: %w", err)
	}

	configs, err := uc.configs.FindByTeam(ctx, teamID)
	if err != nil {
		uc.logger.Error("Failed to fetch metric configs", err, "team_id", teamID)
		return nil, fmt.Errorf("failed to fetch configs: %w", err)
	}

	configByName := make(map[string]*entity.MetricConfig, len(configs))
	for _, c := range configs {
		configByName[c.MetricName()] = c
	}

	metricDTOs := make([]*dto.HealthMetricDTO, 0, len(metrics))
	for _, m := range metrics {
		// Отсутствие конфигурации дает unconfigured вердикт, не ошибку
		actual, effective := uc.classifier.EffectiveColor(m, configByName[m.MetricName()])
		metricDTOs = append(metricDTOs, dto.HealthMetricFromEntity(m, actual, effective))
	}

	return &dto.TeamHealthDTO{
		Team:         dto.TeamFromEntity(team),
		SprintNumber: sprintNumber,
		Metrics:      metricDTOs,
		GeneratedAt:  time.Now(),
	}, nil
}
