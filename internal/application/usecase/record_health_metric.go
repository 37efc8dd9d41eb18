package usecase

import (
	"context"
	"fmt"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	"github.com/dreschagin/scrum-health-dashboard/internal/application/port"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/repository"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/service"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// Subjects брокера событий для записей метрик
const (
	SubjectMetricRecorded = "health.metric.recorded"
	SubjectMetricApproved = "health.metric.approved"
)

// MetricEvent — payload события записи/одобрения метрики
type MetricEvent struct {
	MetricID     string `json:"metric_id"`
	TeamID       string `json:"team_id"`
	MetricName   string `json:"metric_name"`
	SprintNumber string `json:"sprint_number"`
	Value        string `json:"value"`
	Color        string `json:"color"`
	ApprovedBy   string `json:"approved_by,omitempty"`
}

// RecordHealthMetricUseCase записывает значение метрики за спринт.
// Запись идемпотентна по ключу (team, metric, sprint): повторный ввод
// обновляет значение, не создавая дубликата.
type RecordHealthMetricUseCase struct {
	metrics       repository.HealthMetricRepository
	configs       repository.MetricConfigRepository
	teams         repository.TeamRepository
	classifier    *service.ThresholdClassifier
	cache         port.Cache
	events        port.EventPublisher
	notifications port.NotificationService
	logger        *logger.Logger
}

// NewRecordHealthMetricUseCase создает новый use case
func NewRecordHealthMetricUseCase(
	metrics repository.HealthMetricRepository,
	configs repository.MetricConfigRepository,
	teams repository.TeamRepository,
	classifier *service.ThresholdClassifier,
	cache port.Cache,
	events port.EventPublisher,
	notifications port.NotificationService,
	logger *logger.Logger,
) *RecordHealthMetricUseCase {
	return &RecordHealthMetricUseCase{
		metrics:       metrics,
		configs:       configs,
		teams:         teams,
		classifier:    classifier,
		cache:         cache,
		events:        events,
		notifications: notifications,
		logger:        logger,
	}
}

// Execute записывает значение. Сырой ввод принимается как есть: нечисловое
// значение сохраняется текстом и получает нейтральный вердикт.
func (uc *RecordHealthMetricUseCase) Execute(ctx context.Context, cap valueobject.Capability, teamID, metricName, sprintNumber, rawValue string) (*dto.HealthMetricDTO, error) {
	if !cap.CanEnterData {
		return nil, ErrForbidden
	}

	if _, err := uc.teams.FindByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	reading := valueobject.ParseMetricReading(rawValue)

	metric, err := uc.metrics.FindByKey(ctx, teamID, metricName, sprintNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to look up metric: %w", err)
	}

	if metric != nil {
		metric.UpdateReading(reading)
		if err := uc.metrics.Update(ctx, metric); err != nil {
			uc.logger.Error("Failed to update health metric", err, "metric_id", metric.ID())
			return nil, fmt.Errorf("failed to update metric: %w", err)
		}
	} else {
		metric, err = entity.NewHealthMetric(teamID, metricName, sprintNumber, reading)
		if err != nil {
			return nil, err
		}
		if err := uc.metrics.Save(ctx, metric); err != nil {
			uc.logger.Error("Failed to save health metric", err, "team_id", teamID, "metric", metricName)
			return nil, fmt.Errorf("failed to save metric: %w", err)
		}
	}

	config, err := uc.configs.FindByTeamAndMetric(ctx, teamID, metricName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up config: %w", err)
	}

	actual, effective := uc.classifier.EffectiveColor(metric, config)

	uc.afterWrite(metric, effective, SubjectMetricRecorded)

	uc.logger.Info("Health metric recorded",
		"team_id", teamID,
		"metric", metricName,
		"sprint", sprintNumber,
		"color", effective.String())

	return dto.HealthMetricFromEntity(metric, actual, effective), nil
}

// afterWrite публикует событие, шлет push клиентам и снимает кеш.
// Все операции асинхронные и best-effort: ошибка side effect'а
// не откатывает запись.
func (uc *RecordHealthMetricUseCase) afterWrite(metric *entity.HealthMetric, effective valueobject.Color, subject string) {
	event := MetricEvent{
		MetricID:     metric.ID(),
		TeamID:       metric.TeamID(),
		MetricName:   metric.MetricName(),
		SprintNumber: metric.SprintNumber(),
		Value:        metric.Reading().String(),
		Color:        effective.String(),
		ApprovedBy:   metric.ApprovedBy(),
	}

	if uc.events != nil {
		go func() {
			if err := uc.events.Publish(context.Background(), subject, event); err != nil {
				uc.logger.Warn("Failed to publish metric event", "subject", subject, "error", err)
			}
		}()
	}

	if uc.notifications != nil {
		uc.notifications.BroadcastTeamHealthUpdate(metric.TeamID(), metric.SprintNumber())
	}

	if uc.cache != nil {
		go func() {
			if err := uc.cache.DeletePattern(context.Background(), "team_health:"+metric.TeamID()+":*"); err != nil {
				uc.logger.Warn("Failed to invalidate team health cache", "team_id", metric.TeamID(), "error", err)
			}
		}()
	}
}
