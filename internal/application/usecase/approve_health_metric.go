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

// ApproveHealthMetricUseCase выполняет PO-approval записи метрики.
// Approval one-way: отображаемый цвет становится зеленым, вычисленный
// вердикт сохраняется для аудита, операции отмены не существует.
type ApproveHealthMetricUseCase struct {
	metrics       repository.HealthMetricRepository
	configs       repository.MetricConfigRepository
	classifier    *service.ThresholdClassifier
	cache         port.Cache
	events        port.EventPublisher
	notifications port.NotificationService
	logger        *logger.Logger
}

// NewApproveHealthMetricUseCase создает новый use case
func NewApproveHealthMetricUseCase(
	metrics repository.HealthMetricRepository,
	configs repository.MetricConfigRepository,
	classifier *service.ThresholdClassifier,
	cache port.Cache,
	events port.EventPublisher,
	notifications port.NotificationService,
	logger *logger.Logger,
) *ApproveHealthMetricUseCase {
	return &ApproveHealthMetricUseCase{
		metrics:       metrics,
		configs:       configs,
		classifier:    classifier,
		cache:         cache,
		events:        events,
		notifications: notifications,
		logger:        logger,
	}
}

// Execute одобряет запись. Повторный approve возвращает
// entity.ErrAlreadyApproved без изменения записи.
func (uc *ApproveHealthMetricUseCase) Execute(ctx context.Context, cap valueobject.Capability, metricID, approvedBy, comment string) (*dto.HealthMetricDTO, error) {
	if !cap.CanApprove {
		return nil, ErrForbidden
	}

	metric, err := uc.metrics.FindByID(ctx, metricID)
	if err != nil {
		return nil, fmt.Errorf("failed to find metric: %w", err)
	}

	if err := metric.Approve(approvedBy, comment); err != nil {
		return nil, err
	}

	if err := uc.metrics.Update(ctx, metric); err != nil {
		uc.logger.Error("Failed to persist approval", err, "metric_id", metricID)
		return nil, fmt.Errorf("failed to persist approval: %w", err)
	}

	config, err := uc.configs.FindByTeamAndMetric(ctx, metric.TeamID(), metric.MetricName())
	if err != nil {
		return nil, fmt.Errorf("failed to look up config: %w", err)
	}

	actual, effective := uc.classifier.EffectiveColor(metric, config)

	uc.afterApprove(metric, effective)

	uc.logger.Info("Health metric approved",
		"metric_id", metricID,
		"team_id", metric.TeamID(),
		"approved_by", approvedBy,
		"computed_color", actual.Color().String())

	return dto.HealthMetricFromEntity(metric, actual, effective), nil
}

// afterApprove публикует событие approval, шлет push и снимает кеш
func (uc *ApproveHealthMetricUseCase) afterApprove(metric *entity.HealthMetric, effective valueobject.Color) {
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
			if err := uc.events.Publish(context.Background(), SubjectMetricApproved, event); err != nil {
				uc.logger.Warn("Failed to publish approval event", "error", err)
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
