package repository

import (
	"context"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
)

// HealthMetricRepository определяет интерфейс для работы с записями метрик (Port)
type HealthMetricRepository interface {
	// Save сохраняет новую запись метрики
	Save(ctx context.Context, metric *entity.HealthMetric) error

	// Update обновляет существующую запись (значение или approval)
	Update(ctx context.Context, metric *entity.HealthMetric) error

	// FindByID находит запись по идентификатору
	FindByID(ctx context.Context, id string) (*entity.HealthMetric, error)

	// FindByTeam находит записи команды, опционально фильтруя по спринту
	FindByTeam(ctx context.Context, teamID, sprintNumber string) ([]*entity.HealthMetric, error)

	// FindByKey находит запись по составному ключу (team, metric, sprint)
	FindByKey(ctx context.Context, teamID, metricName, sprintNumber string) (*entity.HealthMetric, error)

	// FindAll возвращает все записи всех команд
	FindAll(ctx context.Context) ([]*entity.HealthMetric, error)
}

// MetricConfigRepository определяет интерфейс для конфигураций порогов (Port)
type MetricConfigRepository interface {
	// Save сохраняет новую конфигурацию
	Save(ctx context.Context, config *entity.MetricConfig) error

	// Update обновляет существующую конфигурацию
	Update(ctx context.Context, config *entity.MetricConfig) error

	// FindByID находит конфигурацию по идентификатору
	FindByID(ctx context.Context, id string) (*entity.MetricConfig, error)

	// FindByTeam возвращает все конфигурации команды
	FindByTeam(ctx context.Context, teamID string) ([]*entity.MetricConfig, error)

	// FindByTeamAndMetric находит конфигурацию по ключу (team, metric).
	// Отсутствие конфигурации — не ошибка: возвращается (nil, nil),
	// классификатор выдаст unconfigured вердикт.
	FindByTeamAndMetric(ctx context.Context, teamID, metricName string) (*entity.MetricConfig, error)
}
