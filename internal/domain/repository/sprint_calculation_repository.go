package repository

import (
	"context"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
)

// SprintCalculationRepository определяет интерфейс для сохраненных
// расчетов velocity (Port)
type SprintCalculationRepository interface {
	// Save сохраняет расчет
	Save(ctx context.Context, calculation *entity.SprintCalculation) error

	// FindByTeam возвращает сохраненные расчеты команды, новые первыми
	FindByTeam(ctx context.Context, teamID string, limit int) ([]*entity.SprintCalculation, error)
}
