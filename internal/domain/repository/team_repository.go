package repository

import (
	"context"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
)

// TeamRepository определяет интерфейс для работы с хранилищем команд (Port)
// Реализация будет в Infrastructure слое
type TeamRepository interface {
	// Save сохраняет новую команду
	Save(ctx context.Context, team *entity.Team) error

	// Update обновляет существующую команду
	Update(ctx context.Context, team *entity.Team) error

	// FindByID находит команду по идентификатору
	FindByID(ctx context.Context, id string) (*entity.Team, error)

	// FindAll возвращает все команды
	FindAll(ctx context.Context) ([]*entity.Team, error)
}
