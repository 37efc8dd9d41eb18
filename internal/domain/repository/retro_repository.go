package repository

import (
	"context"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
)

// RetroRepository определяет интерфейс для ретроспектив (Port)
type RetroRepository interface {
	// SaveBoard сохраняет новую ретро-доску
	SaveBoard(ctx context.Context, board *entity.RetroBoard) error

	// FindBoardByID находит доску по идентификатору
	FindBoardByID(ctx context.Context, id string) (*entity.RetroBoard, error)

	// FindBoardsByTeam возвращает доски команды
	FindBoardsByTeam(ctx context.Context, teamID string) ([]*entity.RetroBoard, error)

	// SaveItem сохраняет карточку на доске
	SaveItem(ctx context.Context, item *entity.RetroItem) error

	// FindItemsByBoard возвращает карточки доски
	FindItemsByBoard(ctx context.Context, boardID string) ([]*entity.RetroItem, error)

	// DeleteItem удаляет карточку
	DeleteItem(ctx context.Context, itemID string) error
}
