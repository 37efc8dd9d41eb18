package usecase

import (
	"context"
	"fmt"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/repository"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// RetrospectiveUseCase управляет ретро-досками и карточками
type RetrospectiveUseCase struct {
	retros repository.RetroRepository
	teams  repository.TeamRepository
	logger *logger.Logger
}

// NewRetrospectiveUseCase создает новый use case
func NewRetrospectiveUseCase(
	retros repository.RetroRepository,
	teams repository.TeamRepository,
	logger *logger.Logger,
) *RetrospectiveUseCase {
	return &RetrospectiveUseCase{
		retros: retros,
		teams:  teams,
		logger: logger,
	}
}

// CreateBoard создает ретро-доску команды за спринт
func (uc *RetrospectiveUseCase) CreateBoard(ctx context.Context, teamID, sprintNumber, title string) (*dto.RetroBoardDTO, error) {
	if _, err := uc.teams.FindByID(ctx, teamID); err != nil {
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	board, err := entity.NewRetroBoard(teamID, sprintNumber, title)
	if err != nil {
		return nil, err
	}

	if err := uc.retros.SaveBoard(ctx, board); err != nil {
		uc.logger.Error("Failed to save retro board", err, "team_id", teamID)
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	uc.logger.Info("Retro board created", "board_id", board.ID(), "team_id", teamID, "sprint", sprintNumber)

	return dto.RetroBoardFromEntity(board), nil
}

// ListBoards возвращает доски команды
func (uc *RetrospectiveUseCase) ListBoards(ctx context.Context, teamID string) ([]*dto.RetroBoardDTO, error) {
	boards, err := uc.retros.FindBoardsByTeam(ctx, teamID)
	if err != nil {
		uc.logger.Error("Failed to list retro boards", err, "team_id", teamID)
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	return dto.ToRetroBoardDTOs(boards), nil
}

// AddItem добавляет карточку на доску
func (uc *RetrospectiveUseCase) AddItem(ctx context.Context, boardID, category, content, authorName string) (*dto.RetroItemDTO, error) {
	if _, err := uc.retros.FindBoardByID(ctx, boardID); err != nil {
		return nil, fmt.Errorf("failed to find board: %w", err)
	}

	item, err := entity.NewRetroItem(boardID, entity.RetroCategory(category), content, authorName)
	if err != nil {
		return nil, err
	}

	if err := uc.retros.SaveItem(ctx, item); err != nil {
		uc.logger.Error("Failed to save retro item", err, "board_id", boardID)
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	return dto.RetroItemFromEntity(item), nil
}

// ListItems возвращает карточки доски
func (uc *RetrospectiveUseCase) ListItems(ctx context.Context, boardID string) ([]*dto.RetroItemDTO, error) {
	items, err := uc.retros.FindItemsByBoard(ctx, boardID)
	if err != nil {
		uc.logger.Error("Failed to list retro items", err, "board_id", boardID)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return dto.ToRetroItemDTOs(items), nil
}

// DeleteItem удаляет карточку с доски
func (uc *RetrospectiveUseCase) DeleteItem(ctx context.Context, itemID string) error {
	if err := uc.retros.DeleteItem(ctx, itemID); err != nil {
		uc.logger.Error("Failed to delete retro item", err, "item_id", itemID)
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}
