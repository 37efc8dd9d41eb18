package dto

import (
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
)

// RetroBoardDTO представляет ретро-доску
type RetroBoardDTO struct {
	ID           string    `json:"id"`
	TeamID       string    `json:"team_id"`
	SprintNumber string    `json:"sprint_number"`
	Title        string    `json:"title"`
	CreatedAt    time.Time `json:"created_at"`
}

// RetroBoardFromEntity конвертирует Entity в DTO
func RetroBoardFromEntity(board *entity.RetroBoard) *RetroBoardDTO {
	return &RetroBoardDTO{
		ID:           board.ID(),
		TeamID:       board.TeamID(),
		SprintNumber: board.SprintNumber(),
		Title:        board.Title(),
		CreatedAt:    board.CreatedAt(),
	}
}

// ToRetroBoardDTOs конвертирует слайс Entity в слайс DTO
func ToRetroBoardDTOs(boards []*entity.RetroBoard) []*RetroBoardDTO {
	dtos := make([]*RetroBoardDTO, len(boards))
	for i, b := range boards {
		dtos[i] = RetroBoardFromEntity(b)
	}
	return dtos
}

// RetroItemDTO представляет карточку на ретро-доске
type RetroItemDTO struct {
	ID         string    `json:"id"`
	BoardID    string    `json:"board_id"`
	Category   string    `json:"category"`
	Content    string    `json:"content"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// RetroItemFromEntity конвертирует Entity в DTO
func RetroItemFromEntity(item *entity.RetroItem) *RetroItemDTO {
	return &RetroItemDTO{
		ID:         item.ID(),
		BoardID:    item.BoardID(),
		Category:   string(item.Category()),
		Content:    item.Content(),
		AuthorName: item.AuthorName(),
		CreatedAt:  item.CreatedAt(),
	}
}

// ToRetroItemDTOs конвертирует слайс Entity в слайс DTO
func ToRetroItemDTOs(items []*entity.RetroItem) []*RetroItemDTO {
	dtos := make([]*RetroItemDTO, len(items))
	for i, it := range items {
		dtos[i] = RetroItemFromEntity(it)
	}
	return dtos
}
