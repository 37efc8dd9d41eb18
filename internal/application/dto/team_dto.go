package dto

import (
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
)

// TeamDTO представляет команду для передачи между слоями
type TeamDTO struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Size                int       `json:"size"`
	SprintDurationWeeks int       `json:"sprint_duration_weeks"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// TeamFromEntity конвертирует Domain Entity в DTO
func TeamFromEntity(team *entity.Team) *TeamDTO {
	return &TeamDTO{
		ID:                  team.ID(),
		Name:                team.Name(),
		Size:                team.Size(),
		SprintDurationWeeks: team.SprintDurationWeeks(),
		CreatedAt:           team.CreatedAt(),
		UpdatedAt:           team.UpdatedAt(),
	}
}

// ToTeamDTOs конвертирует слайс Entity в слайс DTO
func ToTeamDTOs(teams []*entity.Team) []*TeamDTO {
	dtos := make([]*TeamDTO, len(teams))
	for i, t := range teams {
		dtos[i] = TeamFromEntity(t)
	}
	return dtos
}
