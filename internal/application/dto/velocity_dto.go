package dto

import (
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
)

// SprintMemberDTO представляет участника команды в форме планирования
type SprintMemberDTO struct {
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	CapacityFactor float64  `json:"capacity_factor"`
	AbsentDates    []string `json:"absent_dates,omitempty"`
}

// HolidayDTO представляет праздничный день в интервале спринта
type HolidayDTO struct {
	ID   string `json:"id,omitempty"`
	Date string `json:"date"`
	Name string `json:"name"`
}

// VelocityFormDTO представляет входные данные проекции velocity
type VelocityFormDTO struct {
	TeamName             string            `json:"team_name"`
	HistoricalVelocities []float64         `json:"historical_velocities"`
	TeamSize             int               `json:"team_size"`
	TeamMembers          []SprintMemberDTO `json:"team_members"`
	SprintStartDate      string            `json:"sprint_start_date"`
	SprintEndDate        string            `json:"sprint_end_date"`
	Holidays             []HolidayDTO      `json:"holidays,omitempty"`
}

// ToForm конвертирует DTO в доменную форму
func (d *VelocityFormDTO) ToForm() entity.SprintVelocityForm {
	members := make([]entity.SprintMember, len(d.TeamMembers))
	for i, m := range d.TeamMembers {
		members[i] = entity.SprintMember{
			Name:           m.Name,
			Role:           valueobject.MemberRole(m.Role),
			CapacityFactor: m.CapacityFactor,
			AbsentDates:    m.AbsentDates,
		}
	}

	holidays := make([]entity.Holiday, len(d.Holidays))
	for i, h := range d.Holidays {
		holidays[i] = entity.Holiday{
			ID:   h.ID,
			Date: h.Date,
			Name: h.Name,
		}
	}

	return entity.SprintVelocityForm{
		TeamName:             d.TeamName,
		HistoricalVelocities: d.HistoricalVelocities,
		TeamSize:             d.TeamSize,
		TeamMembers:          members,
		SprintStartDate:      d.SprintStartDate,
		SprintEndDate:        d.SprintEndDate,
		Holidays:             holidays,
	}
}

// FormFromEntity конвертирует доменную форму обратно в DTO
func FormFromEntity(form entity.SprintVelocityForm) *VelocityFormDTO {
	members := make([]SprintMemberDTO, len(form.TeamMembers))
	for i, m := range form.TeamMembers {
		members[i] = SprintMemberDTO{
			Name:           m.Name,
			Role:           m.Role.String(),
			CapacityFactor: m.CapacityFactor,
			AbsentDates:    m.AbsentDates,
		}
	}

	holidays := make([]HolidayDTO, len(form.Holidays))
	for i, h := range form.Holidays {
		holidays[i] = HolidayDTO{
			ID:   h.ID,
			Date: h.Date,
			Name: h.Name,
		}
	}

	return &VelocityFormDTO{
		TeamName:             form.TeamName,
		HistoricalVelocities: form.HistoricalVelocities,
		TeamSize:             form.TeamSize,
		TeamMembers:          members,
		SprintStartDate:      form.SprintStartDate,
		SprintEndDate:        form.SprintEndDate,
		Holidays:             holidays,
	}
}

// MemberCapacityDTO представляет участника с вычисленной capacity
type MemberCapacityDTO struct {
	Member            SprintMemberDTO `json:"member"`
	EffectiveCapacity float64         `json:"effective_capacity"`
}

// VelocityResultDTO представляет результат проекции velocity
type VelocityResultDTO struct {
	ProjectedVelocity         float64             `json:"projected_velocity"`
	AverageHistoricalVelocity float64             `json:"average_historical_velocity"`
	TeamCapacity              float64             `json:"team_capacity"`
	WorkingDays               int                 `json:"working_days"`
	TotalSprintDays           int                 `json:"total_sprint_days"`
	Recommendations           []string            `json:"recommendations"`
	TeamMembersWithCapacity   []MemberCapacityDTO `json:"team_members_with_capacity"`
}

// VelocityResultFromEntity конвертирует результат расчета в DTO
func VelocityResultFromEntity(result entity.VelocityCalculationResult) *VelocityResultDTO {
	members := make([]MemberCapacityDTO, len(result.TeamMembersWithCapacity))
	for i, mc := range result.TeamMembersWithCapacity {
		members[i] = MemberCapacityDTO{
			Member: SprintMemberDTO{
				Name:           mc.Member.Name,
				Role:           mc.Member.Role.String(),
				CapacityFactor: mc.Member.CapacityFactor,
				AbsentDates:    mc.Member.AbsentDates,
			},
			EffectiveCapacity: mc.EffectiveCapacity,
		}
	}

	return &VelocityResultDTO{
		ProjectedVelocity:         result.ProjectedVelocity,
		AverageHistoricalVelocity: result.AverageHistoricalVelocity,
		TeamCapacity:              result.TeamCapacity,
		WorkingDays:               result.WorkingDays,
		TotalSprintDays:           result.TotalSprintDays,
		Recommendations:           result.Recommendations,
		TeamMembersWithCapacity:   members,
	}
}

// SprintCalculationDTO представляет сохраненный расчет velocity
type SprintCalculationDTO struct {
	ID        string             `json:"id"`
	TeamID    string             `json:"team_id"`
	Form      *VelocityFormDTO   `json:"form"`
	Result    *VelocityResultDTO `json:"result"`
	CreatedAt time.Time          `json:"created_at"`
}

// SprintCalculationFromEntity конвертирует Entity в DTO
func SprintCalculationFromEntity(calc *entity.SprintCalculation) *SprintCalculationDTO {
	return &SprintCalculationDTO{
		ID:        calc.ID(),
		TeamID:    calc.TeamID(),
		Form:      FormFromEntity(calc.Form()),
		Result:    VelocityResultFromEntity(calc.Result()),
		CreatedAt: calc.CreatedAt(),
	}
}

// ToSprintCalculationDTOs конвертирует слайс Entity в слайс DTO
func ToSprintCalculationDTOs(calcs []*entity.SprintCalculation) []*SprintCalculationDTO {
	dtos := make([]*SprintCalculationDTO, len(calcs))
	for i, c := range calcs {
		dtos[i] = SprintCalculationFromEntity(c)
	}
	return dtos
}
