package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
	"github.com/google/uuid"
)

// SprintMember описывает участника команды в форме планирования спринта.
// absentDates хранятся сырыми строками: невалидные даты фильтруются
// проектором, а не отклоняются на входе.
type SprintMember struct {
	Name           string
	Role           valueobject.MemberRole
	CapacityFactor float64
	AbsentDates    []string
}

// Holiday описывает праздничный день в интервале спринта
type Holiday struct {
	ID   string
	Date string
	Name string
}

// HistoricalVelocityCount — форма всегда содержит ровно 5 исторических значений
const HistoricalVelocityCount = 5

// SprintVelocityForm представляет входные данные проекции velocity.
// Transient-объект: не сохраняется, пока расчет явно не сохранен.
type SprintVelocityForm struct {
	TeamName             string
	HistoricalVelocities []float64
	TeamSize             int
	TeamMembers          []SprintMember
	SprintStartDate      string
	SprintEndDate        string
	Holidays             []Holiday
}

// Validate проверяет preconditions вызова проектора. Проектор сам входные
// данные не перепроверяет — валидация выполняется на уровне caller'а.
func (f *SprintVelocityForm) Validate() error {
	if strings.TrimSpace(f.TeamName) == "" {
		return errors.New("team name is required")
	}

	if len(f.HistoricalVelocities) != HistoricalVelocityCount {
		return fmt.Errorf("exactly %d historical velocities are required", HistoricalVelocityCount)
	}
	for i, v := range f.HistoricalVelocities {
		if v <= 0 {
			return fmt.Errorf("historical velocity #%d must be positive", i+1)
		}
	}

	if len(f.TeamMembers) != f.TeamSize {
		return fmt.Errorf("team has %d members but size is declared as %d", len(f.TeamMembers), f.TeamSize)
	}
	for i, m := range f.TeamMembers {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("member #%d name is required", i+1)
		}
	}

	start, err := valueobject.ParseISODate(f.SprintStartDate)
	if err != nil {
		return errors.New("sprint start date is required")
	}
	end, err := valueobject.ParseISODate(f.SprintEndDate)
	if err != nil {
		return errors.New("sprint end date is required")
	}
	if end.Before(start) {
		return errors.New("sprint end date must not precede start date")
	}

	return nil
}

// MemberCapacity аннотирует участника вычисленной эффективной capacity
type MemberCapacity struct {
	Member            SprintMember
	EffectiveCapacity float64
}

// VelocityCalculationResult представляет результат проекции velocity
type VelocityCalculationResult struct {
	ProjectedVelocity         float64
	AverageHistoricalVelocity float64
	TeamCapacity              float64
	WorkingDays               int
	TotalSprintDays           int
	Recommendations           []string
	TeamMembersWithCapacity   []MemberCapacity
}

// SprintCalculation представляет сохраненный расчет velocity (Entity)
type SprintCalculation struct {
	id        string
	teamID    string
	form      SprintVelocityForm
	result    VelocityCalculationResult
	createdAt time.Time
}

// NewSprintCalculation создает сохраняемый расчет
func NewSprintCalculation(teamID string, form SprintVelocityForm, result VelocityCalculationResult) (*SprintCalculation, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, errors.New("team id cannot be empty")
	}

	return &SprintCalculation{
		id:        uuid.New().String(),
		teamID:    teamID,
		form:      form,
		result:    result,
		createdAt: time.Now(),
	}, nil
}

// ReconstructSprintCalculation восстанавливает расчет из хранилища
func ReconstructSprintCalculation(id, teamID string, form SprintVelocityForm, result VelocityCalculationResult, createdAt time.Time) *SprintCalculation {
	return &SprintCalculation{
		id:        id,
		teamID:    teamID,
		form:      form,
		result:    result,
		createdAt: createdAt,
	}
}

func (c *SprintCalculation) ID() string                        { return c.id }
func (c *SprintCalculation) TeamID() string                    { return c.teamID }
func (c *SprintCalculation) Form() SprintVelocityForm          { return c.form }
func (c *SprintCalculation) Result() VelocityCalculationResult { return c.result }
func (c *SprintCalculation) CreatedAt() time.Time              { return c.createdAt }
