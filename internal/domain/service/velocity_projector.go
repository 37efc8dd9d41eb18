package service

import (
	"fmt"
	"math"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
)

// Пороговые значения правил рекомендаций
const (
	scopeReductionCapacity = 0.8
	lowMemberCapacity      = 70.0
	shortSprintWorkingDays = 8
)

// VelocityProjector вычисляет проекцию velocity спринта (Domain Service).
// Чистая функция: каждый вызов независим, состояния нет, повторный вызов
// с теми же входными данными дает идентичный результат.
type VelocityProjector struct{}

// NewVelocityProjector создает новый VelocityProjector
func NewVelocityProjector() *VelocityProjector {
	return &VelocityProjector{}
}

// Project выполняет расчет. Preconditions (имя команды, ровно 5 положительных
// исторических значений, размер == числу участников, даты заданы) проверяет
// caller через form.Validate(); сам расчет на невалидных данных не падает,
// а деградирует к нулевым значениям.
func (p *VelocityProjector) Project(form entity.SprintVelocityForm) entity.VelocityCalculationResult {
	average := p.averageVelocity(form.HistoricalVelocities)

	start, startErr := valueobject.ParseISODate(form.SprintStartDate)
	end, endErr := valueobject.ParseISODate(form.SprintEndDate)

	totalSprintDays := 0
	if startErr == nil && endErr == nil {
		totalSprintDays = p.businessDays(start, end)
	}

	workingDays := totalSprintDays - p.holidaysWithin(form.Holidays, start, end)
	if workingDays < 0 {
		workingDays = 0
	}

	members := make([]entity.MemberCapacity, 0, len(form.TeamMembers))
	var capacitySum float64
	for _, member := range form.TeamMembers {
		capacity := p.memberCapacity(member, start, end, workingDays)
		capacitySum += capacity
		members = append(members, entity.MemberCapacity{
			Member:            member,
			EffectiveCapacity: capacity,
		})
	}

	teamCapacity := 0.0
	if len(form.TeamMembers) > 0 {
		teamCapacity = capacitySum / float64(len(form.TeamMembers))
	}

	projected := average * (teamCapacity / 100)

	return entity.VelocityCalculationResult{
		ProjectedVelocity:         projected,
		AverageHistoricalVelocity: average,
		TeamCapacity:              teamCapacity,
		WorkingDays:               workingDays,
		TotalSprintDays:           totalSprintDays,
		Recommendations:           p.recommendations(form, members, average, teamCapacity, workingDays),
		TeamMembersWithCapacity:   members,
	}
}

// averageVelocity вычисляет среднее исторических значений
func (p *VelocityProjector) averageVelocity(velocities []float64) float64 {
	if len(velocities) == 0 {
		return 0
	}

	var sum float64
	for _, v := range velocities {
		sum += v
	}
	return sum / float64(len(velocities))
}

// businessDays считает рабочие дни (понедельник-пятница) в инклюзивном
// интервале [start, end]: start == end в будний день дает 1, а не 0
func (p *VelocityProjector) businessDays(start, end valueobject.ISODate) int {
	if end.Before(start) {
		return 0
	}

	count := 0
	for d := start; !d.After(end); d = d.Next() {
		if d.IsBusinessDay() {
			count++
		}
	}
	return count
}

// holidaysWithin считает праздники внутри инклюзивного интервала спринта.
// Пустая или невалидная дата праздника игнорируется, расчет не падает.
func (p *VelocityProjector) holidaysWithin(holidays []entity.Holiday, start, end valueobject.ISODate) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}

	count := 0
	for _, holiday := range holidays {
		date, err := valueobject.ParseISODate(holiday.Date)
		if err != nil {
			continue
		}
		if date.WithinInclusive(start, end) {
			count++
		}
	}
	return count
}

// memberCapacity вычисляет эффективную capacity участника в процентах.
// При нулевых workingDays capacity равна 0, а не NaN/Inf.
func (p *VelocityProjector) memberCapacity(member entity.SprintMember, start, end valueobject.ISODate, workingDays int) float64 {
	if workingDays == 0 {
		return 0
	}

	absences := 0
	for _, raw := range member.AbsentDates {
		date, err := valueobject.ParseISODate(raw)
		if err != nil {
			continue
		}
		if date.WithinInclusive(start, end) {
			absences++
		}
	}

	memberWorkingDays := workingDays - absences
	effectiveDays := float64(memberWorkingDays) * member.CapacityFactor
	capacity := effectiveDays / float64(workingDays) * 100

	return math.Max(0, capacity)
}

// recommendations формирует советы по планированию. Правила независимы,
// срабатывают совместно, порядок фиксирован.
func (p *VelocityProjector) recommendations(
	form entity.SprintVelocityForm,
	members []entity.MemberCapacity,
	average, teamCapacity float64,
	workingDays int,
) []string {
	recommendations := make([]string, 0)

	capacityFactor := teamCapacity / 100
	if capacityFactor < scopeReductionCapacity {
		reduction := int(math.Round((1 - capacityFactor) * average))
		recommendations = append(recommendations, fmt.Sprintf(
			"Consider reducing sprint scope by %d story points due to reduced capacity", reduction))
	}

	for _, mc := range members {
		if mc.EffectiveCapacity < lowMemberCapacity {
			recommendations = append(recommendations, fmt.Sprintf(
				"%s's limited availability (%.0f%%) may impact %s work",
				mc.Member.Name, mc.EffectiveCapacity, mc.Member.Role))
		}
	}

	if len(form.Holidays) > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"%d holiday(s) during sprint affect overall team productivity", len(form.Holidays)))
	}

	if workingDays < shortSprintWorkingDays {
		recommendations = append(recommendations,
			"Short sprint duration may limit velocity - consider adjusting scope accordingly")
	}

	return recommendations
}
