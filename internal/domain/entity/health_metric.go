package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
	"github.com/google/uuid"
)

// ErrAlreadyApproved возвращается при повторном approve той же записи.
// Approve — one-way операция: пути назад не существует.
var ErrAlreadyApproved = errors.New("metric is already approved")

// HealthMetric представляет запись значения метрики за спринт (Aggregate Root).
// actualColor не хранится как источник истины — она пересчитывается
// классификатором при чтении; approval хранится отдельно для аудита.
type HealthMetric struct {
	id                string
	teamID            string
	metricName        string
	sprintNumber      string
	reading           valueobject.MetricReading
	poApproved        bool
	poApprovedBy      string
	poApprovalComment string
	poApprovedAt      *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

// NewHealthMetric создает новую запись метрики (Factory Method)
func NewHealthMetric(teamID, metricName, sprintNumber string, reading valueobject.MetricReading) (*HealthMetric, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, errors.New("team id cannot be empty")
	}
	if strings.TrimSpace(metricName) == "" {
		return nil, errors.New("metric name cannot be empty")
	}
	if strings.TrimSpace(sprintNumber) == "" {
		return nil, errors.New("sprint number cannot be empty")
	}

	now := time.Now()

	return &HealthMetric{
		id:           uuid.New().String(),
		teamID:       teamID,
		metricName:   strings.TrimSpace(metricName),
		sprintNumber: strings.TrimSpace(sprintNumber),
		reading:      reading,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructHealthMetric восстанавливает запись из хранилища (для Repository)
func ReconstructHealthMetric(
	id, teamID, metricName, sprintNumber string,
	reading valueobject.MetricReading,
	poApproved bool,
	poApprovedBy, poApprovalComment string,
	poApprovedAt *time.Time,
	createdAt, updatedAt time.Time,
) *HealthMetric {
	return &HealthMetric{
		id:                id,
		teamID:            teamID,
		metricName:        metricName,
		sprintNumber:      sprintNumber,
		reading:           reading,
		poApproved:        poApproved,
		poApprovedBy:      poApprovedBy,
		poApprovalComment: poApprovalComment,
		poApprovedAt:      poApprovedAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// ID возвращает идентификатор записи
func (m *HealthMetric) ID() string {
	return m.id
}

// TeamID возвращает идентификатор команды
func (m *HealthMetric) TeamID() string {
	return m.teamID
}

// MetricName возвращает имя метрики
func (m *HealthMetric) MetricName() string {
	return m.metricName
}

// SprintNumber возвращает номер спринта (например "S03")
func (m *HealthMetric) SprintNumber() string {
	return m.sprintNumber
}

// Reading возвращает введенное значение
func (m *HealthMetric) Reading() valueobject.MetricReading {
	return m.reading
}

// IsApproved сообщает, одобрена ли запись Product Owner'ом
func (m *HealthMetric) IsApproved() bool {
	return m.poApproved
}

// ApprovedBy возвращает идентификатор одобрившего
func (m *HealthMetric) ApprovedBy() string {
	return m.poApprovedBy
}

// ApprovalComment возвращает комментарий к одобрению
func (m *HealthMetric) ApprovalComment() string {
	return m.poApprovalComment
}

// ApprovedAt возвращает время одобрения
func (m *HealthMetric) ApprovedAt() *time.Time {
	return m.poApprovedAt
}

// CreatedAt возвращает время создания записи
func (m *HealthMetric) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt возвращает время последнего изменения
func (m *HealthMetric) UpdatedAt() time.Time {
	return m.updatedAt
}

// UpdateReading обновляет значение метрики.
// Существующий approval записи не трогается: новое значение для нового
// спринта требует новой записи и approval не наследует.
func (m *HealthMetric) UpdateReading(reading valueobject.MetricReading) {
	m.reading = reading
	m.updatedAt = time.Now()
}

// Approve одобряет запись от имени Product Owner.
// Операция one-way: повторный вызов возвращает ErrAlreadyApproved,
// операции снятия approval не существует.
func (m *HealthMetric) Approve(approvedBy, comment string) error {
	if m.poApproved {
		return ErrAlreadyApproved
	}
	if strings.TrimSpace(approvedBy) == "" {
		return errors.New("approver identity is required")
	}

	now := time.Now()
	m.poApproved = true
	m.poApprovedBy = strings.TrimSpace(approvedBy)
	m.poApprovalComment = strings.TrimSpace(comment)
	m.poApprovedAt = &now
	m.updatedAt = now

	return nil
}

// EffectiveColor возвращает отображаемый цвет: approval принудительно
// делает его зеленым, вычисленный вердикт сохраняется для аудита.
func (m *HealthMetric) EffectiveColor(actual valueobject.Verdict) valueobject.Color {
	if m.poApproved {
		return valueobject.Green
	}
	return actual.Color()
}
