package dto

import (
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
)

// HealthMetricDTO представляет запись метрики с результатом классификации.
// actual_color — вычисленный цвет, effective_color — отображаемый
// (approval форсирует зеленый); оба поля отдаются клиенту для аудита.
type HealthMetricDTO struct {
	ID           string `json:"id"`
	TeamID       string `json:"team_id"`
	MetricName   string `json:"metric_name"`
	SprintNumber string `json:"sprint_number"`
	Value        string `json:"value"`
	// Computed fields
	ActualColor    string `json:"actual_color"`
	EffectiveColor string `json:"effective_color"`
	Unconfigured   bool   `json:"unconfigured"`
	// Approval audit trail
	Approved        bool       `json:"approved"`
	ApprovedBy      string     `json:"approved_by,omitempty"`
	ApprovalComment string     `json:"approval_comment,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// HealthMetricFromEntity конвертирует Entity и вердикт классификации в DTO
func HealthMetricFromEntity(metric *entity.HealthMetric, actual valueobject.Verdict, effective valueobject.Color) *HealthMetricDTO {
	return &HealthMetricDTO{
		ID:              metric.ID(),
		TeamID:          metric.TeamID(),
		MetricName:      metric.MetricName(),
		SprintNumber:    metric.SprintNumber(),
		Value:           metric.Reading().String(),
		ActualColor:     actual.Color().String(),
		EffectiveColor:  effective.String(),
		Unconfigured:    actual.IsUnconfigured(),
		Approved:        metric.IsApproved(),
		ApprovedBy:      metric.ApprovedBy(),
		ApprovalComment: metric.ApprovalComment(),
		ApprovedAt:      metric.ApprovedAt(),
		CreatedAt:       metric.CreatedAt(),
		UpdatedAt:       metric.UpdatedAt(),
	}
}

// MetricConfigDTO представляет конфигурацию порогов метрики
type MetricConfigDTO struct {
	ID              string    `json:"id"`
	TeamID          string    `json:"team_id"`
	MetricName      string    `json:"metric_name"`
	GreenThreshold  float64   `json:"green_threshold"`
	YellowThreshold float64   `json:"yellow_threshold"`
	RedThreshold    float64   `json:"red_threshold"`
	IsHigherBetter  bool      `json:"is_higher_better"`
	UpdatedAt       time.Time `json:"updated_at"`
	Warnings        []string  `json:"warnings,omitempty"`
}

// MetricConfigFromEntity конвертирует Entity в DTO
func MetricConfigFromEntity(config *entity.MetricConfig) *MetricConfigDTO {
	return &MetricConfigDTO{
		ID:              config.ID(),
		TeamID:          config.TeamID(),
		MetricName:      config.MetricName(),
		GreenThreshold:  config.GreenThreshold(),
		YellowThreshold: config.YellowThreshold(),
		RedThreshold:    config.RedThreshold(),
		IsHigherBetter:  config.IsHigherBetter(),
		UpdatedAt:       config.UpdatedAt(),
		Warnings:        config.Warnings(),
	}
}

// ToMetricConfigDTOs конвертирует слайс Entity в слайс DTO
func ToMetricConfigDTOs(configs []*entity.MetricConfig) []*MetricConfigDTO {
	dtos := make([]*MetricConfigDTO, len(configs))
	for i, c := range configs {
		dtos[i] = MetricConfigFromEntity(c)
	}
	return dtos
}

// TeamHealthDTO представляет классифицированный снимок здоровья команды
type TeamHealthDTO struct {
	Team         *TeamDTO           `json:"team"`
	SprintNumber string             `json:"sprint_number,omitempty"`
	Metrics      []*HealthMetricDTO `json:"metrics"`
	GeneratedAt  time.Time          `json:"generated_at"`
}

// RedMetricDTO представляет красную метрику в сводке по всем командам
type RedMetricDTO struct {
	TeamID       string `json:"team_id"`
	TeamName     string `json:"team_name"`
	MetricName   string `json:"metric_name"`
	SprintNumber string `json:"sprint_number"`
	Value        string `json:"value"`
}
