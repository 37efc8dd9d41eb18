package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MetricConfig представляет конфигурацию порогов метрики для команды (Entity).
// Классификация использует только green и yellow пороги; red хранится как
// документация нижней границы и алгоритмом не читается.
type MetricConfig struct {
	id              string
	teamID          string
	metricName      string
	greenThreshold  float64
	yellowThreshold float64
	redThreshold    float64
	isHigherBetter  bool
	updatedAt       time.Time
}

// NewMetricConfig создает новую конфигурацию порогов (Factory Method)
func NewMetricConfig(teamID, metricName string, green, yellow, red float64, isHigherBetter bool) (*MetricConfig, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, errors.New("team id cannot be empty")
	}
	if strings.TrimSpace(metricName) == "" {
		return nil, errors.New("metric name cannot be empty")
	}

	return &MetricConfig{
		id:              uuid.New().String(),
		teamID:          teamID,
		metricName:      strings.TrimSpace(metricName),
		greenThreshold:  green,
		yellowThreshold: yellow,
		redThreshold:    red,
		isHigherBetter:  isHigherBetter,
		updatedAt:       time.Now(),
	}, nil
}

// ReconstructMetricConfig восстанавливает конфигурацию из хранилища
func ReconstructMetricConfig(id, teamID, metricName string, green, yellow, red float64, isHigherBetter bool, updatedAt time.Time) *MetricConfig {
	return &MetricConfig{
		id:              id,
		teamID:          teamID,
		metricName:      metricName,
		greenThreshold:  green,
		yellowThreshold: yellow,
		redThreshold:    red,
		isHigherBetter:  isHigherBetter,
		updatedAt:       updatedAt,
	}
}

// ID возвращает идентификатор конфигурации
func (c *MetricConfig) ID() string {
	return c.id
}

// TeamID возвращает идентификатор команды
func (c *MetricConfig) TeamID() string {
	return c.teamID
}

// MetricName возвращает имя метрики
func (c *MetricConfig) MetricName() string {
	return c.metricName
}

// GreenThreshold возвращает порог зеленой зоны
func (c *MetricConfig) GreenThreshold() float64 {
	return c.greenThreshold
}

// YellowThreshold возвращает порог желтой зоны
func (c *MetricConfig) YellowThreshold() float64 {
	return c.yellowThreshold
}

// RedThreshold возвращает документационный порог красной зоны
func (c *MetricConfig) RedThreshold() float64 {
	return c.redThreshold
}

// IsHigherBetter возвращает полярность метрики
func (c *MetricConfig) IsHigherBetter() bool {
	return c.isHigherBetter
}

// UpdatedAt возвращает время последнего изменения
func (c *MetricConfig) UpdatedAt() time.Time {
	return c.updatedAt
}

// SetThresholds обновляет пороги
func (c *MetricConfig) SetThresholds(green, yellow, red float64) {
	c.greenThreshold = green
	c.yellowThreshold = yellow
	c.redThreshold = red
	c.updatedAt = time.Now()
}

// SetPolarity обновляет полярность метрики
func (c *MetricConfig) SetPolarity(isHigherBetter bool) {
	c.isHigherBetter = isHigherBetter
	c.updatedAt = time.Now()
}

// Warnings проверяет инвариант полярности порогов.
// Нарушение — ошибка конфигурации, которая показывается как предупреждение,
// но не блокирует сохранение.
func (c *MetricConfig) Warnings() []string {
	var warnings []string

	if c.isHigherBetter && c.yellowThreshold > c.greenThreshold {
		warnings = append(warnings, fmt.Sprintf(
			"%s: yellow threshold (%.2f) should not exceed green threshold (%.2f) when higher is better",
			c.metricName, c.yellowThreshold, c.greenThreshold))
	}

	if !c.isHigherBetter && c.greenThreshold > c.yellowThreshold {
		warnings = append(warnings, fmt.Sprintf(
			"%s: green threshold (%.2f) should not exceed yellow threshold (%.2f) when lower is better",
			c.metricName, c.greenThreshold, c.yellowThreshold))
	}

	return warnings
}
