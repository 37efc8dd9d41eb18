package service

import (
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
)

// ThresholdClassifier вычисляет цветовую оценку значения метрики
// по конфигурации порогов (Domain Service). Чистая функция без side effects:
// persistence approval'а — забота application слоя.
type ThresholdClassifier struct{}

// NewThresholdClassifier создает новый ThresholdClassifier
func NewThresholdClassifier() *ThresholdClassifier {
	return &ThresholdClassifier{}
}

// Classify возвращает вердикт для введенного значения.
// Невалидный ввод и отсутствующая конфигурация дают нейтральный вердикт,
// а не ошибку — caller всегда может отобразить результат.
func (c *ThresholdClassifier) Classify(reading valueobject.MetricReading, config *entity.MetricConfig) valueobject.Verdict {
	if config == nil {
		return valueobject.UnconfiguredVerdict()
	}
	if !reading.IsNumeric() {
		return valueobject.NeutralVerdict()
	}

	return c.ClassifyValue(reading.Number(), config)
}

// ClassifyValue классифицирует числовое значение.
// Граничные значения инклюзивны в сторону лучшей оценки в обеих полярностях:
// равенство порогу всегда дает лучший цвет.
func (c *ThresholdClassifier) ClassifyValue(value float64, config *entity.MetricConfig) valueobject.Verdict {
	if config == nil {
		return valueobject.UnconfiguredVerdict()
	}

	green := config.GreenThreshold()
	yellow := config.YellowThreshold()

	if config.IsHigherBetter() {
		switch {
		case value >= green:
			return valueobject.NewVerdict(valueobject.Green)
		case value >= yellow:
			return valueobject.NewVerdict(valueobject.Yellow)
		default:
			return valueobject.NewVerdict(valueobject.Red)
		}
	}

	switch {
	case value <= green:
		return valueobject.NewVerdict(valueobject.Green)
	case value <= yellow:
		return valueobject.NewVerdict(valueobject.Yellow)
	default:
		return valueobject.NewVerdict(valueobject.Red)
	}
}

// EffectiveColor возвращает отображаемый цвет записи: approval
// принудительно дает зеленый, вычисленный цвет остается для аудита
func (c *ThresholdClassifier) EffectiveColor(metric *entity.HealthMetric, config *entity.MetricConfig) (actual valueobject.Verdict, effective valueobject.Color) {
	actual = c.Classify(metric.Reading(), config)
	return actual, metric.EffectiveColor(actual)
}
