package valueobject

// Color представляет цветовую оценку метрики (Value Object)
type Color string

const (
	Green  Color = "green"
	Yellow Color = "yellow"
	Red    Color = "red"

	// None — нейтральная оценка: значение не классифицируется
	// (нечисловое значение или отсутствующая конфигурация порогов)
	None Color = "none"
)

// String возвращает строковое представление цвета
func (c Color) String() string {
	return string(c)
}

// Rank возвращает порядок цвета от лучшего к худшему (для монотонности)
// green < yellow < red; None вне шкалы
func (c Color) Rank() int {
	switch c {
	case Green:
		return 0
	case Yellow:
		return 1
	case Red:
		return 2
	default:
		return -1
	}
}

// Verdict представляет результат классификации значения метрики.
// Нейтральный вердикт с флагом unconfigured позволяет caller'у отличить
// "нет конфигурации порогов" от "значение не парсится".
type Verdict struct {
	color        Color
	unconfigured bool
}

// NewVerdict создает вердикт для вычисленного цвета
func NewVerdict(color Color) Verdict {
	return Verdict{color: color}
}

// NeutralVerdict создает нейтральный вердикт (нечисловое значение)
func NeutralVerdict() Verdict {
	return Verdict{color: None}
}

// UnconfiguredVerdict создает нейтральный вердикт при отсутствии конфигурации
func UnconfiguredVerdict() Verdict {
	return Verdict{color: None, unconfigured: true}
}

// Color возвращает цвет вердикта
func (v Verdict) Color() Color {
	return v.color
}

// IsNeutral сообщает, что значение не было классифицировано
func (v Verdict) IsNeutral() bool {
	return v.color == None
}

// IsUnconfigured сообщает, что для метрики нет конфигурации порогов
func (v Verdict) IsUnconfigured() bool {
	return v.unconfigured
}
