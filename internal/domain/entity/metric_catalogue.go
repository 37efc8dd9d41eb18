package entity

// CatalogueMetric описывает известную метрику здоровья команды
// и ее пороги по умолчанию
type CatalogueMetric struct {
	Name           string
	Label          string
	IsHigherBetter bool
	DefaultGreen   float64
	DefaultYellow  float64
	DefaultRed     float64
}

// MetricCatalogue возвращает каталог известных метрик. Каталог используется
// для сидирования конфигураций новой команды; произвольные имена метрик
// вне каталога тоже допустимы.
func MetricCatalogue() []CatalogueMetric {
	return []CatalogueMetric{
		{Name: "rolled_to_prod", Label: "Rolled to Prod", IsHigherBetter: true, DefaultGreen: 90, DefaultYellow: 70, DefaultRed: 50},
		{Name: "cpp_percentage", Label: "CPP %", IsHigherBetter: true, DefaultGreen: 80, DefaultYellow: 60, DefaultRed: 40},
		{Name: "capex_percentage", Label: "CAPEX %", IsHigherBetter: true, DefaultGreen: 70, DefaultYellow: 50, DefaultRed: 30},
		{Name: "ram", Label: "R&M", IsHigherBetter: true, DefaultGreen: 95, DefaultYellow: 85, DefaultRed: 70},
		{Name: "velocity_sp", Label: "Velocity SP", IsHigherBetter: true, DefaultGreen: 40, DefaultYellow: 30, DefaultRed: 20},
		{Name: "dor_work", Label: "DOR Work", IsHigherBetter: false, DefaultGreen: 10, DefaultYellow: 25, DefaultRed: 40},
		{Name: "critical_bugs", Label: "Critical/High Prod Bugs", IsHigherBetter: false, DefaultGreen: 0, DefaultYellow: 2, DefaultRed: 5},
		{Name: "old_bugs", Label: "Old Bugs", IsHigherBetter: false, DefaultGreen: 3, DefaultYellow: 7, DefaultRed: 12},
	}
}

// MetricDisplayName возвращает человекочитаемое имя метрики каталога.
// Для неизвестной метрики возвращается само имя.
func MetricDisplayName(name string) string {
	for _, m := range MetricCatalogue() {
		if m.Name == name {
			return m.Label
		}
	}
	return name
}
