package valueobject

import (
	"math"
	"strconv"
	"strings"
)

// ReadingKind различает числовые и текстовые значения метрики
type ReadingKind string

const (
	ReadingNumeric ReadingKind = "numeric"
	ReadingText    ReadingKind = "text"
	ReadingEmpty   ReadingKind = "empty"
)

// MetricReading представляет введенное значение метрики (Value Object).
// Tagged union: метрика либо числовая, либо текстовая, либо пустая —
// явный дискриминатор вместо двух nullable полей.
type MetricReading struct {
	kind   ReadingKind
	number float64
	text   string
}

// NewNumericReading создает числовое значение
func NewNumericReading(value float64) MetricReading {
	return MetricReading{kind: ReadingNumeric, number: value}
}

// NewTextReading создает текстовое значение
func NewTextReading(text string) MetricReading {
	if strings.TrimSpace(text) == "" {
		return EmptyReading()
	}
	return MetricReading{kind: ReadingText, text: text}
}

// EmptyReading создает пустое значение
func EmptyReading() MetricReading {
	return MetricReading{kind: ReadingEmpty}
}

// ParseMetricReading разбирает сырой ввод: конечное число становится
// числовым значением, все остальное — текстовым. Ошибок не бывает:
// невалидный ввод деградирует в текст/пустоту, а не в отказ.
func ParseMetricReading(raw string) MetricReading {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EmptyReading()
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return MetricReading{kind: ReadingText, text: trimmed}
	}

	return MetricReading{kind: ReadingNumeric, number: value}
}

// Kind возвращает дискриминатор значения
func (r MetricReading) Kind() ReadingKind {
	return r.kind
}

// IsNumeric сообщает, является ли значение числовым
func (r MetricReading) IsNumeric() bool {
	return r.kind == ReadingNumeric
}

// Number возвращает числовое значение (валидно только для ReadingNumeric)
func (r MetricReading) Number() float64 {
	return r.number
}

// Text возвращает текстовое значение (валидно только для ReadingText)
func (r MetricReading) Text() string {
	return r.text
}

// String возвращает представление для отображения и экспорта
func (r MetricReading) String() string {
	switch r.kind {
	case ReadingNumeric:
		return strconv.FormatFloat(r.number, 'f', -1, 64)
	case ReadingText:
		return r.text
	default:
		return ""
	}
}
