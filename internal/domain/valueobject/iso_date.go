package valueobject

import (
	"errors"
	"strings"
	"time"
)

const isoDateLayout = "2006-01-02"

// ISODate представляет календарную дату без времени (Value Object)
// Иммутабельный объект
type ISODate struct {
	t time.Time
}

// ParseISODate разбирает дату в формате YYYY-MM-DD
func ParseISODate(raw string) (ISODate, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ISODate{}, errors.New("date string is empty")
	}

	t, err := time.Parse(isoDateLayout, trimmed)
	if err != nil {
		return ISODate{}, err
	}

	return ISODate{t: t}, nil
}

// NewISODate создает дату из компонентов
func NewISODate(year int, month time.Month, day int) ISODate {
	return ISODate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// IsZero сообщает, что дата не установлена
func (d ISODate) IsZero() bool {
	return d.t.IsZero()
}

// Weekday возвращает день недели
func (d ISODate) Weekday() time.Weekday {
	return d.t.Weekday()
}

// IsBusinessDay сообщает, что дата приходится на понедельник-пятницу
func (d ISODate) IsBusinessDay() bool {
	wd := d.t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// Before сравнивает даты
func (d ISODate) Before(other ISODate) bool {
	return d.t.Before(other.t)
}

// After сравнивает даты
func (d ISODate) After(other ISODate) bool {
	return d.t.After(other.t)
}

// Equal сравнивает даты на равенство
func (d ISODate) Equal(other ISODate) bool {
	return d.t.Equal(other.t)
}

// WithinInclusive проверяет попадание даты в инклюзивный интервал [start, end]
func (d ISODate) WithinInclusive(start, end ISODate) bool {
	return !d.t.Before(start.t) && !d.t.After(end.t)
}

// Next возвращает следующий календарный день
func (d ISODate) Next() ISODate {
	return ISODate{t: d.t.AddDate(0, 0, 1)}
}

// String возвращает дату в формате YYYY-MM-DD
func (d ISODate) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(isoDateLayout)
}
