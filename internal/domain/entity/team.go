package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Team представляет scrum-команду (Aggregate Root)
type Team struct {
	id                  string
	name                string
	size                int
	sprintDurationWeeks int
	createdAt           time.Time
	updatedAt           time.Time
}

// NewTeam создает новую команду (Factory Method)
func NewTeam(name string, size, sprintDurationWeeks int) (*Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("team name cannot be empty")
	}
	if size <= 0 {
		return nil, errors.New("team size must be positive")
	}
	if sprintDurationWeeks <= 0 {
		sprintDurationWeeks = 2
	}

	now := time.Now()

	return &Team{
		id:                  uuid.New().String(),
		name:                strings.TrimSpace(name),
		size:                size,
		sprintDurationWeeks: sprintDurationWeeks,
		createdAt:           now,
		updatedAt:           now,
	}, nil
}

// ReconstructTeam восстанавливает команду из хранилища (для Repository)
func ReconstructTeam(id, name string, size, sprintDurationWeeks int, createdAt, updatedAt time.Time) *Team {
	return &Team{
		id:                  id,
		name:                name,
		size:                size,
		sprintDurationWeeks: sprintDurationWeeks,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// ID возвращает идентификатор команды
func (t *Team) ID() string {
	return t.id
}

// Name возвращает название команды
func (t *Team) Name() string {
	return t.name
}

// Size возвращает заявленный размер команды
func (t *Team) Size() int {
	return t.size
}

// SprintDurationWeeks возвращает длительность спринта в неделях
func (t *Team) SprintDurationWeeks() int {
	return t.sprintDurationWeeks
}

// CreatedAt возвращает время создания
func (t *Team) CreatedAt() time.Time {
	return t.createdAt
}

// UpdatedAt возвращает время последнего изменения
func (t *Team) UpdatedAt() time.Time {
	return t.updatedAt
}

// Rename изменяет название команды
func (t *Team) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("team name cannot be empty")
	}
	t.name = strings.TrimSpace(name)
	t.updatedAt = time.Now()
	return nil
}

// Resize изменяет заявленный размер команды
func (t *Team) Resize(size int) error {
	if size <= 0 {
		return errors.New("team size must be positive")
	}
	t.size = size
	t.updatedAt = time.Now()
	return nil
}

// SetSprintDuration изменяет длительность спринта
func (t *Team) SetSprintDuration(weeks int) error {
	if weeks <= 0 {
		return errors.New("sprint duration must be positive")
	}
	t.sprintDurationWeeks = weeks
	t.updatedAt = time.Now()
	return nil
}
