package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RetroCategory представляет колонку ретро-доски
type RetroCategory string

const (
	WentWell    RetroCategory = "went_well"
	ToImprove   RetroCategory = "to_improve"
	ActionItems RetroCategory = "action_items"
)

// Validate проверяет валидность категории
func (c RetroCategory) Validate() error {
	switch c {
	case WentWell, ToImprove, ActionItems:
		return nil
	default:
		return errors.New("invalid retro category")
	}
}

// RetroBoard представляет ретроспективу команды за спринт (Aggregate Root)
type RetroBoard struct {
	id           string
	teamID       string
	sprintNumber string
	title        string
	createdAt    time.Time
}

// NewRetroBoard создает новую ретро-доску
func NewRetroBoard(teamID, sprintNumber, title string) (*RetroBoard, error) {
	if strings.TrimSpace(teamID) == "" {
		return nil, errors.New("team id cannot be empty")
	}
	if strings.TrimSpace(sprintNumber) == "" {
		return nil, errors.New("sprint number cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		title = "Sprint " + strings.TrimSpace(sprintNumber) + " Retrospective"
	}

	return &RetroBoard{
		id:           uuid.New().String(),
		teamID:       teamID,
		sprintNumber: strings.TrimSpace(sprintNumber),
		title:        strings.TrimSpace(title),
		createdAt:    time.Now(),
	}, nil
}

// ReconstructRetroBoard восстанавливает доску из хранилища
func ReconstructRetroBoard(id, teamID, sprintNumber, title string, createdAt time.Time) *RetroBoard {
	return &RetroBoard{
		id:           id,
		teamID:       teamID,
		sprintNumber: sprintNumber,
		title:        title,
		createdAt:    createdAt,
	}
}

func (b *RetroBoard) ID() string           { return b.id }
func (b *RetroBoard) TeamID() string       { return b.teamID }
func (b *RetroBoard) SprintNumber() string { return b.sprintNumber }
func (b *RetroBoard) Title() string        { return b.title }
func (b *RetroBoard) CreatedAt() time.Time { return b.createdAt }

// RetroItem представляет карточку на ретро-доске
type RetroItem struct {
	id         string
	boardID    string
	category   RetroCategory
	content    string
	authorName string
	createdAt  time.Time
}

// NewRetroItem создает новую карточку
func NewRetroItem(boardID string, category RetroCategory, content, authorName string) (*RetroItem, error) {
	if strings.TrimSpace(boardID) == "" {
		return nil, errors.New("board id cannot be empty")
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("item content cannot be empty")
	}

	return &RetroItem{
		id:         uuid.New().String(),
		boardID:    boardID,
		category:   category,
		content:    strings.TrimSpace(content),
		authorName: strings.TrimSpace(authorName),
		createdAt:  time.Now(),
	}, nil
}

// ReconstructRetroItem восстанавливает карточку из хранилища
func ReconstructRetroItem(id, boardID string, category RetroCategory, content, authorName string, createdAt time.Time) *RetroItem {
	return &RetroItem{
		id:         id,
		boardID:    boardID,
		category:   category,
		content:    content,
		authorName: authorName,
		createdAt:  createdAt,
	}
}

func (i *RetroItem) ID() string              { return i.id }
func (i *RetroItem) BoardID() string         { return i.boardID }
func (i *RetroItem) Category() RetroCategory { return i.category }
func (i *RetroItem) Content() string         { return i.content }
func (i *RetroItem) AuthorName() string      { return i.authorName }
func (i *RetroItem) CreatedAt() time.Time    { return i.createdAt }
