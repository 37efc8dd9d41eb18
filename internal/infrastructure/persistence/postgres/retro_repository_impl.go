package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	_ "github.com/lib/pq"
)

// PostgresRetroRepository реализует repository.RetroRepository для PostgreSQL
type PostgresRetroRepository struct {
	db *sql.DB
}

// NewPostgresRetroRepository создает новый PostgreSQL repository
func NewPostgresRetroRepository(db *sql.DB) *PostgresRetroRepository {
	return &PostgresRetroRepository{
		db: db,
	}
}

// SaveBoard сохраняет новую ретро-доску
func (r *PostgresRetroRepository) SaveBoard(ctx context.Context, board *entity.RetroBoard) error {
	query := `
		INSERT INTO retro_boards (id, team_id, sprint_number, title, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		board.ID(),
		board.TeamID(),
		board.SprintNumber(),
		board.Title(),
		board.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert retro board: %w", err)
	}

	return nil
}

// FindBoardByID находит доску по идентификатору
func (r *PostgresRetroRepository) FindBoardByID(ctx context.Context, id string) (*entity.RetroBoard, error) {
	query := `
		SELECT id, team_id, sprint_number, title, created_at
		FROM retro_boards
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)

	board, err := scanRetroBoard(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("retro board not found: %s", id)
		}
		return nil, fmt.Errorf("failed to scan retro board: %w", err)
	}

	return board, nil
}

// FindBoardsByTeam возвращает доски команды
func (r *PostgresRetroRepository) FindBoardsByTeam(ctx context.Context, teamID string) ([]*entity.RetroBoard, error) {
	query := `
		SELECT id, team_id, sprint_number, title, created_at
		FROM retro_boards
		WHERE team_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query retro boards: %w", err)
	}
	defer rows.Close()

	var boards []*entity.RetroBoard
	for rows.Next() {
		board, err := scanRetroBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan retro board: %w", err)
		}
		boards = append(boards, board)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate retro boards: %w", err)
	}

	return boards, nil
}

// SaveItem сохраняет карточку на доске
func (r *PostgresRetroRepository) SaveItem(ctx context.Context, item *entity.RetroItem) error {
	query := `
		INSERT INTO retro_items (id, board_id, category, content, author_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID(),
		item.BoardID(),
		string(item.Category()),
		item.Content(),
		item.AuthorName(),
		item.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert retro item: %w", err)
	}

	return nil
}

// FindItemsByBoard возвращает карточки доски
func (r *PostgresRetroRepository) FindItemsByBoard(ctx context.Context, boardID string) ([]*entity.RetroItem, error) {
	query := `
		SELECT id, board_id, category, content, author_name, created_at
		FROM retro_items
		WHERE board_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to query retro items: %w", err)
	}
	defer rows.Close()

	var items []*entity.RetroItem
	for rows.Next() {
		var (
			id, bID, category, content, author string
			createdAt                          time.Time
		)
		if err := rows.Scan(&id, &bID, &category, &content, &author, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan retro item: %w", err)
		}
		items = append(items, entity.ReconstructRetroItem(id, bID, entity.RetroCategory(category), content, author, createdAt))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate retro items: %w", err)
	}

	return items, nil
}

// DeleteItem удаляет карточку
func (r *PostgresRetroRepository) DeleteItem(ctx context.Context, itemID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM retro_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete retro item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("retro item not found: %s", itemID)
	}

	return nil
}

func scanRetroBoard(row interface {
	Scan(dest ...interface{}) error
}) (*entity.RetroBoard, error) {
	var (
		id, teamID, sprintNumber, title string
		createdAt                       time.Time
	)

	if err := row.Scan(&id, &teamID, &sprintNumber, &title, &createdAt); err != nil {
		return nil, err
	}

	return entity.ReconstructRetroBoard(id, teamID, sprintNumber, title, createdAt), nil
}
