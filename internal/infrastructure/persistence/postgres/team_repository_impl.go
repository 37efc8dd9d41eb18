package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	_ "github.com/lib/pq"
)

// PostgresTeamRepository реализует repository.TeamRepository для PostgreSQL
type PostgresTeamRepository struct {
	db *sql.DB
}

// NewPostgresTeamRepository создает новый PostgreSQL repository
func NewPostgresTeamRepository(db *sql.DB) *PostgresTeamRepository {
	return &PostgresTeamRepository{
		db: db,
	}
}

// Save сохраняет новую команду
func (r *PostgresTeamRepository) Save(ctx context.Context, team *entity.Team) error {
	query := `
		INSERT INTO teams (id, name, size, sprint_duration_weeks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		team.ID(),
		team.Name(),
		team.Size(),
		team.SprintDurationWeeks(),
		team.CreatedAt(),
		team.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert team: %w", err)
	}

	return nil
}

// Update обновляет существующую команду
func (r *PostgresTeamRepository) Update(ctx context.Context, team *entity.Team) error {
	query := `
		UPDATE teams
		SET name = $2, size = $3, sprint_duration_weeks = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		team.ID(),
		team.Name(),
		team.Size(),
		team.SprintDurationWeeks(),
		team.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("team not found: %s", team.ID())
	}

	return nil
}

// FindByID находит команду по идентификатору
func (r *PostgresTeamRepository) FindByID(ctx context.Context, id string) (*entity.Team, error) {
	query := `
		SELECT id, name, size, sprint_duration_weeks, created_at, updated_at
		FROM teams
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)

	team, err := scanTeam(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("team not found: %s", id)
		}
		return nil, fmt.Errorf("failed to scan team: %w", err)
	}

	return team, nil
}

// FindAll возвращает все команды
func (r *PostgresTeamRepository) FindAll(ctx context.Context) ([]*entity.Team, error) {
	query := `
		SELECT id, name, size, sprint_duration_weeks, created_at, updated_at
		FROM teams
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []*entity.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	return teams, nil
}

func scanTeam(row interface {
	Scan(dest ...interface{}) error
}) (*entity.Team, error) {
	var (
		id, name            string
		size, durationWeeks int
		createdAt           time.Time
		updatedAt           time.Time
	)

	if err := row.Scan(&id, &name, &size, &durationWeeks, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return entity.ReconstructTeam(id, name, size, durationWeeks, createdAt, updatedAt), nil
}
