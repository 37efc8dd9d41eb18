package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	_ "github.com/lib/pq"
)

// PostgresSprintCalculationRepository реализует
// repository.SprintCalculationRepository для PostgreSQL.
// Форма и результат хранятся как JSONB: расчет читается и пишется
// целиком, реляционная декомпозиция тут ничего не дает.
type PostgresSprintCalculationRepository struct {
	db *sql.DB
}

// NewPostgresSprintCalculationRepository создает новый PostgreSQL repository
func NewPostgresSprintCalculationRepository(db *sql.DB) *PostgresSprintCalculationRepository {
	return &PostgresSprintCalculationRepository{
		db: db,
	}
}

// Save сохраняет расчет
func (r *PostgresSprintCalculationRepository) Save(ctx context.Context, calc *entity.SprintCalculation) error {
	formJSON, err := json.Marshal(calc.Form())
	if err != nil {
		return fmt.Errorf("failed to marshal form: %w", err)
	}
	resultJSON, err := json.Marshal(calc.Result())
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	query := `
		INSERT INTO sprint_calculations (id, team_id, form, result, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = r.db.ExecContext(ctx, query,
		calc.ID(),
		calc.TeamID(),
		formJSON,
		resultJSON,
		calc.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert sprint calculation: %w", err)
	}

	return nil
}

// FindByTeam возвращает сохраненные расчеты команды, новые первыми
func (r *PostgresSprintCalculationRepository) FindByTeam(ctx context.Context, teamID string, limit int) ([]*entity.SprintCalculation, error) {
	query := `
		SELECT id, team_id, form, result, created_at
		FROM sprint_calculations
		WHERE team_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, teamID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sprint calculations: %w", err)
	}
	defer rows.Close()

	var calcs []*entity.SprintCalculation
	for rows.Next() {
		var (
			id, tID              string
			formJSON, resultJSON []byte
			createdAt            time.Time
		)
		if err := rows.Scan(&id, &tID, &formJSON, &resultJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan sprint calculation: %w", err)
		}

		var form entity.SprintVelocityForm
		if err := json.Unmarshal(formJSON, &form); err != nil {
			return nil, fmt.Errorf("failed to unmarshal form: %w", err)
		}
		var result entity.VelocityCalculationResult
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}

		calcs = append(calcs, entity.ReconstructSprintCalculation(id, tID, form, result, createdAt))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sprint calculations: %w", err)
	}

	return calcs, nil
}
