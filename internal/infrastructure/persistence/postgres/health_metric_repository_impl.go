package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	_ "github.com/lib/pq"
)

const healthMetricColumns = `
	id, team_id, metric_name, sprint_number,
	value_kind, value_number, value_text,
	po_approved, po_approved_by, po_approval_comment, po_approved_at,
	created_at, updated_at
`

// PostgresHealthMetricRepository реализует repository.HealthMetricRepository
// для PostgreSQL
type PostgresHealthMetricRepository struct {
	db *sql.DB
}

// NewPostgresHealthMetricRepository создает новый PostgreSQL repository
func NewPostgresHealthMetricRepository(db *sql.DB) *PostgresHealthMetricRepository {
	return &PostgresHealthMetricRepository{
		db: db,
	}
}

// Save сохраняет новую запись метрики
func (r *PostgresHealthMetricRepository) Save(ctx context.Context, metric *entity.HealthMetric) error {
	model := ToHealthMetricDBModel(metric)

	query := `
		INSERT INTO health_metrics (` + healthMetricColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.ExecContext(ctx, query,
		model.ID,
		model.TeamID,
		model.MetricName,
		model.SprintNumber,
		model.ValueKind,
		model.ValueNumber,
		model.ValueText,
		model.POApproved,
		model.POApprovedBy,
		model.POApprovalComment,
		model.POApprovedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert health metric: %w", err)
	}

	return nil
}

// Update обновляет существующую запись
func (r *PostgresHealthMetricRepository) Update(ctx context.Context, metric *entity.HealthMetric) error {
	model := ToHealthMetricDBModel(metric)

	query := `
		UPDATE health_metrics
		SET value_kind = $2, value_number = $3, value_text = $4,
			po_approved = $5, po_approved_by = $6, po_approval_comment = $7, po_approved_at = $8,
			updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		model.ID,
		model.ValueKind,
		model.ValueNumber,
		model.ValueText,
		model.POApproved,
		model.POApprovedBy,
		model.POApprovalComment,
		model.POApprovedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update health metric: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("health metric not found: %s", model.ID)
	}

	return nil
}

// FindByID находит запись по идентификатору
func (r *PostgresHealthMetricRepository) FindByID(ctx context.Context, id string) (*entity.HealthMetric, error) {
	query := `SELECT ` + healthMetricColumns + ` FROM health_metrics WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	model, err := ScanHealthMetricRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("health metric not found: %s", id)
		}
		return nil, fmt.Errorf("failed to scan health metric: %w", err)
	}

	return ToHealthMetricEntity(model), nil
}

// FindByTeam находит записи команды, опционально фильтруя по спринту
func (r *PostgresHealthMetricRepository) FindByTeam(ctx context.Context, teamID, sprintNumber string) ([]*entity.HealthMetric, error) {
	query := `SELECT ` + healthMetricColumns + ` FROM health_metrics WHERE team_id = $1`
	args := []interface{}{teamID}

	if sprintNumber != "" {
		query += ` AND sprint_number = $2`
		args = append(args, sprintNumber)
	}
	query += ` ORDER BY metric_name, sprint_number`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query health metrics: %w", err)
	}
	defer rows.Close()

	return r.scanMetrics(rows)
}

// FindByKey находит запись по составному ключу (team, metric, sprint)
func (r *PostgresHealthMetricRepository) FindByKey(ctx context.Context, teamID, metricName, sprintNumber string) (*entity.HealthMetric, error) {
	query := `
		SELECT ` + healthMetricColumns + `
		FROM health_metrics
		WHERE team_id = $1 AND metric_name = $2 AND sprint_number = $3
	`

	row := r.db.QueryRowContext(ctx, query, teamID, metricName, sprintNumber)
	model, err := ScanHealthMetricRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			// Отсутствие записи по ключу — не ошибка, upsert создаст новую
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan health metric: %w", err)
	}

	return ToHealthMetricEntity(model), nil
}

// FindAll возвращает все записи всех команд
func (r *PostgresHealthMetricRepository) FindAll(ctx context.Context) ([]*entity.HealthMetric, error) {
	query := `SELECT ` + healthMetricColumns + ` FROM health_metrics ORDER BY team_id, metric_name, sprint_number`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query health metrics: %w", err)
	}
	defer rows.Close()

	return r.scanMetrics(rows)
}

func (r *PostgresHealthMetricRepository) scanMetrics(rows *sql.Rows) ([]*entity.HealthMetric, error) {
	var metrics []*entity.HealthMetric
	for rows.Next() {
		model, err := ScanHealthMetricRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan health metric: %w", err)
		}
		metrics = append(metrics, ToHealthMetricEntity(model))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate health metrics: %w", err)
	}

	return metrics, nil
}
