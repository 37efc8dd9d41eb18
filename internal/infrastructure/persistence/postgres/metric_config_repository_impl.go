package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	_ "github.com/lib/pq"
)

// PostgresMetricConfigRepository реализует repository.MetricConfigRepository
// для PostgreSQL
type PostgresMetricConfigRepository struct {
	db *sql.DB
}

// NewPostgresMetricConfigRepository создает новый PostgreSQL repository
func NewPostgresMetricConfigRepository(db *sql.DB) *PostgresMetricConfigRepository {
	return &PostgresMetricConfigRepository{
		db: db,
	}
}

// Save сохраняет новую конфигурацию
func (r *PostgresMetricConfigRepository) Save(ctx context.Context, config *entity.MetricConfig) error {
	query := `
		INSERT INTO metric_configs (id, team_id, metric_name, green_threshold, yellow_threshold, red_threshold, is_higher_better, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		config.ID(),
		config.TeamID(),
		config.MetricName(),
		config.GreenThreshold(),
		config.YellowThreshold(),
		config.RedThreshold(),
		config.IsHigherBetter(),
		config.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert metric config: %w", err)
	}

	return nil
}

// Update обновляет существующую конфигурацию
func (r *PostgresMetricConfigRepository) Update(ctx context.Context, config *entity.MetricConfig) error {
	query := `
		UPDATE metric_configs
		SET green_threshold = $2, yellow_threshold = $3, red_threshold = $4, is_higher_better = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		config.ID(),
		config.GreenThreshold(),
		config.YellowThreshold(),
		config.RedThreshold(),
		config.IsHigherBetter(),
		config.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to update metric config: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("metric config not found: %s", config.ID())
	}

	return nil
}

// FindByID находит конфигурацию по идентификатору
func (r *PostgresMetricConfigRepository) FindByID(ctx context.Context, id string) (*entity.MetricConfig, error) {
	query := `
		SELECT id, team_id, metric_name, green_threshold, yellow_threshold, red_threshold, is_higher_better, updated_at
		FROM metric_configs
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)

	config, err := scanMetricConfig(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("metric config not found: %s", id)
		}
		return nil, fmt.Errorf("failed to scan metric config: %w", err)
	}

	return config, nil
}

// FindByTeam возвращает все конфигурации команды
func (r *PostgresMetricConfigRepository) FindByTeam(ctx context.Context, teamID string) ([]*entity.MetricConfig, error) {
	query := `
		SELECT id, team_id, metric_name, green_threshold, yellow_threshold, red_threshold, is_higher_better, updated_at
		FROM metric_configs
		WHERE team_id = $1
		ORDER BY metric_name
	`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query metric configs: %w", err)
	}
	defer rows.Close()

	var configs []*entity.MetricConfig
	for rows.Next() {
		config, err := scanMetricConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan metric config: %w", err)
		}
		configs = append(configs, config)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate metric configs: %w", err)
	}

	return configs, nil
}

// FindByTeamAndMetric находит конфигурацию по ключу (team, metric).
// Отсутствие конфигурации возвращается как (nil, nil).
func (r *PostgresMetricConfigRepository) FindByTeamAndMetric(ctx context.Context, teamID, metricName string) (*entity.MetricConfig, error) {
	query := `
		SELECT id, team_id, metric_name, green_threshold, yellow_threshold, red_threshold, is_higher_better, updated_at
		FROM metric_configs
		WHERE team_id = $1 AND metric_name = $2
	`

	row := r.db.QueryRowContext(ctx, query, teamID, metricName)

	config, err := scanMetricConfig(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan metric config: %w", err)
	}

	return config, nil
}

func scanMetricConfig(row interface {
	Scan(dest ...interface{}) error
}) (*entity.MetricConfig, error) {
	var (
		id, teamID, metricName string
		green, yellow, red     float64
		isHigherBetter         bool
		updatedAt              time.Time
	)

	if err := row.Scan(&id, &teamID, &metricName, &green, &yellow, &red, &isHigherBetter, &updatedAt); err != nil {
		return nil, err
	}

	return entity.ReconstructMetricConfig(id, teamID, metricName, green, yellow, red, isHigherBetter, updatedAt), nil
}
