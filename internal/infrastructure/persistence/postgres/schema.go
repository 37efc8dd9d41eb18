package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements создают таблицы при старте, если их еще нет
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		size INTEGER NOT NULL,
		sprint_duration_weeks INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS metric_configs (
		id UUID PRIMARY KEY,
		team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		metric_name TEXT NOT NULL,
		green_threshold DOUBLE PRECISION NOT NULL,
		yellow_threshold DOUBLE PRECISION NOT NULL,
		red_threshold DOUBLE PRECISION NOT NULL,
		is_higher_better BOOLEAN NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (team_id, metric_name)
	)`,
	`CREATE TABLE IF NOT EXISTS health_metrics (
		id UUID PRIMARY KEY,
		team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		metric_name TEXT NOT NULL,
		sprint_number TEXT NOT NULL,
		value_kind TEXT NOT NULL,
		value_number DOUBLE PRECISION,
		value_text TEXT,
		po_approved BOOLEAN NOT NULL DEFAULT FALSE,
		po_approved_by TEXT NOT NULL DEFAULT '',
		po_approval_comment TEXT NOT NULL DEFAULT '',
		po_approved_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (team_id, metric_name, sprint_number)
	)`,
	`CREATE TABLE IF NOT EXISTS retro_boards (
		id UUID PRIMARY KEY,
		team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		sprint_number TEXT NOT NULL,
		title TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS retro_items (
		id UUID PRIMARY KEY,
		board_id UUID NOT NULL REFERENCES retro_boards(id) ON DELETE CASCADE,
		category TEXT NOT NULL,
		content TEXT NOT NULL,
		author_name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sprint_calculations (
		id UUID PRIMARY KEY,
		team_id UUID NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		form JSONB NOT NULL,
		result JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_health_metrics_team ON health_metrics (team_id, sprint_number)`,
	`CREATE INDEX IF NOT EXISTS idx_sprint_calculations_team ON sprint_calculations (team_id, created_at DESC)`,
}

// EnsureSchema создает схему БД, если она отсутствует
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
