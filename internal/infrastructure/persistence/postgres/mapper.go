package postgres

import (
	"database/sql"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
)

// HealthMetricDBModel представляет запись метрики в БД
type HealthMetricDBModel struct {
	ID                string
	TeamID            string
	MetricName        string
	SprintNumber      string
	ValueKind         string
	ValueNumber       sql.NullFloat64
	ValueText         sql.NullString
	POApproved        bool
	POApprovedBy      string
	POApprovalComment string
	POApprovedAt      sql.NullTime
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ToHealthMetricDBModel конвертирует Domain Entity в DB Model
func ToHealthMetricDBModel(metric *entity.HealthMetric) *HealthMetricDBModel {
	model := &HealthMetricDBModel{
		ID:                metric.ID(),
		TeamID:            metric.TeamID(),
		MetricName:        metric.MetricName(),
		SprintNumber:      metric.SprintNumber(),
		ValueKind:         string(metric.Reading().Kind()),
		POApproved:        metric.IsApproved(),
		POApprovedBy:      metric.ApprovedBy(),
		POApprovalComment: metric.ApprovalComment(),
		CreatedAt:         metric.CreatedAt(),
		UpdatedAt:         metric.UpdatedAt(),
	}

	switch metric.Reading().Kind() {
	case valueobject.ReadingNumeric:
		model.ValueNumber = sql.NullFloat64{Float64: metric.Reading().Number(), Valid: true}
	case valueobject.ReadingText:
		model.ValueText = sql.NullString{String: metric.Reading().Text(), Valid: true}
	}

	if at := metric.ApprovedAt(); at != nil {
		model.POApprovedAt = sql.NullTime{Time: *at, Valid: true}
	}

	return model
}

// ToHealthMetricEntity конвертирует DB Model в Domain Entity
func ToHealthMetricEntity(model *HealthMetricDBModel) *entity.HealthMetric {
	var reading valueobject.MetricReading
	switch valueobject.ReadingKind(model.ValueKind) {
	case valueobject.ReadingNumeric:
		reading = valueobject.NewNumericReading(model.ValueNumber.Float64)
	case valueobject.ReadingText:
		reading = valueobject.NewTextReading(model.ValueText.String)
	default:
		reading = valueobject.EmptyReading()
	}

	var approvedAt *time.Time
	if model.POApprovedAt.Valid {
		t := model.POApprovedAt.Time
		approvedAt = &t
	}

	return entity.ReconstructHealthMetric(
		model.ID,
		model.TeamID,
		model.MetricName,
		model.SprintNumber,
		reading,
		model.POApproved,
		model.POApprovedBy,
		model.POApprovalComment,
		approvedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ScanHealthMetricRow сканирует строку БД в HealthMetricDBModel
func ScanHealthMetricRow(row interface {
	Scan(dest ...interface{}) error
}) (*HealthMetricDBModel, error) {
	var model HealthMetricDBModel

	err := row.Scan(
		&model.ID,
		&model.TeamID,
		&model.MetricName,
		&model.SprintNumber,
		&model.ValueKind,
		&model.ValueNumber,
		&model.ValueText,
		&model.POApproved,
		&model.POApprovedBy,
		&model.POApprovalComment,
		&model.POApprovedAt,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
