package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	"github.com/dreschagin/scrum-health-dashboard/internal/application/port"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/repository"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/service"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// ExportResult представляет сгенерированный файл экспорта
type ExportResult struct {
	Data        []byte
	Filename    string
	ContentType string
	ArchiveURL  string
}

// ExportHealthMetricsUseCase выгружает классифицированные метрики
// в CSV или JSON; копия опционально архивируется в object storage
type ExportHealthMetricsUseCase struct {
	teams      repository.TeamRepository
	metrics    repository.HealthMetricRepository
	configs    repository.MetricConfigRepository
	classifier *service.ThresholdClassifier
	encoders   map[string]port.ExportEncoder
	archive    port.ExportArchive
	logger     *logger.Logger
}

// NewExportHealthMetricsUseCase создает новый use case
func NewExportHealthMetricsUseCase(
	teams repository.TeamRepository,
	metrics repository.HealthMetricRepository,
	configs repository.MetricConfigRepository,
	classifier *service.ThresholdClassifier,
	encoders map[string]port.ExportEncoder,
	archive port.ExportArchive,
	logger *logger.Logger,
) *ExportHealthMetricsUseCase {
	return &ExportHealthMetricsUseCase{
		teams:      teams,
		metrics:    metrics,
		configs:    configs,
		classifier: classifier,
		encoders:   encoders,
		archive:    archive,
		logger:     logger,
	}
}

// Execute выгружает метрики. Пустой teamID означает все команды.
func (uc *ExportHealthMetricsUseCase) Execute(ctx context.Context, teamID, format string) (*ExportResult, error) {
	encoder, ok := uc.encoders[format]
	if !ok {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	rows, err := uc.collectRows(ctx, teamID)
	if err != nil {
		return nil, err
	}

	data, err := encoder.Encode(rows)
	if err != nil {
		uc.logger.Error("Failed to encode export", err, "format", format)
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	filename := fmt.Sprintf("health-metrics-%s.%s", time.Now().Format("2006-01-02"), encoder.FileExtension())

	result := &ExportResult{
		Data:        data,
		Filename:    filename,
		ContentType: encoder.ContentType(),
	}

	// Архивирование best-effort: отказ хранилища не ломает выгрузку
	if uc.archive != nil {
		url, err := uc.archive.Put(ctx, filename, encoder.ContentType(), data)
		if err != nil {
			uc.logger.Warn("Failed to archive export", "filename", filename, "error", err)
		} else {
			result.ArchiveURL = url
		}
	}

	uc.logger.Info("Health metrics exported", "format", format, "rows", len(rows), "filename", filename)

	return result, nil
}

// collectRows собирает классифицированные строки экспорта
func (uc *ExportHealthMetricsUseCase) collectRows(ctx context.Context, teamID string) ([]*dto.ExportRowDTO, error) {
	teams, err := uc.teams.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID()] = t.Name()
	}

	var all []*entity.HealthMetric
	if teamID != "" {
		all, err = uc.metrics.FindByTeam(ctx, teamID, "")
	} else {
		all, err = uc.metrics.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metrics: %w", err)
	}

	configCache := make(map[string]*entity.MetricConfig)

	rows := make([]*dto.ExportRowDTO, 0, len(all))
	for _, m := range all {
		key := m.TeamID() + ":" + m.MetricName()
		config, ok := configCache[key]
		if !ok {
			config, err = uc.configs.FindByTeamAndMetric(ctx, m.TeamID(), m.MetricName())
			if err != nil {
				return nil, fmt.Errorf("failed to look up config: %w", err)
			}
			configCache[key] = config
		}

		actual, effective := uc.classifier.EffectiveColor(m, config)

		rows = append(rows, &dto.ExportRowDTO{
			TeamName:        teamNames[m.TeamID()],
			SprintNumber:    m.SprintNumber(),
			MetricName:      m.MetricName(),
			Value:           m.Reading().String(),
			ActualColor:     actual.Color().String(),
			EffectiveColor:  effective.String(),
			Approved:        m.IsApproved(),
			ApprovedBy:      m.ApprovedBy(),
			ApprovalComment: m.ApprovalComment(),
		})
	}

	return rows, nil
}
