package handler

import (
	"fmt"
	"net/http"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/usecase"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// ExportHandler обрабатывает выгрузку метрик здоровья
type ExportHandler struct {
	exportUC *usecase.ExportHealthMetricsUseCase
	logger   *logger.Logger
}

// NewExportHandler создает новый handler
func NewExportHandler(exportUC *usecase.ExportHealthMetricsUseCase, logger *logger.Logger) *ExportHandler {
	return &ExportHandler{
		exportUC: exportUC,
		logger:   logger,
	}
}

// Export отдает файл экспорта. Параметры: format=csv|json, team_id опционален.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	result, err := h.exportUC.Execute(r.Context(), r.URL.Query().Get("team_id"), format)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	if result.ArchiveURL != "" {
		w.Header().Set("X-Archive-Location", result.ArchiveURL)
	}
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Data); err != nil {
		h.logger.Error("Failed to write export response", err)
	}
}
