package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/usecase"
	"github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http/middleware"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// HealthMetricHandler обрабатывает API запросы для метрик здоровья
type HealthMetricHandler struct {
	recordUC     *usecase.RecordHealthMetricUseCase
	approveUC    *usecase.ApproveHealthMetricUseCase
	teamHealthUC *usecase.GetTeamHealthUseCase
	redMetricsUC *usecase.ListRedMetricsUseCase
	logger       *logger.Logger
}

// NewHealthMetricHandler создает новый handler
func NewHealthMetricHandler(
	recordUC *usecase.RecordHealthMetricUseCase,
	approveUC *usecase.ApproveHealthMetricUseCase,
	teamHealthUC *usecase.GetTeamHealthUseCase,
	redMetricsUC *usecase.ListRedMetricsUseCase,
	logger *logger.Logger,
) *HealthMetricHandler {
	return &HealthMetricHandler{
		recordUC:     recordUC,
		approveUC:    approveUC,
		teamHealthUC: teamHealthUC,
		redMetricsUC: redMetricsUC,
		logger:       logger,
	}
}

type recordMetricRequest struct {
	MetricName   string `json:"metric_name"`
	SprintNumber string `json:"sprint_number"`
	Value        string `json:"value"`
}

type approveMetricRequest struct {
	ApprovedBy string `json:"approved_by"`
	Comment    string `json:"comment"`
}

// Record записывает значение метрики за спринт
func (h *HealthMetricHandler) Record(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req recordMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	metric, err := h.recordUC.Execute(r.Context(), capabilityFromRequest(r), r.PathValue("id"), req.MetricName, req.SprintNumber, req.Value)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, metric)
}

// Approve выполняет PO-approval записи метрики
func (h *HealthMetricHandler) Approve(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req approveMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	metric, err := h.approveUC.Execute(r.Context(), capabilityFromRequest(r), r.PathValue("id"), req.ApprovedBy, req.Comment)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, metric)
}

// TeamHealth возвращает классифицированный снимок здоровья команды
func (h *HealthMetricHandler) TeamHealth(w http.ResponseWriter, r *http.Request) {
	sprint := r.URL.Query().Get("sprint")

	snapshot, err := h.teamHealthUC.Execute(r.Context(), r.PathValue("id"), sprint)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, snapshot)
}

// RedMetrics возвращает красные метрики по всем командам
func (h *HealthMetricHandler) RedMetrics(w http.ResponseWriter, r *http.Request) {
	red, err := h.redMetricsUC.Execute(r.Context())
	if err != nil {
		h.logger.Error("Failed to list red metrics", err)
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, red)
}
