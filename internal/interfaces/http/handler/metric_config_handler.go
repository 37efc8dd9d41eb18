package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/usecase"
	"github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http/middleware"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// MetricConfigHandler обрабатывает API запросы для конфигураций порогов
type MetricConfigHandler struct {
	configureUC *usecase.ConfigureThresholdsUseCase
	logger      *logger.Logger
}

// NewMetricConfigHandler создает новый handler
func NewMetricConfigHandler(configureUC *usecase.ConfigureThresholdsUseCase, logger *logger.Logger) *MetricConfigHandler {
	return &MetricConfigHandler{
		configureUC: configureUC,
		logger:      logger,
	}
}

type thresholdRequest struct {
	MetricName      string  `json:"metric_name"`
	GreenThreshold  float64 `json:"green_threshold"`
	YellowThreshold float64 `json:"yellow_threshold"`
	RedThreshold    float64 `json:"red_threshold"`
	IsHigherBetter  bool    `json:"is_higher_better"`
}

// List возвращает конфигурации команды
func (h *MetricConfigHandler) List(w http.ResponseWriter, r *http.Request) {
	configs, err := h.configureUC.ExecuteList(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, configs)
}

// Upsert создает или обновляет конфигурацию порогов метрики
func (h *MetricConfigHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req thresholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.MetricName == "" {
		http.Error(w, "metric_name is required", http.StatusBadRequest)
		return
	}

	config, err := h.configureUC.Execute(r.Context(), capabilityFromRequest(r), r.PathValue("id"), usecase.ThresholdInput{
		MetricName:      req.MetricName,
		GreenThreshold:  req.GreenThreshold,
		YellowThreshold: req.YellowThreshold,
		RedThreshold:    req.RedThreshold,
		IsHigherBetter:  req.IsHigherBetter,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, config)
}
