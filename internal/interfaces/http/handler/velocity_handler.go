package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
	"github.com/dreschagin/scrum-health-dashboard/internal/application/usecase"
	"github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http/middleware"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// VelocityHandler обрабатывает API запросы проекции velocity
type VelocityHandler struct {
	projectUC *usecase.ProjectVelocityUseCase
	logger    *logger.Logger
}

// NewVelocityHandler создает новый handler
func NewVelocityHandler(projectUC *usecase.ProjectVelocityUseCase, logger *logger.Logger) *VelocityHandler {
	return &VelocityHandler{
		projectUC: projectUC,
		logger:    logger,
	}
}

// Calculate выполняет расчет без сохранения
func (h *VelocityHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var form dto.VelocityFormDTO
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.projectUC.Execute(r.Context(), form.ToForm())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, result)
}

// CalculateAndSave выполняет расчет и сохраняет его для команды
func (h *VelocityHandler) CalculateAndSave(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var form dto.VelocityFormDTO
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := h.projectUC.ExecuteAndSave(r.Context(), r.PathValue("id"), form.ToForm())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, saved)
}

// Export выполняет расчет и отдает результат файлом
func (h *VelocityHandler) Export(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var form dto.VelocityFormDTO
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.projectUC.Execute(r.Context(), form.ToForm())
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	payload := struct {
		GeneratedAt time.Time              `json:"generated_at"`
		Form        *dto.VelocityFormDTO   `json:"form"`
		Result      *dto.VelocityResultDTO `json:"result"`
	}{
		GeneratedAt: time.Now().UTC(),
		Form:        &form,
		Result:      result,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		h.logger.Error("Failed to encode velocity export", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("velocity-projection-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		h.logger.Error("Failed to write velocity export response", err)
	}
}

// History возвращает сохраненные расчеты команды
func (h *VelocityHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	history, err := h.projectUC.ExecuteHistory(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, history)
}
