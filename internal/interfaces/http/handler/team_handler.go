package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/usecase"
	"github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http/middleware"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// TeamHandler обрабатывает API запросы для команд
type TeamHandler struct {
	createTeamUC *usecase.CreateTeamUseCase
	updateTeamUC *usecase.UpdateTeamUseCase
	listTeamsUC  *usecase.ListTeamsUseCase
	logger       *logger.Logger
}

// NewTeamHandler создает новый handler
func NewTeamHandler(
	createTeamUC *usecase.CreateTeamUseCase,
	updateTeamUC *usecase.UpdateTeamUseCase,
	listTeamsUC *usecase.ListTeamsUseCase,
	logger *logger.Logger,
) *TeamHandler {
	return &TeamHandler{
		createTeamUC: createTeamUC,
		updateTeamUC: updateTeamUC,
		listTeamsUC:  listTeamsUC,
		logger:       logger,
	}
}

type createTeamRequest struct {
	Name                string `json:"name"`
	Size                int    `json:"size"`
	SprintDurationWeeks int    `json:"sprint_duration_weeks"`
}

type updateTeamRequest struct {
	Name                *string `json:"name"`
	Size                *int    `json:"size"`
	SprintDurationWeeks *int    `json:"sprint_duration_weeks"`
}

// List возвращает все команды
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.listTeamsUC.Execute(r.Context())
	if err != nil {
		h.logger.Error("Failed to list teams", err)
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, teams)
}

// Create создает новую команду
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.createTeamUC.Execute(r.Context(), capabilityFromRequest(r), req.Name, req.Size, req.SprintDurationWeeks)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, team)
}

// Get возвращает одну команду
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	team, err := h.listTeamsUC.ExecuteByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, team)
}

// Update обновляет атрибуты команды
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req updateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	team, err := h.updateTeamUC.Execute(r.Context(), capabilityFromRequest(r), r.PathValue("id"), usecase.UpdateTeamInput{
		Name:                req.Name,
		Size:                req.Size,
		SprintDurationWeeks: req.SprintDurationWeeks,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, team)
}
