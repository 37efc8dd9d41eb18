package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/usecase"
	"github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http/middleware"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"
)

// RetroHandler обрабатывает API запросы ретроспектив
type RetroHandler struct {
	retroUC *usecase.RetrospectiveUseCase
	logger  *logger.Logger
}

// NewRetroHandler создает новый handler
func NewRetroHandler(retroUC *usecase.RetrospectiveUseCase, logger *logger.Logger) *RetroHandler {
	return &RetroHandler{
		retroUC: retroUC,
		logger:  logger,
	}
}

type createBoardRequest struct {
	SprintNumber string `json:"sprint_number"`
	Title        string `json:"title"`
}

type addItemRequest struct {
	Category   string `json:"category"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
}

// CreateBoard создает ретро-доску команды
func (h *RetroHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req createBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	board, err := h.retroUC.CreateBoard(r.Context(), r.PathValue("id"), req.SprintNumber, req.Title)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, board)
}

// ListBoards возвращает доски команды
func (h *RetroHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.retroUC.ListBoards(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, boards)
}

// AddItem добавляет карточку на доску
func (h *RetroHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	item, err := h.retroUC.AddItem(r.Context(), r.PathValue("id"), req.Category, req.Content, req.AuthorName)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, item)
}

// ListItems возвращает карточки доски
func (h *RetroHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.retroUC.ListItems(r.Context(), r.PathValue("id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, items)
}

// DeleteItem удаляет карточку
func (h *RetroHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.retroUC.DeleteItem(r.Context(), r.PathValue("id")); err != nil {
		writeUseCaseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
