package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/usecase"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/entity"
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/valueobject"
)

// RoleHeader — advisory-заголовок с клиентской ролью пользователя.
// Авторизация запросов выполняется bearer token middleware; роль
// управляет только разрешенными операциями dashboard.
const RoleHeader = "X-Dashboard-Role"

// capabilityFromRequest извлекает capability из заголовка роли.
// Отсутствующий или неизвестный заголовок дает права scrum_master.
func capabilityFromRequest(r *http.Request) valueobject.Capability {
	role := valueobject.DashboardRole(strings.TrimSpace(r.Header.Get(RoleHeader)))
	return valueobject.CapabilityFor(role)
}

// writeUseCaseError транслирует ошибки use case в HTTP статусы
func writeUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		http.Error(w, "Operation is not permitted for this role", http.StatusForbidden)
	case errors.Is(err, entity.ErrAlreadyApproved):
		http.Error(w, "Metric is already approved", http.StatusConflict)
	case strings.Contains(err.Error(), "not found"):
		http.Error(w, "Not found", http.StatusNotFound)
	case isValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// isValidationError распознает ошибки доменной валидации по тексту.
// Доменные конструкторы возвращают plain ошибки, поэтому тип
// тут недоступен.
func isValidationError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{"required", "cannot be", "must ", "must not", "invalid", "unsupported"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
