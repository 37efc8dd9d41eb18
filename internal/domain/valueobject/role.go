package valueobject

import "errors"

// MemberRole представляет специализацию участника команды (Value Object)
type MemberRole string

const (
	Frontend  MemberRole = "frontend"
	Backend   MemberRole = "backend"
	Fullstack MemberRole = "fullstack"
	QA        MemberRole = "qa"
	DevOps    MemberRole = "devops"
)

// Validate проверяет валидность роли участника
func (r MemberRole) Validate() error {
	switch r {
	case Frontend, Backend, Fullstack, QA, DevOps:
		return nil
	default:
		return errors.New("invalid member role")
	}
}

// String возвращает строковое представление роли
func (r MemberRole) String() string {
	return string(r)
}

// AllMemberRoles возвращает список всех допустимых ролей
func AllMemberRoles() []MemberRole {
	return []MemberRole{Frontend, Backend, Fullstack, QA, DevOps}
}

// DashboardRole представляет клиентскую роль пользователя dashboard.
// Это advisory-флаг с клиента, а не security boundary: реальная
// авторизация — отдельный bearer token middleware.
type DashboardRole string

const (
	Admin        DashboardRole = "admin"
	ProductOwner DashboardRole = "product_owner"
	ScrumMaster  DashboardRole = "scrum_master"
)

// Capability описывает, что разрешено текущей роли.
// Передается явно в use case вместо глобального состояния роли.
type Capability struct {
	Role DashboardRole

	CanEditConfig  bool
	CanEnterData   bool
	CanApprove     bool
	CanManageTeams bool
}

// CapabilityFor возвращает capability для роли.
// Неизвестная роль получает права scrum_master (data entry).
func CapabilityFor(role DashboardRole) Capability {
	switch role {
	case Admin:
		return Capability{
			Role:           Admin,
			CanEditConfig:  true,
			CanEnterData:   true,
			CanApprove:     true,
			CanManageTeams: true,
		}
	case ProductOwner:
		return Capability{
			Role:       ProductOwner,
			CanApprove: true,
		}
	default:
		return Capability{
			Role:         ScrumMaster,
			CanEnterData: true,
		}
	}
}
