package dto

// ExportRowDTO представляет одну строку экспорта метрик здоровья
type ExportRowDTO struct {
	TeamName        string `json:"team_name"`
	SprintNumber    string `json:"sprint_number"`
	MetricName      string `json:"metric_name"`
	Value           string `json:"value"`
	ActualColor     string `json:"actual_color"`
	EffectiveColor  string `json:"effective_color"`
	Approved        bool   `json:"approved"`
	ApprovedBy      string `json:"approved_by,omitempty"`
	ApprovalComment string `json:"approval_comment,omitempty"`
}
