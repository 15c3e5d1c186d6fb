package dto

// DashboardParams parámetros de GET /api/dashboard (los controles de cada widget).
type DashboardParams struct {
	KPI               string // coloreado del mapa
	State             string // estado seleccionado con "Drill Down"
	CandidateStrength *int   // 0–100, default 50
	Query             string // búsqueda en lenguaje natural
	Spending          *int   // 0–100, default 50
}

// SectionDTO una sección compuesta del dashboard.
type SectionDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	MinLevel int    `json:"min_level"`
	Payload  any    `json:"payload"`
}

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	Title    string       `json:"title"`
	Session  SessionDTO   `json:"session"`
	Sections []SectionDTO `json:"sections"`
}

// SectionRequirementDTO fila de la tabla de secciones.
type SectionRequirementDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	MinLevel int    `json:"min_level"`
	Visible  bool   `json:"visible"`
}
