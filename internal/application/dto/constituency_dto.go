package dto

import "github.com/shopspring/decimal"

// ConstituencyDTO fila de la base de conocimiento.
type ConstituencyDTO struct {
	State               string            `json:"state"`
	PC                  string            `json:"pc"`
	WinningProbability  decimal.Decimal   `json:"winning_probability"`
	AntiIncumbencyScore decimal.Decimal   `json:"anti_incumbency_score"`
	SentimentIndex      decimal.Decimal   `json:"sentiment_index"`
	Demographics        map[string]string `json:"demographics"`
}

// DeepDiveDTO sección Constituency Deep-Dive. Profile es nil si no hay estado seleccionado.
type DeepDiveDTO struct {
	SelectedState string      `json:"selected_state,omitempty"`
	Profile       *ProfileDTO `json:"profile"`
}

// ProfileDTO perfil de la circunscripción seleccionada.
type ProfileDTO struct {
	PC                string            `json:"pc"`
	State             string            `json:"state"`
	Demographics      map[string]string `json:"demographics"`
	RiskScore         decimal.Decimal   `json:"risk_score"` // anti-incumbencia
	CandidateStrength int               `json:"candidate_strength"`
	SimulatedWin      PredictionDTO     `json:"simulated_win"`
	SentimentMatrix   MatrixDTO         `json:"sentiment_matrix"`
}

// MatrixDTO tabla con etiquetas de filas y columnas.
type MatrixDTO struct {
	Rows    []string    `json:"rows"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// SearchFilterDTO filtro interpretado a partir de la consulta en lenguaje natural.
type SearchFilterDTO struct {
	State               string          `json:"state,omitempty"`
	AntiIncumbencyAbove decimal.Decimal `json:"anti_incumbency_above"`
	Interpreter         string          `json:"interpreter"` // "rules" | "anthropic"
}

// SearchResultDTO sección Deep Search.
type SearchResultDTO struct {
	Query   string            `json:"query"`
	Filter  SearchFilterDTO   `json:"filter"`
	Results []ConstituencyDTO `json:"results"`
	Summary string            `json:"summary"`
}
