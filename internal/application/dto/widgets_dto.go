package dto

import "github.com/shopspring/decimal"

// ── Political Weather Overview ───────────────────────────────────────────────

// WeatherOverviewDTO cuenta regresiva, sentimiento nacional y radar de temas.
type WeatherOverviewDTO struct {
	Countdown         string             `json:"countdown"` // ej: "30 days to Lok Sabha 2029"
	CampaignProgress  float64            `json:"campaign_progress"`
	NationalSentiment string             `json:"national_sentiment"`
	IssueRadar        []IssueSalienceDTO `json:"issue_radar"`
}

// IssueSalienceDTO punto del radar de temas clave.
type IssueSalienceDTO struct {
	Issue    string  `json:"issue"`
	Salience float64 `json:"salience"` // [0, 1)
}

// ── Analytics Tiles ───────────────────────────────────────────────────────────

// AnalyticsTilesDTO KPIs agregados de las circunscripciones seguidas.
type AnalyticsTilesDTO struct {
	TrackedConstituencies int             `json:"tracked_constituencies"`
	AvgWinningProbability decimal.Decimal `json:"avg_winning_probability"`
	AvgAntiIncumbency     decimal.Decimal `json:"avg_anti_incumbency"`
	AvgSentimentIndex     decimal.Decimal `json:"avg_sentiment_index"`
}

// ── Campaign Management ──────────────────────────────────────────────────────

// CampaignDTO tracker de redes sociales + avance de operaciones de campo.
type CampaignDTO struct {
	SocialMediaTracker []float64 `json:"social_media_tracker"`
	FieldProgress      float64   `json:"field_progress"`
	CanvassingLabel    string    `json:"canvassing_label"` // "Canvassing Progress: 50%"
}

// ── Predictive Analytics ─────────────────────────────────────────────────────

// PredictionDTO salida del predictor. Si Fallback es true, Probability es el valor constante
// de respaldo y Error describe el fallo.
type PredictionDTO struct {
	Input       int     `json:"input"`
	Probability float64 `json:"probability"`
	Formatted   string  `json:"formatted"` // "73.11%"
	Fallback    bool    `json:"fallback"`
	Error       string  `json:"error,omitempty"`
}

// ── Reports ──────────────────────────────────────────────────────────────────

// ReportDTO descriptor de la sección de reportes.
type ReportDTO struct {
	Title       string `json:"title"`
	DownloadURL string `json:"download_url"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}
