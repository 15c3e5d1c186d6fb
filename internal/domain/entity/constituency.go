package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bharat-chakra/internal/domain"
)

// KPI indicador usado para colorear el mapa.
type KPI string

// KPIs disponibles (los nombres coinciden con las columnas de la base de conocimiento).
const (
	KPIWinningProbability KPI = "Winning_Probability"
	KPIAntiIncumbency     KPI = "Anti_Incumbency_Score"
	KPISentimentIndex     KPI = "Sentiment_Index"
)

// KPIs lista los indicadores en el orden del selector.
func KPIs() []KPI {
	return []KPI{KPIWinningProbability, KPIAntiIncumbency, KPISentimentIndex}
}

// ParseKPI valida el nombre del indicador. Vacío = Winning_Probability.
func ParseKPI(s string) (KPI, error) {
	if s == "" {
		return KPIWinningProbability, nil
	}
	for _, k := range KPIs() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownKPI, s)
}

// Point coordenada [longitud, latitud].
type Point [2]float64

// Constituency circunscripción parlamentaria (PC) de la base de conocimiento simulada.
type Constituency struct {
	ID                  string
	State               string
	PC                  string
	WinningProbability  decimal.Decimal // porcentaje 0–100
	AntiIncumbencyScore decimal.Decimal // 0–100
	SentimentIndex      decimal.Decimal // 0–1
	Demographics        map[string]string
	Boundary            []Point // anillo exterior, sin repetir el primer punto
}

// KPIValue devuelve el valor del indicador pedido.
func (c *Constituency) KPIValue(k KPI) (decimal.Decimal, error) {
	switch k {
	case KPIWinningProbability:
		return c.WinningProbability, nil
	case KPIAntiIncumbency:
		return c.AntiIncumbencyScore, nil
	case KPISentimentIndex:
		return c.SentimentIndex, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrUnknownKPI, k)
	}
}

// ConstituencyFilter criterios de la búsqueda profunda.
// State vacío = todos los estados. AntiIncumbencyAbove es estricto (>).
type ConstituencyFilter struct {
	State               string
	AntiIncumbencyAbove decimal.Decimal
}
