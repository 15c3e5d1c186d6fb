package ai

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain"
)

// systemPrompt común a los adaptadores LLM. El mensaje de usuario lleva la consulta y los estados.
const systemPrompt = `Eres un analista electoral de India. Traduces consultas en lenguaje natural sobre
circunscripciones a un filtro estructurado.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown, sin bloques de código` + " ```json" + `) con esta estructura exacta:
{
  "state": "<nombre exacto de uno de los estados listados, o cadena vacía si la consulta no nombra ninguno>",
  "anti_incumbency_above": <número entre 0 y 100>
}

Reglas:
- state: copia el nombre tal cual aparece en la lista de estados conocidos.
- anti_incumbency_above: umbral estricto (>) de anti-incumbencia; si la consulta no da uno, usa 70.
- No incluyas texto fuera del JSON. Solo el objeto JSON.`

// filterPayload JSON que esperamos recibir del modelo.
// Sin anti_incumbency_above se aplica DefaultAntiIncumbencyThreshold.
type filterPayload struct {
	State               string   `json:"state"`
	AntiIncumbencyAbove *float64 `json:"anti_incumbency_above"`
}

func userMessage(query string, states []string) string {
	return fmt.Sprintf("Estados conocidos: %s\nConsulta: %s", strings.Join(states, ", "), query)
}

// toFilter valida la salida del modelo contra los estados conocidos.
func toFilter(p filterPayload, states []string, interpreter string) (*dto.SearchFilterDTO, error) {
	state := ""
	if name := strings.TrimSpace(p.State); name != "" {
		for _, s := range states {
			if strings.EqualFold(s, name) {
				state = s
				break
			}
		}
		if state == "" {
			return nil, fmt.Errorf("AI: estado desconocido %q", name)
		}
	}
	threshold := DefaultAntiIncumbencyThreshold
	if p.AntiIncumbencyAbove != nil {
		var err error
		if threshold, err = validThreshold(decimal.NewFromFloat(*p.AntiIncumbencyAbove)); err != nil {
			return nil, err
		}
	}
	return &dto.SearchFilterDTO{State: state, AntiIncumbencyAbove: threshold, Interpreter: interpreter}, nil
}

// rejectUpperBound rechaza consultas con cota superior ("< 30", "below 30"):
// el filtro solo admite un umbral mínimo de anti-incumbencia.
func rejectUpperBound(query string) error {
	if m := upperBoundRe.FindString(fold(query)); m != "" {
		return fmt.Errorf("%w: solo se admite un umbral mínimo (>), no %q", domain.ErrInvalidInput, m)
	}
	return nil
}

func validThreshold(d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, fmt.Errorf("%w: umbral de anti-incumbencia %s fuera de [0, 100]", domain.ErrInvalidInput, d)
	}
	return d, nil
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo envuelva en markdown.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// extractJSON extrae el primer objeto JSON de un texto libre:
// primero quita bloques markdown y luego busca el primer { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
