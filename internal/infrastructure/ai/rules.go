package ai

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/application/ports"
)

// Verificar en tiempo de compilación que RuleInterpreter implementa QueryInterpreter.
var _ ports.QueryInterpreter = (*RuleInterpreter)(nil)

// DefaultAntiIncumbencyThreshold umbral cuando la consulta no trae uno.
var DefaultAntiIncumbencyThreshold = decimal.NewFromInt(70)

var (
	// "anti-incumbency > 70", "anti incumbency above 65.5", "anti-incumbency score over 40"
	antiIncumbencyRe = regexp.MustCompile(`anti[\s_-]*incumbency(?:\s+score)?\s*(?:>|\babove\b|\bover\b|\bgreater than\b|\bmore than\b|\bexceeding\b)\s*(\d+(?:\.\d+)?)`)
	// cualquier "> n" suelto
	thresholdRe = regexp.MustCompile(`(?:>|\babove\b|\bover\b)\s*(\d+(?:\.\d+)?)`)
	// "< 30", "below 30", "under 30", "less than 30"
	upperBoundRe = regexp.MustCompile(`(?:<|\bbelow\b|\bunder\b|\bless than\b|\bfewer than\b)\s*\d`)
)

// RuleInterpreter intérprete determinista: busca un estado conocido y un umbral numérico.
// No hace llamadas externas; es el respaldo cuando el LLM falla o no está configurado.
type RuleInterpreter struct{}

// NewRuleInterpreter construye el intérprete por reglas.
func NewRuleInterpreter() *RuleInterpreter { return &RuleInterpreter{} }

// InterpretQuery elige el estado conocido de nombre más largo contenido en la consulta
// (vacío = todos) y el umbral de anti-incumbencia (por defecto 70).
func (r *RuleInterpreter) InterpretQuery(ctx context.Context, query string, states []string) (*dto.SearchFilterDTO, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := rejectUpperBound(query); err != nil {
		return nil, err
	}
	q := fold(query)

	state := ""
	for _, s := range states {
		if s == "" || !strings.Contains(q, fold(s)) {
			continue
		}
		if utf8.RuneCountInString(s) > utf8.RuneCountInString(state) {
			state = s
		}
	}

	threshold := DefaultAntiIncumbencyThreshold
	m := antiIncumbencyRe.FindStringSubmatch(q)
	if m == nil {
		m = thresholdRe.FindStringSubmatch(q)
	}
	if m != nil {
		d, err := decimal.NewFromString(m[1])
		if err != nil {
			return nil, err
		}
		if threshold, err = validThreshold(d); err != nil {
			return nil, err
		}
	}
	return &dto.SearchFilterDTO{State: state, AntiIncumbencyAbove: threshold, Interpreter: "rules"}, nil
}

// fold normaliza (NFKC), pliega mayúsculas y colapsa espacios.
func fold(s string) string {
	s = cases.Fold().String(norm.NFKC.String(s))
	return strings.Join(strings.Fields(s), " ")
}
