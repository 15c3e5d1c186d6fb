package ai

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bharat-chakra/internal/domain"
)

var knownStates = []string{"Uttar Pradesh", "Maharashtra"}

func TestRuleInterpreter_ConsultaPorDefecto(t *testing.T) {
	f, err := NewRuleInterpreter().InterpretQuery(context.Background(),
		"Show ACs in Uttar Pradesh with anti-incumbency > 70", knownStates)
	require.NoError(t, err)
	assert.Equal(t, "Uttar Pradesh", f.State)
	assert.True(t, f.AntiIncumbencyAbove.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, "rules", f.Interpreter)
}

func TestRuleInterpreter_Variantes(t *testing.T) {
	cases := []struct {
		query     string
		state     string
		threshold string
	}{
		{"constituencies in MAHARASHTRA with anti incumbency above 45.5", "Maharashtra", "45.5"},
		{"anti-incumbency score over 30", "", "30"},
		{"everything in  uttar   pradesh", "Uttar Pradesh", "70"},
		{"seats > 12", "", "12"},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			f, err := NewRuleInterpreter().InterpretQuery(context.Background(), tc.query, knownStates)
			require.NoError(t, err)
			assert.Equal(t, tc.state, f.State)
			assert.True(t, f.AntiIncumbencyAbove.Equal(decimal.RequireFromString(tc.threshold)), f.AntiIncumbencyAbove.String())
		})
	}
}

func TestRuleInterpreter_EstadoMasLargo(t *testing.T) {
	f, err := NewRuleInterpreter().InterpretQuery(context.Background(), "west bengal", []string{"Bengal", "West Bengal"})
	require.NoError(t, err)
	assert.Equal(t, "West Bengal", f.State)
}

func TestRuleInterpreter_UmbralFueraDeRango(t *testing.T) {
	_, err := NewRuleInterpreter().InterpretQuery(context.Background(), "anti-incumbency > 150", knownStates)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"state":""}`, extractJSON("```json\n{\"state\":\"\"}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON(`Aquí está: {"a":1} listo`))
	assert.Empty(t, extractJSON("sin json"))
}

func TestToFilter(t *testing.T) {
	f, err := toFilter(filterPayload{State: "uttar pradesh", AntiIncumbencyAbove: float64Ptr(55)}, knownStates, "x")
	require.NoError(t, err)
	assert.Equal(t, "Uttar Pradesh", f.State)
	assert.True(t, f.AntiIncumbencyAbove.Equal(decimal.NewFromInt(55)))

	_, err = toFilter(filterPayload{State: "Goa"}, knownStates, "x")
	assert.Error(t, err)

	_, err = toFilter(filterPayload{AntiIncumbencyAbove: float64Ptr(-1)}, knownStates, "x")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestToFilter_SinUmbralUsaDefault(t *testing.T) {
	f, err := toFilter(filterPayload{State: "Maharashtra"}, knownStates, "x")
	require.NoError(t, err)
	assert.True(t, f.AntiIncumbencyAbove.Equal(DefaultAntiIncumbencyThreshold), f.AntiIncumbencyAbove.String())

	// un 0 explícito sí se respeta
	f, err = toFilter(filterPayload{AntiIncumbencyAbove: float64Ptr(0)}, knownStates, "x")
	require.NoError(t, err)
	assert.True(t, f.AntiIncumbencyAbove.IsZero())
}

// El filtro solo tiene umbral mínimo: una cota superior no puede invertirse en silencio.
func TestRuleInterpreter_CotaSuperiorRechazada(t *testing.T) {
	for _, q := range []string{
		"Show ACs with anti-incumbency < 30",
		"Show ACs with anti-incumbency below 30",
		"anti incumbency under 25 in Maharashtra",
		"seats with anti-incumbency less than 40",
	} {
		t.Run(q, func(t *testing.T) {
			_, err := NewRuleInterpreter().InterpretQuery(context.Background(), q, knownStates)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Las palabras clave solo cuentan como palabra completa ("turnover" no es "over").
func TestRuleInterpreter_PalabraCompleta(t *testing.T) {
	cases := map[string]string{
		"Maharashtra seats with turnover 20 crore": "70",
		"constituencies whose takeover 15 failed":  "70",
		"anti-incumbency over 35":                  "35",
	}
	for q, want := range cases {
		t.Run(q, func(t *testing.T) {
			f, err := NewRuleInterpreter().InterpretQuery(context.Background(), q, knownStates)
			require.NoError(t, err)
			assert.True(t, f.AntiIncumbencyAbove.Equal(decimal.RequireFromString(want)), f.AntiIncumbencyAbove.String())
		})
	}
}

func float64Ptr(f float64) *float64 { return &f }
