package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bharat-chakra/internal/domain"
)

func TestAnthropicInterpreter_RespuestaValida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Messages[0].Content, "Uttar Pradesh")

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"` +
			"```json\\n{\\\"state\\\":\\\"Maharashtra\\\",\\\"anti_incumbency_above\\\":50}\\n```" + `"}]}`))
	}))
	defer srv.Close()

	in := NewAnthropicInterpreter("k", "m")
	in.url = srv.URL
	f, err := in.InterpretQuery(context.Background(), "risky seats in maharashtra", knownStates)
	require.NoError(t, err)
	assert.Equal(t, "Maharashtra", f.State)
	assert.True(t, f.AntiIncumbencyAbove.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "anthropic", f.Interpreter)
}

func TestAnthropicInterpreter_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	in := NewAnthropicInterpreter("k", "m")
	in.url = srv.URL
	_, err := in.InterpretQuery(context.Background(), "q", knownStates)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "rate_limit_error"))
}

func TestAnthropicInterpreter_SinAPIKey(t *testing.T) {
	_, err := NewAnthropicInterpreter("", "m").InterpretQuery(context.Background(), "q", knownStates)
	assert.Error(t, err)
}

func TestGeminiInterpreter_RespuestaValida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gemini-x:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"state\":\"\",\"anti_incumbency_above\":20}"}]}}]}`))
	}))
	defer srv.Close()

	in := NewGeminiInterpreter("k", "gemini-x")
	in.baseURL = srv.URL
	f, err := in.InterpretQuery(context.Background(), "anything above 20", knownStates)
	require.NoError(t, err)
	assert.Empty(t, f.State)
	assert.True(t, f.AntiIncumbencyAbove.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "gemini", f.Interpreter)
}

func TestGeminiInterpreter_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"bad key"}}`))
	}))
	defer srv.Close()

	in := NewGeminiInterpreter("k", "m")
	in.baseURL = srv.URL
	_, err := in.InterpretQuery(context.Background(), "q", knownStates)
	assert.ErrorContains(t, err, "bad key")
}

// Si el modelo omite anti_incumbency_above se aplica el umbral por defecto (70), no 0.
func TestAnthropicInterpreter_SinUmbralUsaDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{\"state\":\"Maharashtra\"}"}]}`))
	}))
	defer srv.Close()

	in := NewAnthropicInterpreter("k", "m")
	in.url = srv.URL
	f, err := in.InterpretQuery(context.Background(), "risky seats in maharashtra", knownStates)
	require.NoError(t, err)
	assert.Equal(t, "Maharashtra", f.State)
	assert.True(t, f.AntiIncumbencyAbove.Equal(DefaultAntiIncumbencyThreshold), f.AntiIncumbencyAbove.String())
}

// Una cota superior se rechaza antes de llamar al modelo.
func TestGeminiInterpreter_CotaSuperiorSinLlamada(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"anti_incumbency_above\":30}"}]}}]}`))
	}))
	defer srv.Close()

	in := NewGeminiInterpreter("k", "m")
	in.baseURL = srv.URL
	_, err := in.InterpretQuery(context.Background(), "anti-incumbency below 30", knownStates)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, calls)
}
