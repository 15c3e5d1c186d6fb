package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSQL_SemillaEmbebida(t *testing.T) {
	items, source, err := load(nil)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, writeSQL(&b, source, items))
	sql := b.String()

	assert.Contains(t, sql, "INSERT INTO constituencies")
	assert.Contains(t, sql, "'Uttar Pradesh', 'Varanasi', 75, 40, 0.6")
	assert.Contains(t, sql, "ON CONFLICT (state, pc) DO UPDATE")
	assert.Equal(t, 1, strings.Count(sql, ";"))
}

func TestWriteSQL_EscapaComillas(t *testing.T) {
	assert.Equal(t, "O''Brien", escapeSQL("O'Brien"))
}

// Un YAML en ISO-8859-1 se decodifica antes de parsear.
func TestLoad_Latin1(t *testing.T) {
	doc := "constituencies:\n" +
		"  - state: Tamil Nadu\n" +
		"    pc: Chennai Sur\xe9\n" +
		"    winning_probability: \"51\"\n" +
		"    anti_incumbency_score: \"62\"\n" +
		"    sentiment_index: \"0.5\"\n" +
		"    boundary: [[80, 13], [81, 13], [80, 12]]\n"
	path := filepath.Join(t.TempDir(), "latin1.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	items, source, err := load([]string{path})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Chennai Suré", items[0].PC)
	assert.Equal(t, "latin1.yaml", source)
}
