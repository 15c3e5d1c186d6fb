// seed genera el script SQL que puebla la tabla constituencies a partir de un YAML
// con el mismo formato que internal/infrastructure/seed/constituencies.yaml.
//
// Uso: go run ./cmd/seed [ruta/constituencies.yaml]
// Sin argumento usa la semilla embebida. Si el archivo no es UTF-8 válido se lee como ISO-8859-1.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_constituencies.sql
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
	"github.com/jhoicas/bharat-chakra/internal/infrastructure/seed"
)

func main() {
	items, source, err := load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar semilla: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_constituencies.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, source, items); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d circunscripciones\n", outPath, len(items))
}

func load(args []string) ([]*entity.Constituency, string, error) {
	if len(args) == 0 {
		items, err := seed.Default()
		return items, "semilla embebida", err
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", err
	}
	var r io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	items, err := seed.Parse(r)
	return items, filepath.Base(args[0]), err
}

func writeSQL(w io.Writer, source string, items []*entity.Constituency) error {
	var b strings.Builder
	b.WriteString("-- Circunscripciones parlamentarias (PC)\n")
	fmt.Fprintf(&b, "-- Generado desde %s\n\n", source)
	if len(items) == 0 {
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("INSERT INTO constituencies (id, position, state, pc, winning_probability, anti_incumbency_score, sentiment_index, demographics, boundary) VALUES\n")
	for i, c := range items {
		demographics, err := json.Marshal(c.Demographics)
		if err != nil {
			return fmt.Errorf("%s/%s: demographics: %w", c.State, c.PC, err)
		}
		boundary, err := json.Marshal(c.Boundary)
		if err != nil {
			return fmt.Errorf("%s/%s: boundary: %w", c.State, c.PC, err)
		}
		sep := ","
		if i == len(items)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  ('%s', %d, '%s', '%s', %s, %s, %s, '%s'::jsonb, '%s'::jsonb)%s\n",
			c.ID, i, escapeSQL(c.State), escapeSQL(c.PC),
			c.WinningProbability.String(), c.AntiIncumbencyScore.String(), c.SentimentIndex.String(),
			escapeSQL(string(demographics)), escapeSQL(string(boundary)), sep)
	}
	b.WriteString("ON CONFLICT (state, pc) DO UPDATE SET\n")
	b.WriteString("  winning_probability = EXCLUDED.winning_probability,\n")
	b.WriteString("  anti_incumbency_score = EXCLUDED.anti_incumbency_score,\n")
	b.WriteString("  sentiment_index = EXCLUDED.sentiment_index,\n")
	b.WriteString("  demographics = EXCLUDED.demographics,\n")
	b.WriteString("  boundary = EXCLUDED.boundary;\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
