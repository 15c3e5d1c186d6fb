package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bharat-chakra/internal/domain/access"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
	"github.com/jhoicas/bharat-chakra/pkg/logger"
)

type fixedIntN int

func (f fixedIntN) IntN(int) int { return int(f) }

type captureGenerator struct {
	got Content
	err error
}

func (g *captureGenerator) GenerateReportPDF(_ context.Context, c Content) ([]byte, error) {
	g.got = c
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.3"), nil
}

func TestDescribe(t *testing.T) {
	d := NewUseCase(&captureGenerator{}, fixedIntN(0), logger.Nop()).Describe()
	assert.Equal(t, "Bharat Chakra Report", d.Title)
	assert.Equal(t, "/api/reports/pdf", d.DownloadURL)
	assert.Equal(t, "report.pdf", d.Filename)
	assert.Equal(t, "application/pdf", d.ContentType)
}

func TestGeneratePDF_ProbabilidadSimulada(t *testing.T) {
	gen := &captureGenerator{}
	uc := NewUseCase(gen, fixedIntN(23), logger.Nop())
	uc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	doc, err := uc.GeneratePDF(context.Background(), access.Login(entity.RoleClient), "asha")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(doc))
	assert.Equal(t, "73%", gen.got.WinProbability)
	assert.Equal(t, "Bharat Chakra Report", gen.got.Title)
	assert.Equal(t, "Client", gen.got.RoleLabel)
	assert.Equal(t, "asha", gen.got.Username)
	assert.NotEmpty(t, gen.got.ID)
	assert.Equal(t, 2026, gen.got.GeneratedAt.Year())
}

func TestGeneratePDF_SinSesion(t *testing.T) {
	gen := &captureGenerator{}
	_, err := NewUseCase(gen, fixedIntN(0), logger.Nop()).GeneratePDF(context.Background(), access.Logout(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, "50%", gen.got.WinProbability)
	assert.Empty(t, gen.got.RoleLabel)
	assert.Empty(t, gen.got.Username)
}

func TestGeneratePDF_ErrorDelGenerador(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewUseCase(&captureGenerator{err: boom}, fixedIntN(0), logger.Nop()).GeneratePDF(context.Background(), access.Logout(), "")
	assert.ErrorIs(t, err, boom)
}
