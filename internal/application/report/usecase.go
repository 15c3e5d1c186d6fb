// Package report arma la sección Reports y el PDF descargable.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
	"github.com/jhoicas/bharat-chakra/pkg/logger"
)

const (
	Title       = "Bharat Chakra Report"
	Filename    = "report.pdf"
	ContentType = "application/pdf"
	DownloadURL = "/api/reports/pdf"

	// probabilidad simulada en [50, 90)
	winBase   = 50
	winSpread = 40
)

// Random fuente de la probabilidad simulada.
type Random interface {
	IntN(n int) int
}

// UseCase sección Reports.
type UseCase struct {
	gen Generator
	rnd Random
	log *logger.Logger
	now func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(gen Generator, rnd Random, log *logger.Logger) *UseCase {
	return &UseCase{gen: gen, rnd: rnd, log: log.Component("report"), now: time.Now}
}

// Describe payload de la sección: enlace de descarga.
func (uc *UseCase) Describe() *dto.ReportDTO {
	return &dto.ReportDTO{
		Title:       Title,
		DownloadURL: DownloadURL,
		Filename:    Filename,
		ContentType: ContentType,
	}
}

// GeneratePDF genera el reporte. username puede estar vacío (sesión anónima).
func (uc *UseCase) GeneratePDF(ctx context.Context, session entity.Session, username string) ([]byte, error) {
	content := Content{
		ID:             uuid.NewString(),
		Title:          Title,
		WinProbability: fmt.Sprintf("%d%%", winBase+uc.rnd.IntN(winSpread)),
		GeneratedAt:    uc.now().UTC(),
	}
	if session.Authenticated {
		content.RoleLabel = session.Role.Label()
		content.Username = username
	}
	doc, err := uc.gen.GenerateReportPDF(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("report: generar PDF: %w", err)
	}
	uc.log.Info().
		Str("report_id", content.ID).
		Str("win_probability", content.WinProbability).
		Int("bytes", len(doc)).
		Msg("reporte generado")
	return doc, nil
}
