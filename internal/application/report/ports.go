package report

import (
	"context"
	"time"
)

// Content datos que se imprimen en el reporte descargable.
type Content struct {
	ID             string
	Title          string
	WinProbability string // "73%"
	GeneratedAt    time.Time
	RoleLabel      string // vacío si no hay sesión
	Username       string
}

// Generator produce el documento del reporte. La implementación (Maroto) vive en infrastructure/pdf.
type Generator interface {
	GenerateReportPDF(ctx context.Context, content Content) ([]byte, error)
}
