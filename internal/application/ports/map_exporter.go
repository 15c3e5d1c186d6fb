package ports

import (
	"context"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
)

// MapExporter serializa la capa del mapa a un formato de intercambio (KML).
// Devuelve el documento y un digest estable apto para ETag.
type MapExporter interface {
	ExportLayer(ctx context.Context, title string, layer dto.FeatureCollectionDTO) (doc []byte, digest string, err error)
}
