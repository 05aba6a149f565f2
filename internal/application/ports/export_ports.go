package ports

import (
	"context"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// FinancialReportRenderer puerto de salida para el PDF del reporte financiero.
type FinancialReportRenderer interface {
	RenderFinancialReport(ctx context.Context, report dto.FinancialReport) ([]byte, error)
}

// ManifestBuilder puerto de salida para el manifiesto XML de carga de un contenedor.
// Devuelve el documento y la huella SHA-256 (hex) de su forma canónica.
type ManifestBuilder interface {
	BuildManifest(container entity.Container, shipments []entity.Shipment) (xml []byte, digest string, err error)
}
