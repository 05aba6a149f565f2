package logistics

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/ports"
	"github.com/jhoicas/freight-api/internal/domain/repository"
)

// reportTitle encabezado del PDF financiero.
const reportTitle = "Reporte financiero"

// FinancialsUseCase libro de ingresos/gastos y su exportación.
type FinancialsUseCase struct {
	runner   ports.StateRunner
	renderer ports.FinancialReportRenderer
	log      zerolog.Logger
}

// NewFinancialsUseCase construye el caso de uso.
func NewFinancialsUseCase(runner ports.StateRunner, renderer ports.FinancialReportRenderer, log zerolog.Logger) *FinancialsUseCase {
	return &FinancialsUseCase{runner: runner, renderer: renderer, log: log}
}

// Summary recalcula los derivados del libro, los persiste y agrega los totales de las colecciones.
func (uc *FinancialsUseCase) Summary(ctx context.Context) (*dto.FinancialSummaryResponse, error) {
	report, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return &report.Summary, nil
}

// Report genera el PDF con el libro, los envíos (ingresos) y los contenedores (gastos).
func (uc *FinancialsUseCase) Report(ctx context.Context) ([]byte, error) {
	report, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.renderer.RenderFinancialReport(ctx, *report)
	if err != nil {
		return nil, fmt.Errorf("reporte financiero: %w", err)
	}
	uc.log.Info().Int("bytes", len(pdf)).Msg("reporte financiero generado")
	return pdf, nil
}

func (uc *FinancialsUseCase) load(ctx context.Context) (*dto.FinancialReport, error) {
	report := dto.FinancialReport{Title: reportTitle}
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		fin, err := repo.Financials(ctx)
		if err != nil {
			return err
		}
		shipments, err := repo.Shipments(ctx)
		if err != nil {
			return err
		}
		containers, err := repo.Containers(ctx)
		if err != nil {
			return err
		}
		fin.Recompute()
		if err := repo.SaveFinancials(ctx, fin); err != nil {
			return err
		}

		s := dto.FinancialSummaryResponse{
			Financials:     fin,
			ShipmentCount:  len(shipments),
			ContainerCount: len(containers),
			ContainerCost:  containerCost(containers),
			FleetExpense:   fleetExpense(shipments),
		}
		for _, c := range containers {
			s.UsedKg += c.UsedKg
		}
		report.Summary = s
		report.Shipments = shipments
		report.Containers = containers
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}
