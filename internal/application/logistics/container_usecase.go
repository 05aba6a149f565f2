// Package logistics casos de uso del núcleo logístico: empaque en contenedores, asignación de
// flota, alta y seguimiento de envíos, libro financiero y reinicio del sistema.
package logistics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/ports"
	"github.com/jhoicas/freight-api/internal/domain"
	"github.com/jhoicas/freight-api/internal/domain/entity"
	"github.com/jhoicas/freight-api/internal/domain/packing"
	"github.com/jhoicas/freight-api/internal/domain/repository"
)

// ContainerUseCase empaca los envíos pendientes en contenedores y administra la colección.
type ContainerUseCase struct {
	runner   ports.StateRunner
	manifest ports.ManifestBuilder
	log      zerolog.Logger
	now      func() time.Time
}

// NewContainerUseCase construye el caso de uso.
func NewContainerUseCase(runner ports.StateRunner, manifest ports.ManifestBuilder, log zerolog.Logger) *ContainerUseCase {
	return &ContainerUseCase{runner: runner, manifest: manifest, log: log, now: time.Now}
}

// Optimize empaca todos los envíos Pending con first-fit-decreasing.
// Sin pendientes (o si ningún pendiente cabe) no escribe nada y lo indica en la respuesta.
// Con contenedores nuevos: los agrega a la colección, reemplaza los envíos y reconcilia los gastos del libro.
func (uc *ContainerUseCase) Optimize(ctx context.Context) (*dto.OptimizeResponse, error) {
	var out dto.OptimizeResponse
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		shipments, err := repo.Shipments(ctx)
		if err != nil {
			return err
		}
		rates, err := repo.Rates(ctx)
		if err != nil {
			return err
		}
		fl, err := repo.Fleet(ctx)
		if err != nil {
			return err
		}
		existing, err := repo.Containers(ctx)
		if err != nil {
			return err
		}
		fin, err := repo.Financials(ctx)
		if err != nil {
			return err
		}

		ids := newIDGenerator(containerPrefix, containerDigits, uc.now, containerIDs(existing))
		packer := packing.NewPacker(packing.NewPrimaryShipProfile(fl), ids.next, uc.now)
		res := packer.Optimize(shipments, rates)
		if err := ids.Err(); err != nil {
			return err
		}

		out = dto.OptimizeResponse{
			NoPending:  res.NoPending,
			Containers: res.Containers,
			Skipped:    toSkippedDTO(res.Skipped),
			Financials: fin,
		}
		if res.NoPending {
			out.Message = "no hay envíos pendientes para optimizar"
			return nil
		}
		if len(res.Containers) == 0 {
			out.Message = "ningún envío pendiente pudo empacarse"
			return nil
		}

		all := append(existing, res.Containers...)
		fin.Expenses = reconciledExpenses(all, res.Shipments)
		fin.Recompute()

		if err := repo.SaveShipments(ctx, res.Shipments); err != nil {
			return err
		}
		if err := repo.SaveContainers(ctx, all); err != nil {
			return err
		}
		if err := repo.SaveFinancials(ctx, fin); err != nil {
			return err
		}

		out.PackedShipments = len(res.PlacedIDs())
		out.Financials = fin
		out.Message = fmt.Sprintf("%d contenedores creados", len(res.Containers))
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Bool("no_pending", out.NoPending).
		Int("containers", len(out.Containers)).
		Int("packed", out.PackedShipments).
		Int("skipped", len(out.Skipped)).
		Str("expenses", out.Financials.Expenses.String()).
		Msg("optimización de contenedores")
	return &out, nil
}

// Reset devuelve todos los envíos a Pending (sin vehículo asignado), vacía los contenedores
// y deja los gastos del libro en 0.
//
// Los vehículos conservan su estado: los que estaban asignados quedan En Tránsito sin envío,
// no vuelven a ser asignables y desaparecen de Assignments. VehiclesUnbound los cuenta.
func (uc *ContainerUseCase) Reset(ctx context.Context) (*dto.ResetContainersResponse, error) {
	var out dto.ResetContainersResponse
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		shipments, err := repo.Shipments(ctx)
		if err != nil {
			return err
		}
		containers, err := repo.Containers(ctx)
		if err != nil {
			return err
		}
		fin, err := repo.Financials(ctx)
		if err != nil {
			return err
		}

		unbound := make(map[string]struct{})
		for i := range shipments {
			for _, id := range []*string{shipments[i].TruckID, shipments[i].ShipID} {
				if id != nil && *id != "" {
					unbound[*id] = struct{}{}
				}
			}
			resetShipment(&shipments[i])
		}
		fin.Expenses = decimal.Zero
		fin.Recompute()

		if err := repo.SaveShipments(ctx, shipments); err != nil {
			return err
		}
		if err := repo.SaveContainers(ctx, []entity.Container{}); err != nil {
			return err
		}
		if err := repo.SaveFinancials(ctx, fin); err != nil {
			return err
		}
		out = dto.ResetContainersResponse{
			ShipmentsReset:    len(shipments),
			ContainersRemoved: len(containers),
			VehiclesUnbound:   len(unbound),
			Financials:        fin,
		}
		out.Message = fmt.Sprintf("%d envíos reiniciados, %d contenedores eliminados", out.ShipmentsReset, out.ContainersRemoved)
		if out.VehiclesUnbound > 0 {
			out.Message += fmt.Sprintf("; %d vehículos siguen En Tránsito sin envío asignado", out.VehiclesUnbound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Warn().
		Int("shipments", out.ShipmentsReset).
		Int("containers_removed", out.ContainersRemoved).
		Int("vehicles_unbound", out.VehiclesUnbound).
		Msg("contenedores reiniciados")
	return &out, nil
}

func resetShipment(s *entity.Shipment) {
	s.Status = entity.StatusPending
	s.TruckID, s.TruckName, s.TruckExpense = nil, "", decimal.NullDecimal{}
	s.ShipID, s.ShipName, s.ShipExpense = nil, "", decimal.NullDecimal{}
	s.FleetTotalExpense = decimal.NullDecimal{}
	s.TransportMode = ""
}

// List contenedores en orden de creación con costo y peso totales.
func (uc *ContainerUseCase) List(ctx context.Context) (*dto.ContainerListResponse, error) {
	var out dto.ContainerListResponse
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		containers, err := repo.Containers(ctx)
		if err != nil {
			return err
		}
		out.Containers = containers
		out.TotalCost = containerCost(containers)
		for _, c := range containers {
			out.TotalKg += c.UsedKg
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Manifest genera el manifiesto XML de carga del contenedor.
func (uc *ContainerUseCase) Manifest(ctx context.Context, containerID string) (*dto.ManifestDTO, error) {
	containerID = strings.TrimSpace(containerID)
	if containerID == "" {
		return nil, domain.ErrInvalidInput
	}

	var (
		container entity.Container
		lines     []entity.Shipment
	)
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		containers, err := repo.Containers(ctx)
		if err != nil {
			return err
		}
		found := false
		for _, c := range containers {
			if c.ContainerID == containerID {
				container, found = c, true
				break
			}
		}
		if !found {
			return domain.ErrNotFound
		}
		shipments, err := repo.Shipments(ctx)
		if err != nil {
			return err
		}
		// en el orden de empaque; un envío borrado por reinicio simplemente no aparece
		for _, id := range container.ShipmentIDs {
			if idx := findShipment(shipments, id); idx >= 0 {
				lines = append(lines, shipments[idx])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	xml, digest, err := uc.manifest.BuildManifest(container, lines)
	if err != nil {
		return nil, fmt.Errorf("manifiesto: %w", err)
	}
	return &dto.ManifestDTO{ContainerID: container.ContainerID, XML: xml, Digest: digest}, nil
}

func toSkippedDTO(skips []packing.Skip) []dto.SkippedShipmentDTO {
	out := make([]dto.SkippedShipmentDTO, 0, len(skips))
	for _, s := range skips {
		out = append(out, dto.SkippedShipmentDTO{ShipmentID: s.ShipmentID, Reason: string(s.Reason)})
	}
	return out
}
