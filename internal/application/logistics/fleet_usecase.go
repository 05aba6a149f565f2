package logistics

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/ports"
	"github.com/jhoicas/freight-api/internal/domain"
	"github.com/jhoicas/freight-api/internal/domain/entity"
	"github.com/jhoicas/freight-api/internal/domain/fleet"
	"github.com/jhoicas/freight-api/internal/domain/repository"
)

// FleetUseCase asignación de camiones/barcos a envíos y consultas de la pantalla de flota.
type FleetUseCase struct {
	runner   ports.StateRunner
	assigner *fleet.Assigner
	log      zerolog.Logger
}

// NewFleetUseCase construye el caso de uso.
func NewFleetUseCase(runner ports.StateRunner, assigner *fleet.Assigner, log zerolog.Logger) *FleetUseCase {
	return &FleetUseCase{runner: runner, assigner: assigner, log: log}
}

// Fleet registro completo de vehículos.
func (uc *FleetUseCase) Fleet(ctx context.Context) (entity.Fleet, error) {
	var fl entity.Fleet
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		var err error
		fl, err = repo.Fleet(ctx)
		return err
	})
	return fl, err
}

// AvailableVehicles camiones y barcos en estado Idle.
func (uc *FleetUseCase) AvailableVehicles(ctx context.Context) (*dto.AvailableVehiclesResponse, error) {
	fl, err := uc.Fleet(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AvailableVehiclesResponse{
		Trucks: fl.Idle(entity.KindTruck),
		Ships:  fl.Idle(entity.KindShip),
	}, nil
}

// PendingShipments envíos seleccionables para asignar (estado Pending).
func (uc *FleetUseCase) PendingShipments(ctx context.Context) ([]entity.Shipment, error) {
	out := make([]entity.Shipment, 0)
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		shipments, err := repo.Shipments(ctx)
		if err != nil {
			return err
		}
		for _, s := range shipments {
			if s.IsPending() {
				out = append(out, s)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Assignments envíos con vehículo asignado, con nombre y estado actual del vehículo.
func (uc *FleetUseCase) Assignments(ctx context.Context) ([]dto.AssignmentDTO, error) {
	out := make([]dto.AssignmentDTO, 0)
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		shipments, err := repo.Shipments(ctx)
		if err != nil {
			return err
		}
		fl, err := repo.Fleet(ctx)
		if err != nil {
			return err
		}
		for _, s := range shipments {
			if !s.HasVehicle() {
				continue
			}
			row := dto.AssignmentDTO{
				ShipmentID:        s.ShipmentID,
				Destination:       s.Destination,
				Status:            s.Status,
				TransportMode:     s.TransportMode,
				FleetTotalExpense: s.PreviousFleetExpense(),
			}
			kind, id, name := entity.KindTruck, "", s.TruckName
			if s.TruckID != nil && *s.TruckID != "" {
				id = *s.TruckID
			} else {
				kind, id, name = entity.KindShip, *s.ShipID, s.ShipName
			}
			row.VehicleType, row.VehicleID, row.VehicleName = string(kind), id, name
			if v := fl.Find(kind, entity.VehicleID(id)); v != nil {
				row.VehicleName = v.Name
				row.VehicleStatus = v.Status
			}
			out = append(out, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Estimate gasto que generaría la asignación, validando las mismas precondiciones sin escribir.
func (uc *FleetUseCase) Estimate(ctx context.Context, in dto.AssignRequest) (*dto.EstimateResponse, error) {
	req, err := toAssignRequest(in)
	if err != nil {
		return nil, err
	}
	var out dto.EstimateResponse
	err = uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		shipments, err := repo.Shipments(ctx)
		if err != nil {
			return err
		}
		fl, err := repo.Fleet(ctx)
		if err != nil {
			return err
		}
		idx, kind, v, err := uc.assigner.Check(req, shipments, fl)
		if err != nil {
			return err
		}
		s := shipments[idx]
		out = dto.EstimateResponse{
			ShipmentID:    s.ShipmentID,
			VehicleType:   string(kind),
			VehicleID:     string(v.ID),
			DistanceKm:    s.DistanceKm,
			TransportMode: fleet.ModeFor(kind),
			Expense:       fleet.ComputeExpense(v, kind, s.DistanceKm),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Assign vincula el vehículo al envío y actualiza envío, flota y libro en una sola escritura.
// Cualquier precondición fallida deja el estado intacto.
func (uc *FleetUseCase) Assign(ctx context.Context, in dto.AssignRequest) (*dto.AssignResponse, error) {
	req, err := toAssignRequest(in)
	if err != nil {
		return nil, err
	}

	var out dto.AssignResponse
	err = uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		shipments, err := repo.Shipments(ctx)
		if err != nil {
			return err
		}
		fl, err := repo.Fleet(ctx)
		if err != nil {
			return err
		}
		fin, err := repo.Financials(ctx)
		if err != nil {
			return err
		}

		res, err := uc.assigner.Assign(req, shipments, fl)
		if err != nil {
			return err
		}

		shipments[findShipment(shipments, res.Shipment.ShipmentID)] = res.Shipment
		fin.Expenses = fin.Expenses.Add(res.LedgerDelta)
		fin.Recompute()

		if err := repo.SaveShipments(ctx, shipments); err != nil {
			return err
		}
		if err := repo.SaveFleet(ctx, res.Fleet); err != nil {
			return err
		}
		if err := repo.SaveFinancials(ctx, fin); err != nil {
			return err
		}
		out = dto.AssignResponse{
			Shipment:   res.Shipment,
			Vehicle:    res.Vehicle,
			Expense:    res.Expense,
			Financials: fin,
		}
		return nil
	})
	if err != nil {
		uc.log.Debug().Err(err).Str("shipment_id", in.ShipmentID).Str("vehicle_id", in.VehicleID).Msg("asignación rechazada")
		return nil, err
	}

	uc.log.Info().
		Str("shipment_id", out.Shipment.ShipmentID).
		Str("vehicle_id", string(out.Vehicle.ID)).
		Str("mode", string(out.Shipment.TransportMode)).
		Str("expense", out.Expense.String()).
		Msg("vehículo asignado")
	return &out, nil
}

func toAssignRequest(in dto.AssignRequest) (fleet.Request, error) {
	req := fleet.Request{
		ShipmentID: strings.TrimSpace(in.ShipmentID),
		VehicleID:  entity.VehicleID(strings.TrimSpace(in.VehicleID)),
	}
	if t := strings.TrimSpace(in.VehicleType); t != "" {
		kind, ok := entity.ParseVehicleKind(t)
		if !ok {
			return fleet.Request{}, domain.ErrInvalidInput
		}
		req.Kind = kind
	}
	return req, nil
}
