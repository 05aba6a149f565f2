package logistics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/application/dto"
	"github.com/jhoicas/freight-api/internal/application/inventory"
	"github.com/jhoicas/freight-api/internal/application/ports"
	"github.com/jhoicas/freight-api/internal/domain"
	"github.com/jhoicas/freight-api/internal/domain/entity"
	"github.com/jhoicas/freight-api/internal/domain/fleet"
	"github.com/jhoicas/freight-api/internal/domain/repository"
)

// kmPerDay distancia recorrida por día para estimar el ETA.
const kmPerDay = 800

// TrackingSteps línea de tiempo que muestra el seguimiento de un envío.
var TrackingSteps = []string{"Created", "Ready for Transport", "In Transit", "Delivered"}

// ShipmentUseCase alta, cotización, listado y seguimiento de envíos.
type ShipmentUseCase struct {
	runner ports.StateRunner
	router fleet.Router
	log    zerolog.Logger
	now    func() time.Time
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(runner ports.StateRunner, router fleet.Router, log zerolog.Logger) *ShipmentUseCase {
	return &ShipmentUseCase{runner: runner, router: router, log: log, now: time.Now}
}

// Routes tabla de distancias desde el origen.
func (uc *ShipmentUseCase) Routes(ctx context.Context) (entity.RouteTable, error) {
	var out entity.RouteTable
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		var err error
		out, err = repo.Routes(ctx)
		return err
	})
	return out, err
}

// Rates tarifas por tipo de contenedor.
func (uc *ShipmentUseCase) Rates(ctx context.Context) (entity.RateTable, error) {
	var out entity.RateTable
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		var err error
		out, err = repo.Rates(ctx)
		return err
	})
	return out, err
}

// Quote precio y ETA de un envío sin crearlo. Un peso mayor a la capacidad no es error aquí:
// se devuelve como advertencia.
func (uc *ShipmentUseCase) Quote(ctx context.Context, in dto.ShipmentRequest) (*dto.QuoteResponse, error) {
	if strings.TrimSpace(in.Destination) == "" || strings.TrimSpace(in.ContainerType) == "" {
		return nil, domain.ErrInvalidInput
	}
	var out *dto.QuoteResponse
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		q, err := uc.quote(ctx, repo, in)
		out = q
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *ShipmentUseCase) quote(ctx context.Context, repo repository.StateRepository, in dto.ShipmentRequest) (*dto.QuoteResponse, error) {
	routes, err := repo.Routes(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := repo.Rates(ctx)
	if err != nil {
		return nil, err
	}
	route, ok := routes.Find(in.Destination)
	if !ok {
		return nil, domain.ErrRouteNotFound
	}
	rate, ok := rates.Lookup(in.ContainerType)
	if !ok || rate.CapacityKg <= 0 {
		return nil, domain.ErrRateNotFound
	}

	destination := route.Label()
	q := &dto.QuoteResponse{
		Destination:   destination,
		DistanceKm:    route.DistanceKm,
		ContainerType: rate.Type,
		CapacityKg:    rate.CapacityKg,
		RatePerKm:     rate.PricePerKm,
		Price:         rate.PricePerKm.Mul(decimal.NewFromFloat(route.DistanceKm)).Round(2),
		EtaDays:       etaDays(route.DistanceKm),
		TransportMode: fleet.ModeFor(uc.router.RequiredKind(destination)),
	}
	if in.WeightKg > rate.CapacityKg {
		q.Warning = fmt.Sprintf("el peso %.0f kg excede la capacidad de %.0f kg del contenedor %s", in.WeightKg, rate.CapacityKg, rate.Type)
	}
	return q, nil
}

// etaDays = max(1, ceil(distancia / 800)).
func etaDays(distanceKm float64) int {
	if distanceKm <= 0 {
		return 1
	}
	return int(math.Max(1, math.Ceil(distanceKm/kmPerDay)))
}

// Create registra un envío Pending, descuenta el inventario de la categoría y suma el precio
// a los ingresos. Todo o nada.
func (uc *ShipmentUseCase) Create(ctx context.Context, in dto.ShipmentRequest) (*entity.Shipment, error) {
	if err := validateShipmentRequest(in); err != nil {
		return nil, err
	}

	var created entity.Shipment
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		q, err := uc.quote(ctx, repo, in)
		if err != nil {
			return err
		}
		if in.WeightKg > q.CapacityKg {
			return domain.ErrExceedsCapacity
		}
		shipments, err := repo.Shipments(ctx)
		if err != nil {
			return err
		}
		fin, err := repo.Financials(ctx)
		if err != nil {
			return err
		}

		ids := newIDGenerator(shipmentPrefix, shipmentDigits, uc.now, shipmentIDs(shipments))
		id := ids.next()
		if err := ids.Err(); err != nil {
			return err
		}
		created = entity.Shipment{
			ShipmentID:      id,
			Destination:     q.Destination,
			ProductName:     strings.TrimSpace(in.ProductName),
			ProductCategory: strings.TrimSpace(in.ProductCategory),
			ContainerType:   q.ContainerType,
			WeightKg:        entity.Kilograms(in.WeightKg),
			DistanceKm:      q.DistanceKm,
			RatePerKm:       q.RatePerKm,
			Price:           q.Price,
			EtaDays:         q.EtaDays,
			Details:         strings.TrimSpace(in.Details),
			Status:          entity.StatusPending,
			CreatedAt:       uc.now(),
		}

		if _, err := inventory.ConsumeInRun(ctx, repo, created.ProductCategory, in.WeightKg); err != nil {
			return err
		}
		fin.Revenue = fin.Revenue.Add(created.Price)
		fin.Recompute()

		if err := repo.SaveShipments(ctx, append(shipments, created)); err != nil {
			return err
		}
		return repo.SaveFinancials(ctx, fin)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("shipment_id", created.ShipmentID).
		Str("destination", created.Destination).
		Str("container_type", created.ContainerType).
		Float64("weight_kg", created.WeightKg.Float64()).
		Str("price", created.Price.String()).
		Msg("envío creado")
	return &created, nil
}

func validateShipmentRequest(in dto.ShipmentRequest) error {
	if strings.TrimSpace(in.Destination) == "" ||
		strings.TrimSpace(in.ContainerType) == "" ||
		strings.TrimSpace(in.ProductCategory) == "" {
		return domain.ErrInvalidInput
	}
	if !entity.Kilograms(in.WeightKg).Valid() {
		return domain.ErrInvalidInput
	}
	return nil
}

// List envíos en orden de creación, opcionalmente filtrados por estado.
func (uc *ShipmentUseCase) List(ctx context.Context, status string, page dto.PageRequest) (*dto.ShipmentListResponse, error) {
	page.DefaultPage()
	var filter entity.ShipmentStatus
	if strings.TrimSpace(status) != "" {
		st, ok := entity.ParseShipmentStatus(status)
		if !ok {
			return nil, domain.ErrInvalidInput
		}
		filter = st
	}

	var all []entity.Shipment
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		var err error
		all, err = repo.Shipments(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	matched := make([]entity.Shipment, 0, len(all))
	for i := range all {
		if filter != "" && all[i].Status.Rank() != filter.Rank() {
			continue
		}
		matched = append(matched, all[i])
	}
	sortByCreation(matched)

	start := page.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return &dto.ShipmentListResponse{
		Items: matched[start:end],
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(matched)},
	}, nil
}

// Track envío, su paso en la línea de tiempo y el contenedor que lo lleva (si existe).
func (uc *ShipmentUseCase) Track(ctx context.Context, shipmentID string) (*dto.TrackResponse, error) {
	shipmentID = strings.TrimSpace(shipmentID)
	if shipmentID == "" {
		return nil, domain.ErrInvalidInput
	}
	var out dto.TrackResponse
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		shipments, err := repo.Shipments(ctx)
		if err != nil {
			return err
		}
		idx := findShipment(shipments, shipmentID)
		if idx < 0 {
			return domain.ErrShipmentNotFound
		}
		containers, err := repo.Containers(ctx)
		if err != nil {
			return err
		}
		s := shipments[idx]
		out = dto.TrackResponse{Shipment: s, Step: max(s.Status.Rank(), 0), Steps: TrackingSteps}
		for _, c := range containers {
			for _, id := range c.ShipmentIDs {
				if id == s.ShipmentID {
					out.ContainerID = c.ContainerID
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AdvanceStatus mueve el envío hacia adelante en su ciclo de vida. Los retrocesos se rechazan;
// el reinicio de contenedores es la única vía para volver a Pending.
func (uc *ShipmentUseCase) AdvanceStatus(ctx context.Context, shipmentID string, in dto.UpdateStatusRequest) (*entity.Shipment, error) {
	shipmentID = strings.TrimSpace(shipmentID)
	next, ok := entity.ParseShipmentStatus(in.Status)
	if shipmentID == "" || strings.TrimSpace(in.Status) == "" || !ok {
		return nil, domain.ErrInvalidInput
	}

	var updated entity.Shipment
	var from entity.ShipmentStatus
	err := uc.runner.Run(ctx, func(repo repository.StateRepository) error {
		shipments, err := repo.Shipments(ctx)
		if err != nil {
			return err
		}
		idx := findShipment(shipments, shipmentID)
		if idx < 0 {
			return domain.ErrShipmentNotFound
		}
		from = shipments[idx].Status
		if !from.CanAdvanceTo(next) {
			return domain.ErrInvalidStatusTransition
		}
		shipments[idx].Status = next
		updated = shipments[idx]
		return repo.SaveShipments(ctx, shipments)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("shipment_id", updated.ShipmentID).
		Str("from", string(from)).
		Str("to", string(next)).
		Msg("estado de envío actualizado")
	return &updated, nil
}

// sortByCreation orden estable por fecha de alta; las fechas cero quedan al principio.
func sortByCreation(shipments []entity.Shipment) {
	sort.SliceStable(shipments, func(i, j int) bool {
		return shipments[i].CreatedAt.Before(shipments[j].CreatedAt)
	})
}
