package repository

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// StateRepository vista tipada del estado persistido dentro de una ejecución atómica.
// Las lecturas nunca fallan por datos corruptos: devuelven el valor por defecto de la colección.
// Las escrituras quedan en buffer hasta que la ejecución termina sin error.
type StateRepository interface {
	Meta(ctx context.Context) (json.RawMessage, bool, error)
	Routes(ctx context.Context) (entity.RouteTable, error)
	Rates(ctx context.Context) (entity.RateTable, error)

	Shipments(ctx context.Context) ([]entity.Shipment, error)
	SaveShipments(ctx context.Context, shipments []entity.Shipment) error

	Containers(ctx context.Context) ([]entity.Container, error)
	SaveContainers(ctx context.Context, containers []entity.Container) error

	Fleet(ctx context.Context) (entity.Fleet, error)
	SaveFleet(ctx context.Context, fleet entity.Fleet) error

	Inventory(ctx context.Context) ([]entity.InventoryItem, error)
	SaveInventory(ctx context.Context, items []entity.InventoryItem) error

	Financials(ctx context.Context) (entity.Financials, error)
	SaveFinancials(ctx context.Context, fin entity.Financials) error
}
