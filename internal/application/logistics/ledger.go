package logistics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// reconciledExpenses gastos del libro reconstruidos desde los registros: costo de todos los
// contenedores más el gasto de flota registrado en cada envío.
func reconciledExpenses(containers []entity.Container, shipments []entity.Shipment) decimal.Decimal {
	return containerCost(containers).Add(fleetExpense(shipments))
}

func containerCost(containers []entity.Container) decimal.Decimal {
	total := decimal.Zero
	for _, c := range containers {
		total = total.Add(c.TransportCost)
	}
	return total
}

func fleetExpense(shipments []entity.Shipment) decimal.Decimal {
	total := decimal.Zero
	for i := range shipments {
		total = total.Add(shipments[i].PreviousFleetExpense())
	}
	return total
}

func containerIDs(containers []entity.Container) []string {
	ids := make([]string, 0, len(containers))
	for _, c := range containers {
		ids = append(ids, c.ContainerID)
	}
	return ids
}

func shipmentIDs(shipments []entity.Shipment) []string {
	ids := make([]string, 0, len(shipments))
	for i := range shipments {
		ids = append(ids, shipments[i].ShipmentID)
	}
	return ids
}

func findShipment(shipments []entity.Shipment, id string) int {
	for i := range shipments {
		if shipments[i].ShipmentID == id {
			return i
		}
	}
	return -1
}
