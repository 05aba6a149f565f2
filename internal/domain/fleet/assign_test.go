package fleet_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freight-api/internal/domain"
	"github.com/jhoicas/freight-api/internal/domain/entity"
	"github.com/jhoicas/freight-api/internal/domain/fleet"
)

func sampleFleet() entity.Fleet {
	return entity.Fleet{
		Trucks: []entity.Vehicle{
			{ID: "T-01", Name: "Anadolu 1", Status: entity.VehicleIdle, FuelPerKm: decimal.NewFromInt(2), DriverCost: decimal.NewFromInt(100), Maintenance: decimal.NewFromInt(30)},
			{ID: "T-02", Name: "Anadolu 2", Status: entity.VehicleInTransit, FuelPerKm: decimal.NewFromInt(2), DriverCost: decimal.NewFromInt(100), Maintenance: decimal.NewFromInt(30)},
		},
		Ships: []entity.Vehicle{
			{ID: "S-01", Name: "Aegean Star", Status: entity.VehicleIdle, FuelPerKm: decimal.NewFromInt(5), CrewCost: decimal.NewFromInt(400), Maintenance: decimal.NewFromInt(100)},
		},
	}
}

func sampleShipments() []entity.Shipment {
	return []entity.Shipment{
		{ShipmentID: "TW-1", Destination: "Izmir, TR", DistanceKm: 560, Status: entity.StatusPending},
		{ShipmentID: "TW-2", Destination: "Berlin, DE", DistanceKm: 2200, Status: entity.StatusPending},
		{ShipmentID: "TW-3", Destination: "Ankara, TR", DistanceKm: 0, Status: entity.StatusPending},
		{ShipmentID: "TW-4", Destination: "Bursa", DistanceKm: 150, Status: entity.StatusPending},
	}
}

func newAssigner() *fleet.Assigner {
	return fleet.NewAssigner(fleet.NewRouter(""))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ruteo
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_RequiredKind(t *testing.T) {
	r := fleet.NewRouter("tr")
	cases := []struct {
		dest string
		want entity.VehicleKind
	}{
		{"Izmir, TR", entity.KindTruck},
		{"Izmir,tr ", entity.KindTruck},
		{"Berlin, DE", entity.KindShip},
		{"Bursa", entity.KindTruck},
		{"New York, US, NY", entity.KindShip},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, r.RequiredKind(c.dest), c.dest)
	}
	assert.Equal(t, "TR", r.DomesticCountry())
}

func TestCountryCode(t *testing.T) {
	assert.Equal(t, "DE", fleet.CountryCode("Berlin, de"))
	assert.Equal(t, "", fleet.CountryCode("Berlin"))
	assert.Equal(t, "US, NY", fleet.CountryCode("New York, us, ny"))
}

func TestAssign_RuteoCorrecto(t *testing.T) {
	a := newAssigner()

	_, err := a.Assign(fleet.Request{ShipmentID: "TW-2", Kind: entity.KindTruck, VehicleID: "T-01"}, sampleShipments(), sampleFleet())
	assert.ErrorIs(t, err, domain.ErrWrongVehicleType, "Berlin debe rechazar camión")

	out, err := a.Assign(fleet.Request{ShipmentID: "TW-2", Kind: entity.KindShip, VehicleID: "S-01"}, sampleShipments(), sampleFleet())
	require.NoError(t, err, "Berlin debe aceptar barco")
	assert.Equal(t, entity.ModeInternationalShip, out.Shipment.TransportMode)

	_, err = a.Assign(fleet.Request{ShipmentID: "TW-1", Kind: entity.KindShip, VehicleID: "S-01"}, sampleShipments(), sampleFleet())
	assert.ErrorIs(t, err, domain.ErrWrongVehicleType, "Izmir debe rechazar barco")

	out, err = a.Assign(fleet.Request{ShipmentID: "TW-1", Kind: entity.KindTruck, VehicleID: "T-01"}, sampleShipments(), sampleFleet())
	require.NoError(t, err, "Izmir debe aceptar camión")
	assert.Equal(t, entity.ModeDomesticTruck, out.Shipment.TransportMode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Asignación
// ──────────────────────────────────────────────────────────────────────────────

func TestAssign_ExclusividadYGasto(t *testing.T) {
	shipments := sampleShipments()
	fl := sampleFleet()

	out, err := newAssigner().Assign(fleet.Request{ShipmentID: "TW-1", VehicleID: "T-01"}, shipments, fl)
	require.NoError(t, err)

	// 2 × 560 + 100 + 30 = 1250
	assert.True(t, decimal.NewFromInt(1250).Equal(out.Expense), "gasto: %s", out.Expense)
	assert.True(t, out.Expense.Equal(out.LedgerDelta))
	assert.Equal(t, entity.KindTruck, out.Kind)

	s := out.Shipment
	require.NotNil(t, s.TruckID)
	assert.Equal(t, "T-01", *s.TruckID)
	assert.Nil(t, s.ShipID)
	assert.Equal(t, "Anadolu 1", s.TruckName)
	assert.True(t, s.ShipExpense.Valid && s.ShipExpense.Decimal.IsZero())
	assert.True(t, s.FleetTotalExpense.Decimal.Equal(out.Expense))
	assert.Equal(t, entity.StatusReadyForTransport, s.Status)

	assert.Equal(t, entity.VehicleInTransit, out.Fleet.Find(entity.KindTruck, "T-01").Status)
	// la entrada no se muta
	assert.Equal(t, entity.VehicleIdle, fl.Find(entity.KindTruck, "T-01").Status)
	assert.Equal(t, entity.StatusPending, shipments[0].Status)
}

func TestAssign_VehiculoOcupado(t *testing.T) {
	a := newAssigner()
	shipments := sampleShipments()

	first, err := a.Assign(fleet.Request{ShipmentID: "TW-1", Kind: entity.KindTruck, VehicleID: "T-01"}, shipments, sampleFleet())
	require.NoError(t, err)

	_, err = a.Assign(fleet.Request{ShipmentID: "TW-4", Kind: entity.KindTruck, VehicleID: "T-01"}, shipments, first.Fleet)
	assert.ErrorIs(t, err, domain.ErrVehicleBusy)
	assert.EqualError(t, err, "el vehículo ya está en transporte")

	_, err = a.Assign(fleet.Request{ShipmentID: "TW-4", Kind: entity.KindTruck, VehicleID: "T-02"}, shipments, sampleFleet())
	assert.ErrorIs(t, err, domain.ErrVehicleBusy)
}

func TestAssign_Precondiciones(t *testing.T) {
	a := newAssigner()
	cases := []struct {
		name string
		req  fleet.Request
		want error
	}{
		{"sin envío", fleet.Request{VehicleID: "T-01"}, domain.ErrNoShipmentSelected},
		{"envío inexistente", fleet.Request{ShipmentID: "TW-99", VehicleID: "T-01"}, domain.ErrShipmentNotFound},
		{"distancia cero", fleet.Request{ShipmentID: "TW-3", Kind: entity.KindTruck, VehicleID: "T-01"}, domain.ErrDistanceUndefined},
		{"vehículo inexistente", fleet.Request{ShipmentID: "TW-1", Kind: entity.KindTruck, VehicleID: "T-77"}, domain.ErrVehicleNotFound},
		{"vehículo inexistente sin tipo", fleet.Request{ShipmentID: "TW-1", VehicleID: "X"}, domain.ErrVehicleNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := a.Assign(c.req, sampleShipments(), sampleFleet())
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestAssign_DestinoSinPaisEsDomestico(t *testing.T) {
	out, err := newAssigner().Assign(fleet.Request{ShipmentID: "TW-4", VehicleID: "T-01"}, sampleShipments(), sampleFleet())
	require.NoError(t, err)
	assert.Equal(t, entity.ModeDomesticTruck, out.Shipment.TransportMode)
}

func TestAssign_ReasignacionNoDuplicaGasto(t *testing.T) {
	shipments := sampleShipments()
	shipments[1].ShipID = ptr("S-00")
	shipments[1].FleetTotalExpense = decimal.NewNullDecimal(decimal.NewFromInt(1000))
	shipments[1].Status = entity.StatusInTransit

	out, err := newAssigner().Assign(fleet.Request{ShipmentID: "TW-2", VehicleID: "S-01"}, shipments, sampleFleet())
	require.NoError(t, err)

	// 5 × 2200 + 400 + 100 = 11500; delta = 11500 - 1000
	assert.True(t, decimal.NewFromInt(11500).Equal(out.Expense))
	assert.True(t, decimal.NewFromInt(10500).Equal(out.LedgerDelta))
	assert.Equal(t, entity.StatusInTransit, out.Shipment.Status, "el estado no retrocede")
}

func TestEstimate_NoMuta(t *testing.T) {
	fl := sampleFleet()
	got, err := newAssigner().Estimate(fleet.Request{ShipmentID: "TW-1", VehicleID: "T-01"}, sampleShipments(), fl)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1250).Equal(got))
	assert.Equal(t, entity.VehicleIdle, fl.Find(entity.KindTruck, "T-01").Status)
}

func TestComputeExpense_NoCalculable(t *testing.T) {
	v := sampleFleet().Trucks[0]
	assert.True(t, fleet.ComputeExpense(nil, entity.KindTruck, 100).IsZero())
	assert.True(t, fleet.ComputeExpense(&v, entity.KindTruck, 0).IsZero())
	assert.True(t, fleet.ComputeExpense(&v, entity.KindTruck, -3).IsZero())
}

func ptr(s string) *string { return &s }
