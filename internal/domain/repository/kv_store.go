package repository

import "context"

// Claves lógicas del almacén clave-valor.
const (
	KeyMeta       = "APP_META"
	KeyRoutes     = "ROUTE_DISTANCES"
	KeyRates      = "CONTAINER_RATES"
	KeyFleet      = "FLEET_DATA"
	KeyInventory  = "INVENTORY_DATA"
	KeyFinancials = "FINANCIALS"
	KeyShipments  = "SHIPMENTS"
	KeyContainers = "CONTAINERS"
)

// AllKeys todas las claves administradas, en orden de sembrado.
var AllKeys = []string{
	KeyMeta, KeyRoutes, KeyRates, KeyFleet, KeyInventory, KeyFinancials, KeyShipments, KeyContainers,
}

// KeyValueStore define el puerto de persistencia: mapa de claves string a documentos JSON.
// SetMany es atómico: o se escriben todas las claves o ninguna.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	SetMany(ctx context.Context, values map[string][]byte) error
	Clear(ctx context.Context) error
}
