package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La operación que devuelve cualquiera de ellos no persiste nada.
var (
	ErrNotFound                = errors.New("recurso no encontrado")
	ErrInvalidInput            = errors.New("entrada inválida")
	ErrNoShipmentSelected      = errors.New("seleccione un envío primero")
	ErrShipmentNotFound        = errors.New("envío no encontrado")
	ErrDistanceUndefined       = errors.New("la distancia no está definida para este envío")
	ErrWrongVehicleType        = errors.New("el tipo de vehículo no corresponde a la ruta del envío")
	ErrVehicleNotFound         = errors.New("vehículo no encontrado")
	ErrVehicleBusy             = errors.New("el vehículo ya está en transporte")
	ErrExceedsCapacity         = errors.New("el peso excede la capacidad del contenedor")
	ErrRateNotFound            = errors.New("no hay tarifa configurada para el tipo de contenedor")
	ErrRouteNotFound           = errors.New("no se encontró ruta para el destino")
	ErrInvalidStatusTransition = errors.New("transición de estado no permitida")
	ErrResetNotConfirmed       = errors.New("el reinicio del sistema requiere confirmación")
	ErrIDSpaceExhausted        = errors.New("no quedan identificadores libres para hoy")
	ErrCorruptState            = errors.New("el almacén contiene registros ilegibles; exporte y ejecute un reinicio completo")
)
