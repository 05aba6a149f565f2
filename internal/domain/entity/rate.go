package entity

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ContainerRate capacidad y precio por km de un tipo de contenedor.
type ContainerRate struct {
	Type       string          `json:"type"`
	CapacityKg float64         `json:"capacity_kg"`
	PricePerKm decimal.Decimal `json:"price_per_km"`
}

// UnmarshalJSON admite los alias históricos rate_per_km y pricePerKm para el precio.
// Una capacidad no numérica queda en 0 (tipo sin capacidad utilizable).
func (r *ContainerRate) UnmarshalJSON(data []byte) error {
	var aux struct {
		Type        string              `json:"type"`
		CapacityKg  json.RawMessage     `json:"capacity_kg"`
		PricePerKm  decimal.NullDecimal `json:"price_per_km"`
		RatePerKm   decimal.NullDecimal `json:"rate_per_km"`
		PricePerKm2 decimal.NullDecimal `json:"pricePerKm"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Type = aux.Type
	r.CapacityKg = 0
	if len(aux.CapacityKg) > 0 {
		var f float64
		if err := json.Unmarshal(aux.CapacityKg, &f); err == nil {
			r.CapacityKg = f
		}
	}
	switch {
	case aux.PricePerKm.Valid:
		r.PricePerKm = aux.PricePerKm.Decimal
	case aux.RatePerKm.Valid:
		r.PricePerKm = aux.RatePerKm.Decimal
	case aux.PricePerKm2.Valid:
		r.PricePerKm = aux.PricePerKm2.Decimal
	default:
		r.PricePerKm = decimal.Zero
	}
	return nil
}

// RateTable tabla ordenada de tarifas por tipo de contenedor.
type RateTable []ContainerRate

// Lookup busca la tarifa del tipo sin distinguir mayúsculas.
func (t RateTable) Lookup(containerType string) (ContainerRate, bool) {
	key := strings.TrimSpace(containerType)
	for _, r := range t {
		if strings.EqualFold(strings.TrimSpace(r.Type), key) {
			return r, true
		}
	}
	return ContainerRate{}, false
}

// Capacity capacidad utilizable del tipo; ok=false si no hay tarifa o la capacidad es <= 0.
func (t RateTable) Capacity(containerType string) (float64, bool) {
	r, found := t.Lookup(containerType)
	if !found || r.CapacityKg <= 0 {
		return 0, false
	}
	return r.CapacityKg, true
}
