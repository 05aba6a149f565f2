package entity

import (
	"strings"

	"github.com/jhoicas/freight-api/pkg/textnorm"
)

// Route distancia estática desde el origen fijo hasta una ciudad.
type Route struct {
	City       string  `json:"city"`
	Country    string  `json:"country"`
	DistanceKm float64 `json:"distance_km"`
}

// Label destino en formato "Ciudad, CC".
func (r Route) Label() string {
	return r.City + ", " + r.Country
}

// RouteTable tabla ordenada de rutas.
type RouteTable []Route

// DistanceFor distancia al destino; ok=false si no hay ruta.
func (t RouteTable) DistanceFor(destination string) (float64, bool) {
	r, ok := t.Find(destination)
	return r.DistanceKm, ok
}

// Find busca primero la coincidencia exacta "Ciudad, CC" y luego solo por ciudad normalizada.
func (t RouteTable) Find(destination string) (Route, bool) {
	key := strings.TrimSpace(destination)
	for _, r := range t {
		if r.Label() == key {
			return r, true
		}
	}
	city := textnorm.Normalize(strings.SplitN(key, ",", 2)[0])
	if city == "" {
		return Route{}, false
	}
	for _, r := range t {
		if textnorm.Normalize(r.City) == city {
			return r, true
		}
	}
	return Route{}, false
}
