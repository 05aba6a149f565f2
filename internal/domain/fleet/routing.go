// Package fleet contiene la regla de ruteo doméstico/internacional, el cálculo de gasto por
// vehículo y la asignación de un vehículo a un envío.
package fleet

import (
	"strings"

	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// DefaultDomesticCountry código del país de origen.
const DefaultDomesticCountry = "TR"

// Router clasifica destinos respecto al país de origen.
type Router struct {
	domestic string
}

// NewRouter crea un Router; vacío usa DefaultDomesticCountry.
func NewRouter(domesticCountry string) Router {
	cc := strings.ToUpper(strings.TrimSpace(domesticCountry))
	if cc == "" {
		cc = DefaultDomesticCountry
	}
	return Router{domestic: cc}
}

// DomesticCountry código de país doméstico configurado.
func (r Router) DomesticCountry() string { return r.domestic }

// CountryCode texto tras la primera coma, en mayúsculas y sin espacios. "" si no hay coma.
func CountryCode(destination string) string {
	_, cc, found := strings.Cut(destination, ",")
	if !found {
		return ""
	}
	return strings.ToUpper(strings.TrimSpace(cc))
}

// IsDomestic un destino sin segmento de país se considera doméstico.
func (r Router) IsDomestic(destination string) bool {
	cc := CountryCode(destination)
	return cc == "" || cc == r.domestic
}

// RequiredKind camión para rutas domésticas, barco para internacionales.
func (r Router) RequiredKind(destination string) entity.VehicleKind {
	if r.IsDomestic(destination) {
		return entity.KindTruck
	}
	return entity.KindShip
}

// ModeFor modo de transporte correspondiente al tipo de vehículo.
func ModeFor(kind entity.VehicleKind) entity.TransportMode {
	if kind == entity.KindShip {
		return entity.ModeInternationalShip
	}
	return entity.ModeDomesticTruck
}
