// Package packing agrupa los envíos pendientes por destino y tipo de contenedor y los
// empaca con first-fit-decreasing respetando la capacidad de cada tipo.
package packing

import (
	"sort"
	"time"

	"github.com/jhoicas/freight-api/internal/domain/entity"
)

// SkipReason motivo por el que un envío pendiente no se empacó.
type SkipReason string

const (
	SkipInvalidWeight SkipReason = "invalid_weight"
	SkipNoRate        SkipReason = "no_rate"
	SkipOversized     SkipReason = "oversized"
)

// Skip envío que queda en Pending tras optimizar.
type Skip struct {
	ShipmentID string
	Reason     SkipReason
}

// Result salida de Optimize.
// Shipments es la colección completa de entrada con los envíos empacados en Ready for Transport.
type Result struct {
	Shipments  []entity.Shipment
	Containers []entity.Container
	Skipped    []Skip
	NoPending  bool // no había envíos pendientes: no-op explícito
}

// PlacedIDs IDs de envíos colocados en algún contenedor nuevo.
func (r Result) PlacedIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, c := range r.Containers {
		for _, id := range c.ShipmentIDs {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// groupKey clave compuesta del grupo de empaque.
type groupKey struct {
	destination   string
	containerType string
}

type group struct {
	key       groupKey
	shipments []entity.Shipment
}

// Packer motor de bin-packing. IDs y reloj se inyectan para pruebas deterministas.
type Packer struct {
	profile CostProfile
	newID   func() string
	now     func() time.Time
}

// NewPacker construye el motor. now nil usa time.Now.
func NewPacker(profile CostProfile, newID func() string, now func() time.Time) *Packer {
	if now == nil {
		now = time.Now
	}
	return &Packer{profile: profile, newID: newID, now: now}
}

// Optimize convierte los envíos Pending en contenedores nuevos.
//
//  1. Filtra Pending; sin pendientes devuelve la entrada intacta y NoPending=true.
//  2. Agrupa por (destino, tipo) en orden de primera aparición.
//  3. Descarta pesos no positivos y grupos sin tarifa o con capacidad <= 0.
//  4. Ordena por peso descendente (estable) y descarta los que exceden la capacidad.
//  5. First-fit: primer contenedor abierto con espacio, si no abre uno nuevo.
//  6. Calcula el costo de cada contenedor con el perfil de costos.
//  7. Marca los envíos colocados como Ready for Transport.
func (p *Packer) Optimize(shipments []entity.Shipment, rates entity.RateTable) Result {
	out := make([]entity.Shipment, len(shipments))
	copy(out, shipments)

	groups := groupPending(out)
	if len(groups) == 0 {
		return Result{Shipments: out, Containers: []entity.Container{}, NoPending: true}
	}

	var (
		created = make([]entity.Container, 0)
		skipped []Skip
	)
	for _, g := range groups {
		containers, skips := p.packGroup(g, rates)
		created = append(created, containers...)
		skipped = append(skipped, skips...)
	}

	res := Result{Containers: created, Skipped: skipped}
	placed := res.PlacedIDs()
	for i := range out {
		if _, ok := placed[out[i].ShipmentID]; ok {
			out[i].Status = entity.StatusReadyForTransport
		}
	}
	res.Shipments = out
	return res
}

// groupPending particiona los pendientes preservando el orden de descubrimiento.
func groupPending(shipments []entity.Shipment) []*group {
	index := make(map[groupKey]*group)
	var ordered []*group
	for _, s := range shipments {
		if !s.IsPending() {
			continue
		}
		k := groupKey{destination: s.Destination, containerType: s.ContainerType}
		g, ok := index[k]
		if !ok {
			g = &group{key: k}
			index[k] = g
			ordered = append(ordered, g)
		}
		g.shipments = append(g.shipments, s)
	}
	return ordered
}

func (p *Packer) packGroup(g *group, rates entity.RateTable) ([]entity.Container, []Skip) {
	var skips []Skip

	// El representante del grupo es el primer envío descubierto, sea válido o no.
	representative := g.shipments[0]
	containerType := representative.ContainerType

	capacity, ok := rates.Capacity(containerType)
	if !ok {
		for _, s := range g.shipments {
			skips = append(skips, Skip{ShipmentID: s.ShipmentID, Reason: SkipNoRate})
		}
		return nil, skips
	}

	valid := make([]entity.Shipment, 0, len(g.shipments))
	for _, s := range g.shipments {
		if !s.WeightKg.Valid() {
			skips = append(skips, Skip{ShipmentID: s.ShipmentID, Reason: SkipInvalidWeight})
			continue
		}
		valid = append(valid, s)
	}
	if len(valid) == 0 {
		return nil, skips
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].WeightKg > valid[j].WeightKg
	})

	now := p.now()
	var containers []*entity.Container
	for _, s := range valid {
		weight := s.WeightKg.Float64()
		if weight > capacity {
			skips = append(skips, Skip{ShipmentID: s.ShipmentID, Reason: SkipOversized})
			continue
		}

		placed := false
		for _, c := range containers {
			if c.Fits(weight) {
				c.Add(s.ShipmentID, weight)
				placed = true
				break
			}
		}
		if placed {
			continue
		}

		c := &entity.Container{
			ContainerID:   p.newID(),
			Destination:   s.Destination,
			ContainerType: containerType,
			CapacityKg:    capacity,
			ShipmentIDs:   make([]string, 0, 1),
			DistanceKm:    representative.DistanceKm,
			Status:        entity.StatusReadyForTransport,
			CreatedAt:     now,
		}
		c.Add(s.ShipmentID, weight)
		containers = append(containers, c)
	}

	result := make([]entity.Container, 0, len(containers))
	for _, c := range containers {
		c.TransportCost = p.profile.ContainerCost(c.DistanceKm)
		result = append(result, *c)
	}
	return result, skips
}
