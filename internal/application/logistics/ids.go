package logistics

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/freight-api/internal/domain"
)

// Prefijos de identificadores: TW-YYMMDD-XXXX para envíos y CT-YYMMDD-XXX para contenedores.
const (
	shipmentPrefix  = "TW"
	shipmentDigits  = 4
	containerPrefix = "CT"
	containerDigits = 3
)

const (
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// intentos aleatorios antes de recorrer el espacio completo del día
	randomAttempts = 32
)

// idGenerator genera IDs con fecha y sufijo base36 aleatorio, reintentando ante colisiones.
// Si el día no tiene sufijos libres next devuelve "" y Err queda con domain.ErrIDSpaceExhausted.
type idGenerator struct {
	prefix string
	digits int
	now    func() time.Time
	taken  map[string]struct{}
	err    error
}

func newIDGenerator(prefix string, digits int, now func() time.Time, existing []string) *idGenerator {
	taken := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		taken[id] = struct{}{}
	}
	return &idGenerator{prefix: prefix, digits: digits, now: now, taken: taken}
}

func (g *idGenerator) next() string {
	if g.err != nil {
		return ""
	}
	day := g.now().Format("060102")
	for i := 0; i < randomAttempts; i++ {
		if id, ok := g.claim(day, randomSuffix(g.digits)); ok {
			return id
		}
	}
	// espacio casi lleno: recorrido determinista desde un punto aleatorio
	space := suffixSpace(g.digits)
	start := randomIndex(space)
	for i := 0; i < space; i++ {
		if id, ok := g.claim(day, encodeSuffix((start+i)%space, g.digits)); ok {
			return id
		}
	}
	g.err = fmt.Errorf("%w: %s-%s", domain.ErrIDSpaceExhausted, g.prefix, day)
	return ""
}

// Err primer agotamiento registrado por next.
func (g *idGenerator) Err() error { return g.err }

func (g *idGenerator) claim(day, suffix string) (string, bool) {
	id := g.prefix + "-" + day + "-" + suffix
	if _, dup := g.taken[id]; dup {
		return "", false
	}
	g.taken[id] = struct{}{}
	return id, true
}

func suffixSpace(digits int) int {
	n := 1
	for i := 0; i < digits; i++ {
		n *= len(idAlphabet)
	}
	return n
}

func encodeSuffix(k, digits int) string {
	buf := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		buf[i] = idAlphabet[k%len(idAlphabet)]
		k /= len(idAlphabet)
	}
	return string(buf)
}

// randomBytes bytes aleatorios de un UUID v4 sin los de versión y variante.
func randomBytes() []byte {
	u := uuid.New()
	out := make([]byte, 0, 14)
	out = append(out, u[0:6]...)
	out = append(out, u[7])
	out = append(out, u[9:]...)
	return out
}

// randomSuffix n caracteres base36 en mayúsculas.
func randomSuffix(n int) string {
	var sb strings.Builder
	for sb.Len() < n {
		for _, b := range randomBytes() {
			if sb.Len() == n {
				break
			}
			sb.WriteByte(idAlphabet[int(b)%len(idAlphabet)])
		}
	}
	return sb.String()
}

func randomIndex(space int) int {
	var k uint32
	for _, b := range randomBytes()[:4] {
		k = k<<8 | uint32(b)
	}
	return int(k % uint32(space))
}
