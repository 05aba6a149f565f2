package logistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freight-api/internal/domain"
)

var idDay = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func fixedDay() time.Time { return idDay }

// fullDay todos los IDs posibles del día salvo los indicados en free.
func fullDay(prefix string, digits int, free ...string) []string {
	skip := make(map[string]bool, len(free))
	for _, f := range free {
		skip[f] = true
	}
	space := suffixSpace(digits)
	out := make([]string, 0, space)
	for k := 0; k < space; k++ {
		id := prefix + "-261016-" + encodeSuffix(k, digits)
		if !skip[id] {
			out = append(out, id)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Formato y unicidad
// ──────────────────────────────────────────────────────────────────────────────

func TestIDGenerator_FormatoBase36(t *testing.T) {
	g := newIDGenerator(containerPrefix, containerDigits, fixedDay, nil)
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id := g.next()
		require.NoError(t, g.Err())
		assert.Regexp(t, `^CT-261016-[0-9A-Z]{3}$`, id)
		assert.False(t, seen[id], "id repetido %s", id)
		seen[id] = true
	}
	assert.Equal(t, 46656, suffixSpace(containerDigits))
	assert.Equal(t, "000", encodeSuffix(0, 3))
	assert.Equal(t, "ZZZ", encodeSuffix(46655, 3))
}

func TestIDGenerator_EncuentraElUltimoLibre(t *testing.T) {
	g := newIDGenerator(containerPrefix, containerDigits, fixedDay, fullDay(containerPrefix, containerDigits, "CT-261016-Q7K"))

	assert.Equal(t, "CT-261016-Q7K", g.next())
	require.NoError(t, g.Err())
}

// ──────────────────────────────────────────────────────────────────────────────
// Agotamiento del espacio diario
// ──────────────────────────────────────────────────────────────────────────────

func TestIDGenerator_DiaLlenoDevuelveErrorSinBloquear(t *testing.T) {
	g := newIDGenerator(containerPrefix, containerDigits, fixedDay, fullDay(containerPrefix, containerDigits))

	done := make(chan string, 1)
	go func() { done <- g.next() }()

	select {
	case id := <-done:
		assert.Empty(t, id)
		assert.ErrorIs(t, g.Err(), domain.ErrIDSpaceExhausted)
	case <-time.After(5 * time.Second):
		t.Fatal("next no terminó con el día completo")
	}

	// el error queda fijado para las siguientes llamadas
	assert.Empty(t, g.next())
	assert.ErrorIs(t, g.Err(), domain.ErrIDSpaceExhausted)
}

func TestIDGenerator_OtroDiaNoSeVeAfectado(t *testing.T) {
	nextDay := func() time.Time { return idDay.AddDate(0, 0, 1) }
	g := newIDGenerator(containerPrefix, containerDigits, nextDay, fullDay(containerPrefix, containerDigits))

	assert.Regexp(t, `^CT-261017-[0-9A-Z]{3}$`, g.next())
	assert.NoError(t, g.Err())
}
