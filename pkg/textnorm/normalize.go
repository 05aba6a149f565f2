// Package textnorm normaliza nombres de ciudades y categorías para comparaciones tolerantes
// (sin tildes, sin mayúsculas, con las letras turcas plegadas a ASCII).
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ı y ø no se descomponen en NFD; se mapean a mano antes de quitar las marcas.
var special = runes.Map(func(r rune) rune {
	switch r {
	case 'ı':
		return 'i'
	case 'İ':
		return 'I'
	case 'ø':
		return 'o'
	case 'Ø':
		return 'O'
	}
	return r
})

var folder = cases.Fold()

// Normalize recorta, pliega mayúsculas y elimina diacríticos: "  İzmir " → "izmir", "Muğla" → "mugla".
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t := transform.Chain(special, norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return folder.String(out)
}

// Equal compara dos textos ya normalizados.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
