package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kilograms peso en kg tal como llega del almacén clave-valor.
// Acepta números JSON o strings numéricos; cualquier otro valor (null, texto, objeto)
// se decodifica como 0 y queda marcado como peso inválido en vez de romper la carga.
type Kilograms float64

// UnmarshalJSON decodifica el peso de forma tolerante.
func (k *Kilograms) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*k = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*k = 0
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			*k = 0
			return nil
		}
		*k = Kilograms(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*k = 0
		return nil
	}
	*k = Kilograms(f)
	return nil
}

// Valid indica si el peso es utilizable para empaquetar: finito y mayor a cero.
func (k Kilograms) Valid() bool {
	f := float64(k)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}

// Float64 devuelve el valor crudo.
func (k Kilograms) Float64() float64 { return float64(k) }
