package seed

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// codificaciones de fixtures exportados desde sistemas heredados (turco: Latin-5 / cp1254)
var charsets = map[string]encoding.Encoding{
	"iso-8859-9":   charmap.ISO8859_9,
	"latin5":       charmap.ISO8859_9,
	"windows-1254": charmap.Windows1254,
	"cp1254":       charmap.Windows1254,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
}

// LookupCharset codificación por nombre; "" y "utf-8" devuelven nil (sin conversión).
func LookupCharset(name string) (encoding.Encoding, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "utf-8" || name == "utf8" {
		return nil, true
	}
	enc, ok := charsets[name]
	return enc, ok
}

// WithCharset hace que los fixtures se lean en enc y se conviertan a UTF-8 antes de validarlos.
func (b *Bootstrapper) WithCharset(enc encoding.Encoding) *Bootstrapper {
	b.charset = enc
	return b
}
