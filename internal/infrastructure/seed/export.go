package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/freight-api/internal/domain/repository"
)

// además de los fixtures, el volcado incluye el estado operativo
var stateFiles = []struct {
	name string
	key  string
}{
	{"shipments.json", repository.KeyShipments},
	{"containers.json", repository.KeyContainers},
}

// Export vuelca el almacén a dir con los mismos nombres de archivo que los fixtures, de modo que
// el directorio sirve como SEED_DIR. Las claves ausentes se omiten. Devuelve los archivos escritos.
func (b *Bootstrapper) Export(ctx context.Context, dir string) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("crear directorio de exportación: %w", err)
	}
	written := 0
	err := b.runner.Exclusive(ctx, func(ctx context.Context, store repository.KeyValueStore) error {
		for _, f := range append(files[:len(files):len(files)], stateFiles...) {
			raw, found, err := store.Get(ctx, f.key)
			if err != nil {
				return fmt.Errorf("leer %s: %w", f.key, err)
			}
			if !found {
				continue
			}
			var buf bytes.Buffer
			if err := json.Indent(&buf, raw, "", "  "); err != nil {
				return fmt.Errorf("clave %s: JSON inválido: %w", f.key, err)
			}
			buf.WriteByte('\n')
			if err := os.WriteFile(filepath.Join(dir, f.name), buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", f.name, err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return written, err
	}
	b.log.Info().Str("dir", dir).Int("files", written).Msg("almacén exportado")
	return written, nil
}
