// Package seed carga los fixtures iniciales (rutas, tarifas, flota, inventario, libro) en el
// almacén clave-valor la primera vez que arranca la aplicación.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/jhoicas/freight-api/internal/domain/repository"
)

//go:embed fixtures/*.json
var embedded embed.FS

// Fixtures fixtures embebidos en el binario.
func Fixtures() fs.FS {
	sub, err := fs.Sub(embedded, "fixtures")
	if err != nil {
		panic(err)
	}
	return sub
}

// DirFS fixtures desde un directorio (SEED_DIR); vacío usa los embebidos.
func DirFS(dir string) fs.FS {
	if dir == "" {
		return Fixtures()
	}
	return os.DirFS(dir)
}

// archivo de fixture -> clave del almacén
var files = []struct {
	name string
	key  string
}{
	{"app_meta.json", repository.KeyMeta},
	{"routes.json", repository.KeyRoutes},
	{"container_rates.json", repository.KeyRates},
	{"fleet.json", repository.KeyFleet},
	{"inventory.json", repository.KeyInventory},
	{"financial_schema.json", repository.KeyFinancials},
}

// Runner acceso exclusivo al almacén (lo implementa kvstore.StateRunner).
type Runner interface {
	Exclusive(ctx context.Context, fn func(ctx context.Context, store repository.KeyValueStore) error) error
}

// Bootstrapper siembra el almacén si falta la marca APP_META.
type Bootstrapper struct {
	runner  Runner
	fsys    fs.FS
	log     zerolog.Logger
	charset encoding.Encoding // nil = UTF-8
}

// NewBootstrapper construye el sembrador.
func NewBootstrapper(runner Runner, fsys fs.FS, log zerolog.Logger) *Bootstrapper {
	return &Bootstrapper{runner: runner, fsys: fsys, log: log}
}

// BootstrapIfNeeded no hace nada si la marca existe. Devuelve true si sembró.
func (b *Bootstrapper) BootstrapIfNeeded(ctx context.Context) (bool, error) {
	seeded := false
	err := b.runner.Exclusive(ctx, func(ctx context.Context, store repository.KeyValueStore) error {
		_, found, err := store.Get(ctx, repository.KeyMeta)
		if err != nil {
			return fmt.Errorf("leer marca de sembrado: %w", err)
		}
		if found {
			return nil
		}
		if err := b.seed(ctx, store); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	return seeded, err
}

// FullReset borra todas las claves y vuelve a sembrar, sin ventana entre ambos pasos.
func (b *Bootstrapper) FullReset(ctx context.Context) error {
	return b.runner.Exclusive(ctx, func(ctx context.Context, store repository.KeyValueStore) error {
		// los fixtures se validan antes de borrar para no dejar el almacén vacío
		values, err := b.read(ctx)
		if err != nil {
			return err
		}
		if err := store.Clear(ctx); err != nil {
			return fmt.Errorf("limpiar almacén: %w", err)
		}
		if err := store.SetMany(ctx, values); err != nil {
			return fmt.Errorf("sembrar: %w", err)
		}
		b.log.Warn().Int("keys", len(values)).Msg("reinicio total del sistema completado")
		return nil
	})
}

func (b *Bootstrapper) seed(ctx context.Context, store repository.KeyValueStore) error {
	values, err := b.read(ctx)
	if err != nil {
		return err
	}
	if err := store.SetMany(ctx, values); err != nil {
		return fmt.Errorf("sembrar: %w", err)
	}
	b.log.Info().Int("keys", len(values)).Msg("almacén sembrado desde fixtures")
	return nil
}

// read carga los fixtures en paralelo; cualquier fallo cancela el resto y no se escribe nada.
func (b *Bootstrapper) read(ctx context.Context) (map[string][]byte, error) {
	docs := make([][]byte, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := fs.ReadFile(b.fsys, f.name)
			if err != nil {
				return fmt.Errorf("leer fixture %s: %w", f.name, err)
			}
			if b.charset != nil {
				if data, _, err = transform.Bytes(b.charset.NewDecoder(), data); err != nil {
					return fmt.Errorf("fixture %s: decodificar: %w", f.name, err)
				}
			}
			if !json.Valid(data) {
				return fmt.Errorf("fixture %s: JSON inválido", f.name)
			}
			docs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	values := make(map[string][]byte, len(files)+2)
	for i, f := range files {
		values[f.key] = docs[i]
	}
	values[repository.KeyShipments] = []byte(`[]`)
	values[repository.KeyContainers] = []byte(`[]`)
	return values, nil
}
