// seed administra los fixtures del almacén sin levantar la API.
//
// Uso:
//
//	go run ./cmd/seed [flags] bootstrap       siembra solo si falta la marca APP_META
//	go run ./cmd/seed [flags] reset --yes     borra todo y vuelve a sembrar
//	go run ./cmd/seed [flags] export <dir>    vuelca el almacén como directorio de fixtures
//
// El almacén se elige con la misma configuración que la API (STORE_DRIVER, REDIS_ADDR, ...).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/freight-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/freight-api/internal/infrastructure/seed"
	"github.com/jhoicas/freight-api/internal/infrastructure/storage"
	"github.com/jhoicas/freight-api/pkg/config"
	"github.com/jhoicas/freight-api/pkg/logger"
)

func main() {
	flags := pflag.NewFlagSet("seed", pflag.ExitOnError)
	dir := flags.String("dir", "", "directorio de fixtures (por defecto SEED_DIR o los embebidos)")
	charset := flags.String("charset", "utf-8", "codificación de los fixtures: utf-8, iso-8859-9, windows-1254, iso-8859-1")
	yes := flags.Bool("yes", false, "confirma el reinicio total")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "uso: seed [flags] bootstrap|reset|export <dir>")
		flags.PrintDefaults()
	}
	_ = flags.Parse(os.Args[1:])

	args := flags.Args()
	if len(args) == 0 {
		flags.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	enc, ok := seed.LookupCharset(*charset)
	if !ok {
		fmt.Fprintf(os.Stderr, "Codificación desconocida: %s\n", *charset)
		os.Exit(2)
	}
	if *dir == "" {
		*dir = cfg.Seed.Dir
	}

	ctx := context.Background()
	store, closeStore, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén")
	}
	defer closeStore()

	runner := kvstore.NewStateRunner(store, log.Component("state"), cfg.Logistics.DefaultTaxRate)
	b := seed.NewBootstrapper(runner, seed.DirFS(*dir), log.Component("seed")).WithCharset(enc)

	if err := run(ctx, b, args, *yes); err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, b *seed.Bootstrapper, args []string, confirmed bool) error {
	switch args[0] {
	case "bootstrap":
		seeded, err := b.BootstrapIfNeeded(ctx)
		if err != nil {
			return fmt.Errorf("sembrar: %w", err)
		}
		if !seeded {
			fmt.Println("El almacén ya estaba sembrado; sin cambios.")
			return nil
		}
		fmt.Println("Almacén sembrado.")
	case "reset":
		if !confirmed {
			return fmt.Errorf("reset borra todos los datos: repetir con --yes")
		}
		if err := b.FullReset(ctx); err != nil {
			return fmt.Errorf("reinicio total: %w", err)
		}
		fmt.Println("Almacén reiniciado a los fixtures.")
	case "export":
		if len(args) < 2 {
			return fmt.Errorf("export requiere el directorio destino")
		}
		n, err := b.Export(ctx, args[1])
		if err != nil {
			return fmt.Errorf("exportar: %w", err)
		}
		fmt.Printf("Escritos %d archivos en %s\n", n, args[1])
	default:
		return fmt.Errorf("comando desconocido: %s", args[0])
	}
	return nil
}
