// seed carga el conjunto de datos de demostración en la base configurada.
// La carga es idempotente: los registros existentes (por su clave natural)
// se omiten.
//
// Uso: go run ./cmd/seed [-latin1] [ruta/dataset.json]
// Sin ruta usa el dataset embebido. -latin1 decodifica un archivo exportado en
// ISO-8859-1.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Juridico-api/internal/application/audit"
	"github.com/jhoicas/Juridico-api/internal/application/usecase"
	"github.com/jhoicas/Juridico-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Juridico-api/pkg/config"
	"github.com/jhoicas/Juridico-api/pkg/logger"
)

const seedActor = "seed"

func main() {
	latin1 := flag.Bool("latin1", false, "el dataset está codificado en ISO-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.WaitForDatabase(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	uc := usecase.NewSeedUseCase(usecase.Deps{
		Store:    postgres.NewStore(pool),
		Tx:       postgres.NewTxRunner(pool),
		Recorder: audit.NewRecorder(nil).WithLogger(log),
		Log:      log,
	})
	if path := flag.Arg(0); path != "" {
		data, err := readDataset(path, *latin1)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("leer dataset")
		}
		uc.WithData(data)
	}

	resp, err := uc.Run(ctx, seedActor)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	for _, k := range []string{
		"especialidades", "escritorios", "advogados", "advogado_escritorios", "clientes",
		"causas_processos", "perfis", "permissoes", "usuarios", "usuario_escritorios",
	} {
		fmt.Printf("%-22s %d\n", k, resp.Created[k])
	}
}

// readDataset lee el archivo y, si latin1, lo transcodifica a UTF-8.
func readDataset(path string, latin1 bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	return io.ReadAll(r)
}
