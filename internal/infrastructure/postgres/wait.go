package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Juridico-api/pkg/config"
	"github.com/jhoicas/Juridico-api/pkg/logger"
)

// startupInterval pausa entre intentos de conexión al arrancar.
var startupInterval = time.Second

// WaitForDatabase intenta conectar hasta cfg.StartupAttempts veces con pausa
// constante. Un DSN mal formado falla de inmediato, sin reintentos.
func WaitForDatabase(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := PoolConfig(cfg)
	if err != nil {
		return nil, err
	}
	attempts := cfg.StartupAttempts
	if attempts < 1 {
		attempts = 1
	}

	var pool *pgxpool.Pool
	attempt := 0
	op := func() error {
		attempt++
		p, err := connect(ctx, poolConfig)
		if err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Int("max", attempts).Msg("postgres no disponible, reintentando")
			return err
		}
		pool = p
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(startupInterval), uint64(attempts-1)),
		ctx,
	)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, fmt.Errorf("postgres no disponible tras %d intentos: %w", attempt, err)
	}
	log.Info().Int("attempt", attempt).Msg("postgres conectado")
	return pool, nil
}
