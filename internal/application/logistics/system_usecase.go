package logistics

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/freight-api/internal/application/ports"
	"github.com/jhoicas/freight-api/internal/domain"
)

// SystemUseCase acciones de operador sobre todo el estado.
type SystemUseCase struct {
	resetter ports.SystemResetter
	log      zerolog.Logger
}

// NewSystemUseCase construye el caso de uso.
func NewSystemUseCase(resetter ports.SystemResetter, log zerolog.Logger) *SystemUseCase {
	return &SystemUseCase{resetter: resetter, log: log}
}

// FullReset borra todas las claves y vuelve a sembrar los fixtures. Exige confirmación explícita.
func (uc *SystemUseCase) FullReset(ctx context.Context, confirm bool) error {
	if !confirm {
		return domain.ErrResetNotConfirmed
	}
	if err := uc.resetter.FullReset(ctx); err != nil {
		return fmt.Errorf("reinicio del sistema: %w", err)
	}
	uc.log.Warn().Msg("sistema reiniciado a los datos semilla")
	return nil
}
