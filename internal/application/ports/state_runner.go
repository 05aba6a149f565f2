package ports

import (
	"context"

	"github.com/jhoicas/freight-api/internal/domain/repository"
)

// StateRunner ejecuta una función sobre el estado persistido de forma atómica.
// Si fn devuelve error no se escribe nada; si termina bien, todas las escrituras se aplican juntas.
type StateRunner interface {
	Run(ctx context.Context, fn func(repo repository.StateRepository) error) error
}

// SystemResetter borra todo el estado y vuelve a sembrar los fixtures.
type SystemResetter interface {
	FullReset(ctx context.Context) error
}
