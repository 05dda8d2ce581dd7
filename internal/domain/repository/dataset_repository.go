package repository

import (
	"context"

	"github.com/jhoicas/finance-dashboard/internal/domain/entity"
)

// DatasetRepository fuente del dataset que alimenta el dashboard.
// Las implementaciones son read-only: cada Load devuelve un Dataset independiente.
type DatasetRepository interface {
	// Load devuelve el dataset completo en su orden canónico (mes, luego cliente).
	Load(ctx context.Context) (entity.Dataset, error)
}
