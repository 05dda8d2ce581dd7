// Package synthetic adaptador de DatasetRepository respaldado por el generador sintético.
package synthetic

import (
	"context"

	"github.com/jhoicas/finance-dashboard/internal/domain/entity"
	"github.com/jhoicas/finance-dashboard/internal/domain/repository"
	"github.com/jhoicas/finance-dashboard/internal/domain/synth"
)

var _ repository.DatasetRepository = (*DatasetRepo)(nil)

// DatasetRepo regenera el dataset en cada Load con la misma semilla,
// por lo que el contenido es estable entre peticiones y reinicios.
type DatasetRepo struct {
	seed uint64
}

// NewDatasetRepository construye el adaptador con la semilla indicada.
func NewDatasetRepository(seed uint64) *DatasetRepo {
	return &DatasetRepo{seed: seed}
}

// Load genera el dataset. Solo falla si el contexto ya fue cancelado.
func (r *DatasetRepo) Load(ctx context.Context) (entity.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return entity.Dataset{}, err
	}
	return synth.Generate(r.seed), nil
}

// Seed semilla configurada.
func (r *DatasetRepo) Seed() uint64 { return r.seed }
