package repository

import (
	"context"

	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// ProductRepository puerto de lectura de productos dentro de la transacción
// de cumplimiento.
type ProductRepository interface {
	// GetByID devuelve el producto o nil si no existe.
	GetByID(ctx context.Context, id int) (*entity.Product, error)
}
