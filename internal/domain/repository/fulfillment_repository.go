package repository

import (
	"context"

	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// FulfillmentRepository puerto de registros de cumplimiento (product_warehouse)
// dentro de la transacción.
type FulfillmentRepository interface {
	// ExistsForOrder indica si la orden ya tiene un registro de cumplimiento.
	ExistsForOrder(ctx context.Context, orderID int) (bool, error)

	// Create inserta el registro y devuelve el id generado. Una violación del
	// índice único sobre order_id se devuelve como domain.ConflictError.
	Create(ctx context.Context, f *entity.Fulfillment) (int, error)
}
