package fulfillment

import (
	"context"

	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// Fulfiller contrato común de las dos estrategias de cumplimiento.
// Devuelve el id generado del registro de cumplimiento.
type Fulfiller interface {
	Fulfill(ctx context.Context, in FulfillInput) (int, error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: Commit si fn devuelve
// nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		orderRepo repository.OrderRepository,
		fulfillmentRepo repository.FulfillmentRepository,
	) error) error
}

// ProcedureCaller puerto hacia la rutina almacenada add_product_to_warehouse.
// La llamada es atómica en el servidor; sus señales de error llegan ya
// traducidas a errores de dominio.
type ProcedureCaller interface {
	AddProductToWarehouse(ctx context.Context, in FulfillInput) (int, error)
}
