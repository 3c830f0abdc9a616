package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// FulfillInput entrada de la operación de cumplimiento. CreatedAt es el
// timestamp de referencia: solo califican órdenes creadas estrictamente antes.
type FulfillInput struct {
	ProductID   int
	WarehouseID int
	Amount      int
	CreatedAt   time.Time
}

var _ Fulfiller = (*FulfillUseCase)(nil)

// FulfillUseCase estrategia inline: ejecuta la secuencia de verificaciones y
// las dos escrituras (marcar orden + insertar registro) dentro de una sola
// transacción vía TxRunner. Todas las lecturas ocurren en la misma tx que las
// escrituras para que precio e idempotencia se evalúen sobre un snapshot
// consistente.
type FulfillUseCase struct {
	txRunner TxRunner
}

// NewFulfillUseCase construye la estrategia inline.
func NewFulfillUseCase(txRunner TxRunner) *FulfillUseCase {
	return &FulfillUseCase{txRunner: txRunner}
}

// Fulfill cumple una orden pendiente exactamente una vez.
//
// Secuencia: valida cantidad (sin tocar BD), y dentro de una transacción:
// producto existe, bodega existe, orden coincidente (bloqueada con FOR UPDATE),
// chequeo de idempotencia, marcar orden cumplida, calcular precio total e
// insertar el registro. Cualquier fallo hace Rollback; nunca queda una
// escritura parcial. El índice único sobre product_warehouse.order_id es el
// resguardo definitivo contra cumplimientos dobles y su violación se clasifica
// como conflicto, no como fallo de transacción.
func (uc *FulfillUseCase) Fulfill(ctx context.Context, in FulfillInput) (int, error) {
	// Paso 1: validación pura, antes de cualquier acceso a almacenamiento.
	if in.Amount <= 0 {
		return 0, fmt.Errorf("%w: amount debe ser mayor que cero", domain.ErrInvalidInput)
	}

	var newID int
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		orderRepo repository.OrderRepository,
		fulfillmentRepo repository.FulfillmentRepository,
	) error {
		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return &domain.TransactionError{Step: "buscar producto", Err: err}
		}
		if product == nil {
			return &domain.NotFoundError{Entity: "producto", ID: in.ProductID}
		}

		ok, err := warehouseRepo.Exists(ctx, in.WarehouseID)
		if err != nil {
			return &domain.TransactionError{Step: "buscar bodega", Err: err}
		}
		if !ok {
			return &domain.NotFoundError{Entity: "bodega", ID: in.WarehouseID}
		}

		// Bloquea la fila de la orden contra cumplimientos concurrentes.
		order, err := orderRepo.MatchForUpdate(ctx, in.ProductID, in.Amount, in.CreatedAt)
		if err != nil {
			return &domain.TransactionError{Step: "buscar orden", Err: err}
		}
		if order == nil {
			return &domain.NotFoundError{Entity: "orden"}
		}

		done, err := fulfillmentRepo.ExistsForOrder(ctx, order.ID)
		if err != nil {
			return &domain.TransactionError{Step: "verificar idempotencia", Err: err}
		}
		if done {
			return &domain.ConflictError{OrderID: order.ID}
		}

		now := time.Now()
		if err := orderRepo.MarkFulfilled(ctx, order.ID, now); err != nil {
			return &domain.TransactionError{Step: "marcar orden cumplida", Err: err}
		}

		total := product.Price.Mul(decimal.NewFromInt(int64(in.Amount)))
		id, err := fulfillmentRepo.Create(ctx, &entity.Fulfillment{
			WarehouseID: in.WarehouseID,
			ProductID:   in.ProductID,
			OrderID:     order.ID,
			Amount:      in.Amount,
			TotalPrice:  total,
			CreatedAt:   now,
		})
		if err != nil {
			// Violación del índice único: otra tx cumplió la orden primero.
			if errors.Is(err, domain.ErrConflict) {
				return err
			}
			return &domain.TransactionError{Step: "insertar registro", Err: err}
		}
		newID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newID, nil
}
